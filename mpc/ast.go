package mpc

import (
	"fmt"
	"strings"
)

const (
	// RootTag is the tag Root gives to the node it marks.
	RootTag = "root"
	// FoldTag marks the untagged nodes built by ASTFold.
	FoldTag = ">"
)

// AST is a node of the tree built by Tag, Root and ASTFold.
type AST struct {
	Tag      string
	Contents string
	Pos      Position
	Children []*AST
}

// NewAST creates a leaf node.
func NewAST(tag, contents string) *AST {
	return &AST{Tag: tag, Contents: contents}
}

// AddChild appends a child node. Nil children are ignored.
func (a *AST) AddChild(child *AST) *AST {
	if child != nil {
		a.Children = append(a.Children, child)
	}
	return a
}

// Child returns the first direct child with the given tag, or nil.
func (a *AST) Child(tag string) *AST {
	for _, c := range a.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Walk visits the tree depth-first, parents before children.
// Returning false from fn skips the children of that node.
func (a *AST) Walk(fn func(*AST) bool) {
	if a == nil || !fn(a) {
		return
	}
	for _, c := range a.Children {
		c.Walk(fn)
	}
}

// String renders the tree depth-first: one tag per line, then the quoted
// contents if any, then the children, each level indented by two spaces.
func (a *AST) String() string {
	var sb strings.Builder
	a.write(&sb, 0)
	return sb.String()
}

func (a *AST) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s\n", indent, a.Tag)
	if a.Contents != "" {
		fmt.Fprintf(sb, "%s  %q\n", indent, a.Contents)
	}
	for _, c := range a.Children {
		c.write(sb, depth+1)
	}
}

// tagValue wraps v in a node tagged tag. ASTs found in v become children,
// everything else is rendered into Contents. An anonymous fold node is
// absorbed rather than nested.
func tagValue(tag string, v Value, pos Position) *AST {
	node := &AST{Tag: tag, Pos: pos}
	switch v := v.(type) {
	case *AST:
		if v == nil {
			break
		}
		if v.Tag == FoldTag {
			node.Contents = v.Contents
			node.Children = v.Children
		} else {
			node.AddChild(v)
		}
	case List:
		var rest strings.Builder
		for _, x := range v {
			if child, ok := x.(*AST); ok {
				node.AddChild(child)
			} else {
				writeText(&rest, x)
			}
		}
		node.Contents = rest.String()
	default:
		node.Contents = Text(v)
	}
	return node
}
