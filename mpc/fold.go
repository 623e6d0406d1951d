package mpc

import "strings"

// StrFold concatenates the textual rendering of every value.
func StrFold(n int, xs []Value) Value {
	var sb strings.Builder
	for _, x := range xs {
		writeText(&sb, x)
	}
	return Str(sb.String())
}

// Fst keeps the first value.
func Fst(n int, xs []Value) Value {
	return nth(xs, 0)
}

// Snd keeps the second value.
func Snd(n int, xs []Value) Value {
	return nth(xs, 1)
}

// Trd keeps the third value.
func Trd(n int, xs []Value) Value {
	return nth(xs, 2)
}

func nth(xs []Value, i int) Value {
	if i >= len(xs) {
		return Unit{}
	}
	return xs[i]
}

// Null discards every value.
func Null(n int, xs []Value) Value {
	return Unit{}
}

// All keeps every value as a List.
func All(n int, xs []Value) Value {
	return List(xs)
}

// CountFold returns the number of values.
func CountFold(n int, xs []Value) Value {
	return Int(n)
}

// ASTFold gathers the values under an anonymous node tagged FoldTag.
// Nested anonymous nodes are flattened, text values become leaves and
// Unit values are dropped. A single resulting child is returned as is.
func ASTFold(n int, xs []Value) Value {
	node := &AST{Tag: FoldTag}
	for _, x := range xs {
		addFolded(node, x)
	}
	switch {
	case len(node.Children) == 1:
		return node.Children[0]
	case len(node.Children) > 0:
		node.Pos = node.Children[0].Pos
	}
	return node
}

func addFolded(node *AST, v Value) {
	switch v := v.(type) {
	case nil, Unit:
	case *AST:
		if v == nil {
			return
		}
		if v.Tag == FoldTag {
			for _, c := range v.Children {
				node.AddChild(c)
			}
			return
		}
		node.AddChild(v)
	case List:
		for _, x := range v {
			addFolded(node, x)
		}
	default:
		if text := Text(v); text != "" {
			node.AddChild(NewAST("", text))
		}
	}
}
