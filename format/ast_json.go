package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/mpc/mpc"
)

type ASTJSONEncoder struct {
	w     io.Writer
	value mpc.Value
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(v mpc.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(valueToJSON(e.value), "", "  ")
}

type astJSONNode struct {
	Tag      string          `json:"tag"`
	Contents string          `json:"contents,omitempty"`
	Position astJSONPosition `json:"position"`
	Children []*astJSONNode  `json:"children,omitempty"`
}

type astJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type valueJSON struct {
	Text string `json:"text"`
}

func positionToJSON(p mpc.Position) astJSONPosition {
	return astJSONPosition{Offset: p.Offset, Line: p.Row + 1, Column: p.Col + 1}
}

func valueToJSON(v mpc.Value) any {
	if node, ok := v.(*mpc.AST); ok && node != nil {
		return nodeToJSON(node)
	}
	return valueJSON{Text: mpc.Text(v)}
}

func nodeToJSON(n *mpc.AST) *astJSONNode {
	jn := &astJSONNode{
		Tag:      n.Tag,
		Contents: n.Contents,
		Position: positionToJSON(n.Pos),
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
