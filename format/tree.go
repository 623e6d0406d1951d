package format

import (
	"io"

	"github.com/dhamidi/mpc/mpc"
)

// TreeEncoder writes ASTs in their indented text form and other values as
// plain text.
type TreeEncoder struct {
	w     io.Writer
	value mpc.Value
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(v mpc.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if node, ok := e.value.(*mpc.AST); ok && node != nil {
		return []byte(node.String()), nil
	}
	return []byte(mpc.Text(e.value) + "\n"), nil
}
