// Package format encodes parse results for display.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/mpc/mpc"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v mpc.Value) error
}

// NewEncoder returns the encoder registered for name: "tree" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w), nil
	case "json":
		return NewASTJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
