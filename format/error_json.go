package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/mpc/mpc"
)

// ErrorJSONEncoder writes a parse error as a JSON object.
type ErrorJSONEncoder struct {
	w   io.Writer
	err *mpc.ParseError
}

func NewErrorJSONEncoder(w io.Writer) *ErrorJSONEncoder {
	return &ErrorJSONEncoder{w: w}
}

type errorJSON struct {
	Filename string          `json:"filename,omitempty"`
	Position astJSONPosition `json:"position"`
	Message  string          `json:"message"`
	Failure  string          `json:"failure,omitempty"`
	Expected []string        `json:"expected,omitempty"`
	Got      string          `json:"got,omitempty"`
	EOF      bool            `json:"eof,omitempty"`
}

func (e *ErrorJSONEncoder) Encode(err *mpc.ParseError) error {
	e.err = err
	text, merr := e.MarshalText()
	if merr != nil {
		return merr
	}
	_, werr := e.w.Write(append(text, '\n'))
	return werr
}

func (e *ErrorJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(errorJSON{
		Filename: e.err.Filename,
		Position: positionToJSON(e.err.Pos),
		Message:  e.err.Message(),
		Failure:  e.err.Failure,
		Expected: e.err.Expected,
		Got:      e.err.Received,
		EOF:      e.err.EOF,
	}, "", "  ")
}
