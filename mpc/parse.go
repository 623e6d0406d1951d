package mpc

import (
	"github.com/tliron/commonlog"
)

// Option configures a single call to Parse.
type Option func(*evaluator)

// WithLogger traces every parser entered and its outcome at debug level.
// Tracing is skipped entirely when the logger does not allow debug output.
func WithLogger(log commonlog.Logger) Option {
	return func(e *evaluator) {
		e.log = log
		e.trace = log != nil && log.AllowLevel(commonlog.Debug)
	}
}

// Parse runs p over input. filename is only used in error messages. The
// returned error, if any, is a *ParseError.
//
// Panics raised by folds, predicates or other functions supplied to the
// grammar are not recovered.
func Parse(filename, input string, p *Parser, opts ...Option) (Value, error) {
	e := &evaluator{cur: NewCursor(input)}
	for _, opt := range opts {
		opt(e)
	}
	v, err := e.run(p)
	if err != nil {
		err.Filename = filename
		return nil, err
	}
	return v, nil
}

// MustParse is like Parse but panics on failure. It is intended for tests
// and for inputs embedded in programs.
func MustParse(filename, input string, p *Parser) Value {
	v, err := Parse(filename, input, p)
	if err != nil {
		panic(err)
	}
	return v
}
