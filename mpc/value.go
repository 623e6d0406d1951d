package mpc

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the result of a successful parse. The set of implementations is
// closed: Str, Unit, Int, List, Position, *AST and User.
type Value interface {
	isValue()
}

// Str is matched or folded text.
type Str string

// Unit is produced by parsers that match without output, such as Pass.
type Unit struct{}

// Int is produced by counting folds.
type Int int

// List holds the sub-results collected by All.
type List []Value

// User carries any grammar-specific payload built by a fold or Apply.
type User struct {
	V any
}

func (Str) isValue()      {}
func (Unit) isValue()     {}
func (Int) isValue()      {}
func (List) isValue()     {}
func (User) isValue()     {}
func (Position) isValue() {}
func (*AST) isValue()     {}

// Text renders a value as plain text. Str values are returned verbatim,
// ASTs render as the concatenation of their contents.
func Text(v Value) string {
	var sb strings.Builder
	writeText(&sb, v)
	return sb.String()
}

func writeText(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil, Unit:
	case Str:
		sb.WriteString(string(v))
	case Int:
		sb.WriteString(strconv.Itoa(int(v)))
	case List:
		for _, x := range v {
			writeText(sb, x)
		}
	case Position:
		sb.WriteString(v.String())
	case *AST:
		if v == nil {
			return
		}
		sb.WriteString(v.Contents)
		for _, child := range v.Children {
			writeText(sb, child)
		}
	case User:
		fmt.Fprint(sb, v.V)
	}
}
