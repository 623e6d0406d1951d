package mpc

import (
	"fmt"
)

type kind int

const (
	kindUndefined kind = iota
	kindRetained

	// Matchers
	kindAny
	kindChar
	kindRange
	kindOneOf
	kindNoneOf
	kindSatisfy
	kindString

	// Zero-width parsers
	kindPass
	kindFail
	kindLift
	kindAnchor
	kindState

	// Wrappers
	kindExpect
	kindApply
	kindNot
	kindMaybe

	// Combinators
	kindAnd
	kindOr
	kindMany
	kindMany1
	kindCount
	kindSepBy
	kindSepBy1

	// AST construction
	kindTag
	kindRoot
)

// Fold reduces the n values collected by a combinator into one value.
// xs holds the values in input order and is owned by the fold.
type Fold func(n int, xs []Value) Value

// Parser describes a grammar. Parsers are built once with the constructor
// functions of this package and are never modified by parsing, so a single
// parser may be used by several goroutines and appear in several places of
// a grammar.
type Parser struct {
	kind kind
	name string

	lo, hi rune
	text   string

	pred   func(rune) bool
	anchor func(prev, next rune) bool
	lift   func() Value
	apply  func(Value) Value
	fold   Fold
	n      int

	subs []*Parser
}

// Name returns the description used when tracing the parser.
func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) String() string {
	return p.name
}

// New creates a retained parser: a named placeholder that can be used in
// other parsers before its definition is known, which is how recursive
// grammars are built. Call Define before parsing with it.
func New(name string) *Parser {
	return &Parser{kind: kindUndefined, name: name}
}

// Define sets the body of a retained parser created with New and returns
// it. It must not be called once the parser is in use.
func (p *Parser) Define(body *Parser) *Parser {
	if p.kind != kindUndefined && p.kind != kindRetained {
		panic(fmt.Sprintf("mpc: Define called on non-retained parser %s", p.name))
	}
	p.kind = kindRetained
	p.subs = []*Parser{body}
	return p
}

// Undefine clears the body of a retained parser so that grammars with
// cycles can be released.
func (p *Parser) Undefine() {
	if p.kind == kindRetained {
		p.kind = kindUndefined
		p.subs = nil
	}
}

// Any matches any single character.
func Any() *Parser {
	return &Parser{kind: kindAny, name: "any"}
}

// Char matches the character r.
func Char(r rune) *Parser {
	return &Parser{kind: kindChar, name: fmt.Sprintf("char %q", r), lo: r}
}

// Range matches a character between lo and hi inclusive.
func Range(lo, hi rune) *Parser {
	return &Parser{kind: kindRange, name: fmt.Sprintf("range %q-%q", lo, hi), lo: lo, hi: hi}
}

// OneOf matches any character contained in set.
func OneOf(set string) *Parser {
	return &Parser{kind: kindOneOf, name: fmt.Sprintf("oneof %q", set), text: set}
}

// NoneOf matches any character not contained in set. At end of input it
// succeeds with an empty string.
func NoneOf(set string) *Parser {
	return &Parser{kind: kindNoneOf, name: fmt.Sprintf("noneof %q", set), text: set}
}

// Satisfy matches a character for which pred returns true. Nothing is
// consumed when pred returns false.
func Satisfy(pred func(rune) bool) *Parser {
	return &Parser{kind: kindSatisfy, name: "satisfy", pred: pred}
}

// String matches s exactly.
func String(s string) *Parser {
	return &Parser{kind: kindString, name: fmt.Sprintf("string %q", s), text: s}
}

// Pass always succeeds with Unit and consumes nothing.
func Pass() *Parser {
	return &Parser{kind: kindPass, name: "pass"}
}

// Fail always fails with msg.
func Fail(msg string) *Parser {
	return &Parser{kind: kindFail, name: "fail", text: msg}
}

// Failf is Fail with a formatted message.
func Failf(format string, args ...any) *Parser {
	return Fail(fmt.Sprintf(format, args...))
}

// Lift succeeds with the result of f and consumes nothing.
func Lift(f func() Value) *Parser {
	return &Parser{kind: kindLift, name: "lift", lift: f}
}

// LiftVal succeeds with v and consumes nothing.
func LiftVal(v Value) *Parser {
	return &Parser{kind: kindLift, name: "liftval", lift: func() Value { return v }}
}

// Anchor succeeds without consuming input when f accepts the characters
// before and after the cursor. Either is 0 at the edges of the input.
func Anchor(f func(prev, next rune) bool) *Parser {
	return &Parser{kind: kindAnchor, name: "anchor", anchor: f}
}

// State succeeds with the current Position and consumes nothing.
func State() *Parser {
	return &Parser{kind: kindState, name: "state"}
}

// Expect replaces the expected set of a failure of p with name, unless p
// got past its starting position before failing.
func Expect(p *Parser, name string) *Parser {
	return &Parser{kind: kindExpect, name: name, text: name, subs: []*Parser{p}}
}

// Apply transforms the value produced by p with f.
func Apply(p *Parser, f func(Value) Value) *Parser {
	return &Parser{kind: kindApply, name: "apply " + p.name, apply: f, subs: []*Parser{p}}
}

// Not succeeds with Unit when p fails and fails when p succeeds. It never
// consumes input.
func Not(p *Parser) *Parser {
	return &Parser{kind: kindNot, name: "not " + p.name, subs: []*Parser{p}}
}

// Maybe applies p and succeeds with Unit if p fails.
func Maybe(p *Parser) *Parser {
	return &Parser{kind: kindMaybe, name: "maybe " + p.name, subs: []*Parser{p}}
}

// And applies ps in order and folds their values. The first failure is
// returned as is.
func And(fold Fold, ps ...*Parser) *Parser {
	return &Parser{kind: kindAnd, name: "and", fold: orAll(fold), subs: ps}
}

// Or applies ps in order from the same position and returns the first
// success. If all fail, the error is the one that got farthest into the
// input, with the expected sets of all failures at that point combined.
func Or(ps ...*Parser) *Parser {
	return &Parser{kind: kindOr, name: "or", subs: ps}
}

// Many applies p until it fails and folds the values, possibly none.
func Many(fold Fold, p *Parser) *Parser {
	return &Parser{kind: kindMany, name: "many " + p.name, fold: orAll(fold), subs: []*Parser{p}}
}

// Many1 is like Many but p must succeed at least once.
func Many1(fold Fold, p *Parser) *Parser {
	return &Parser{kind: kindMany1, name: "many1 " + p.name, fold: orAll(fold), subs: []*Parser{p}}
}

// Count applies p exactly n times.
func Count(n int, fold Fold, p *Parser) *Parser {
	return &Parser{kind: kindCount, name: fmt.Sprintf("count %d %s", n, p.name), n: n, fold: orAll(fold), subs: []*Parser{p}}
}

// SepBy matches zero or more p separated by sep. Separator values are
// discarded.
func SepBy(fold Fold, p, sep *Parser) *Parser {
	return &Parser{kind: kindSepBy, name: "sepby " + p.name, fold: orAll(fold), subs: []*Parser{p, sep}}
}

// SepBy1 is like SepBy but requires at least one p.
func SepBy1(fold Fold, p, sep *Parser) *Parser {
	return &Parser{kind: kindSepBy1, name: "sepby1 " + p.name, fold: orAll(fold), subs: []*Parser{p, sep}}
}

// Tag wraps the value of p in an AST node tagged tag.
func Tag(p *Parser, tag string) *Parser {
	return &Parser{kind: kindTag, name: "tag " + tag, text: tag, subs: []*Parser{p}}
}

// Root retags the AST produced by p as RootTag. Other values pass through.
func Root(p *Parser) *Parser {
	return &Parser{kind: kindRoot, name: "root", subs: []*Parser{p}}
}

// Total matches p followed by the end of input and keeps the value of p.
func Total(p *Parser) *Parser {
	return And(Fst, p, Eoi())
}

func orAll(fold Fold) Fold {
	if fold == nil {
		return All
	}
	return fold
}
