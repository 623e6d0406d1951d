package mpc

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

// evaluator runs parsers against a single cursor.
type evaluator struct {
	cur   *Cursor
	log   commonlog.Logger
	trace bool
	depth int
}

func (e *evaluator) run(p *Parser) (Value, *ParseError) {
	if !e.trace {
		return e.eval(p)
	}

	start := e.cur.Position()
	indent := strings.Repeat("  ", e.depth)
	e.log.Debugf("%s%s at %s", indent, p.name, start)
	e.depth++
	v, err := e.eval(p)
	e.depth--
	if err != nil {
		e.log.Debugf("%s%s failed: %s", indent, p.name, err.Message())
	} else {
		e.log.Debugf("%s%s matched %q", indent, p.name, e.cur.Slice(start.Offset, e.cur.Position().Offset))
	}
	return v, err
}

func (e *evaluator) eval(p *Parser) (Value, *ParseError) {
	c := e.cur
	start := c.Position()

	switch p.kind {
	case kindUndefined:
		return nil, newFailure(c, fmt.Sprintf("parser %q is undefined", p.name))

	case kindRetained:
		return e.run(p.subs[0])

	case kindAny:
		r, ok := c.Advance()
		if !ok {
			return nil, newExpected(c, start, "any character")
		}
		return Str(string(r)), nil

	case kindChar:
		return e.match(func(r rune) bool { return r == p.lo }, string(p.lo))

	case kindRange:
		return e.match(func(r rune) bool { return r >= p.lo && r <= p.hi }, fmt.Sprintf("%c-%c", p.lo, p.hi))

	case kindOneOf:
		return e.match(func(r rune) bool { return strings.ContainsRune(p.text, r) }, fmt.Sprintf("one of %q", p.text))

	case kindNoneOf:
		if c.AtEOF() {
			return Str(""), nil
		}
		return e.match(func(r rune) bool { return !strings.ContainsRune(p.text, r) }, fmt.Sprintf("none of %q", p.text))

	case kindSatisfy:
		return e.match(p.pred, "satisfy")

	case kindString:
		for _, want := range p.text {
			if r, ok := c.Peek(); !ok || r != want {
				at := c.Position()
				c.Reset(start)
				return nil, newExpected(c, at, p.text)
			}
			c.Advance()
		}
		return Str(p.text), nil

	case kindPass:
		return Unit{}, nil

	case kindFail:
		return nil, newFailure(c, p.text)

	case kindLift:
		return p.lift(), nil

	case kindAnchor:
		prev, _ := c.Prev()
		next, _ := c.Peek()
		if !p.anchor(prev, next) {
			return nil, newExpected(c, start, p.name)
		}
		return Unit{}, nil

	case kindState:
		return start, nil

	case kindExpect:
		v, err := e.run(p.subs[0])
		if err != nil && err.Pos.Offset <= start.Offset {
			return nil, newExpected(c, start, p.text)
		}
		return v, err

	case kindApply:
		v, err := e.run(p.subs[0])
		if err != nil {
			return nil, err
		}
		return p.apply(v), nil

	case kindNot:
		_, err := e.run(p.subs[0])
		c.Reset(start)
		if err == nil {
			return nil, newExpected(c, start, p.name)
		}
		return Unit{}, nil

	case kindMaybe:
		v, err := e.run(p.subs[0])
		if err != nil {
			c.Reset(start)
			return Unit{}, nil
		}
		return v, nil

	case kindAnd:
		xs := make([]Value, 0, len(p.subs))
		for _, sub := range p.subs {
			v, err := e.run(sub)
			if err != nil {
				return nil, err
			}
			xs = append(xs, v)
		}
		return p.fold(len(xs), xs), nil

	case kindOr:
		if len(p.subs) == 0 {
			return nil, newFailure(c, "no alternatives")
		}
		var best *ParseError
		for _, sub := range p.subs {
			v, err := e.run(sub)
			if err == nil {
				return v, nil
			}
			best = mergeErrors(best, err)
			c.Reset(start)
		}
		return nil, best

	case kindMany:
		xs := e.repeat(p.subs[0], nil)
		return p.fold(len(xs), xs), nil

	case kindMany1:
		v, err := e.run(p.subs[0])
		if err != nil {
			return nil, err
		}
		xs := []Value{v}
		if c.Position().Offset != start.Offset {
			xs = e.repeat(p.subs[0], xs)
		}
		return p.fold(len(xs), xs), nil

	case kindCount:
		xs := make([]Value, 0, max(p.n, 0))
		for range p.n {
			v, err := e.run(p.subs[0])
			if err != nil {
				return nil, err
			}
			xs = append(xs, v)
		}
		return p.fold(len(xs), xs), nil

	case kindSepBy:
		v, err := e.run(p.subs[0])
		if err != nil {
			c.Reset(start)
			return p.fold(0, nil), nil
		}
		xs := e.separated(p.subs[0], p.subs[1], []Value{v})
		return p.fold(len(xs), xs), nil

	case kindSepBy1:
		v, err := e.run(p.subs[0])
		if err != nil {
			return nil, err
		}
		xs := e.separated(p.subs[0], p.subs[1], []Value{v})
		return p.fold(len(xs), xs), nil

	case kindTag:
		v, err := e.run(p.subs[0])
		if err != nil {
			return nil, err
		}
		return tagValue(p.text, v, start), nil

	case kindRoot:
		v, err := e.run(p.subs[0])
		if err != nil {
			return nil, err
		}
		if node, ok := v.(*AST); ok && node != nil {
			root := *node
			root.Tag = RootTag
			return &root, nil
		}
		return v, nil
	}

	panic(fmt.Sprintf("mpc: unknown parser kind %d", p.kind))
}

// match consumes the next character if ok accepts it. The cursor does not
// move on failure.
func (e *evaluator) match(ok func(rune) bool, expected string) (Value, *ParseError) {
	start := e.cur.Position()
	r, more := e.cur.Peek()
	if !more || !ok(r) {
		return nil, newExpected(e.cur, start, expected)
	}
	e.cur.Advance()
	return Str(string(r)), nil
}

// repeat applies p until it fails, rolling back the failed attempt. A
// success that consumed nothing is kept once and ends the loop, since
// repeating it would never terminate.
func (e *evaluator) repeat(p *Parser, xs []Value) []Value {
	for {
		mark := e.cur.Position()
		v, err := e.run(p)
		if err != nil {
			e.cur.Reset(mark)
			return xs
		}
		xs = append(xs, v)
		if e.cur.Position().Offset == mark.Offset {
			return xs
		}
	}
}

// separated collects further elements, each preceded by sep. A pair that
// fails in either half is rolled back and ends the list. A pair that
// consumed nothing is kept once and ends the list.
func (e *evaluator) separated(p, sep *Parser, xs []Value) []Value {
	for {
		mark := e.cur.Position()
		if _, err := e.run(sep); err != nil {
			e.cur.Reset(mark)
			return xs
		}
		v, err := e.run(p)
		if err != nil {
			e.cur.Reset(mark)
			return xs
		}
		xs = append(xs, v)
		if e.cur.Position().Offset == mark.Offset {
			return xs
		}
	}
}
