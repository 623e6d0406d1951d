// Package mpc provides parser combinators over text.
//
// # Overview
//
// A grammar is built from character matchers and combinators and then run
// over an input string with Parse:
//
//	number := mpc.Tag(mpc.Digits(), "number")
//	list := mpc.Total(mpc.SepBy1(mpc.ASTFold, number, mpc.Sym(",")))
//
//	v, err := mpc.Parse("input.txt", "1,2,3", list)
//
// Building a parser does no work; parsers are plain data. They are never
// modified by Parse, so one grammar can serve many parses concurrently.
//
// # Values
//
// A successful parse produces a Value. Matchers produce one-character Str
// values, and combinators reduce the values of their sub-parsers with a
// Fold such as StrFold, Fst or ASTFold. Tag and Root build AST nodes.
//
// # Errors
//
// A failed parse returns a *ParseError holding the position of the failure
// and the set of things that would have matched there. Or reports the
// failure that got farthest into the input, merging the expectations of
// all alternatives that failed at that point. Parsing "x" with
// mpc.Or(mpc.Char('('), mpc.Integer()) fails with
//
//	input.txt:1:1: error: expected '(' or integer at 'x'
//
// Sequences and repetitions do not merge: a sequence reports the failure of
// the element that failed, and Many stops silently at the first element
// that does not match.
//
// # Backtracking
//
// Or, Many, SepBy and Maybe restore the input position after a failed
// attempt. And does not: a sequence that fails halfway reports its failure
// as is. Matchers never consume input when they fail.
//
// Repetitions stop after a success that consumed no input, so Many(p) and
// SepBy(p, sep) terminate even when p can match the empty string.
//
// # Recursion
//
// Recursive grammars use retained parsers:
//
//	expr := mpc.New("expr")
//	expr.Define(mpc.Or(
//		mpc.And(mpc.Snd, mpc.Char('('), expr, mpc.Char(')')),
//		mpc.Integer(),
//	))
//
// Left recursion is not supported and does not terminate.
package mpc
