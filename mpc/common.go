package mpc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Eoi matches the end of input.
func Eoi() *Parser {
	return Expect(Not(Any()), "end of input")
}

// Soi matches the start of input.
func Soi() *Parser {
	return Expect(Anchor(func(prev, next rune) bool { return prev == 0 }), "start of input")
}

// Boundary matches between a word character and a non-word character, or
// at the edge of the input next to a word character.
func Boundary() *Parser {
	return Expect(Anchor(func(prev, next rune) bool {
		return isWord(prev) != isWord(next)
	}), "boundary")
}

// BoundaryNewline matches where neither neighbouring character is a word
// character. The edges of the input count as non-word characters.
func BoundaryNewline() *Parser {
	return Expect(Anchor(func(prev, next rune) bool {
		return !isWord(prev) && !isWord(next)
	}), "non-word boundary")
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Whitespace matches one space, tab, newline, carriage return, form feed
// or vertical tab.
func Whitespace() *Parser { return Expect(OneOf(" \f\n\r\t\v"), "whitespace") }

// Whitespaces matches any run of whitespace, including none.
func Whitespaces() *Parser { return Expect(Many(StrFold, Whitespace()), "spaces") }

// Blank matches a space or a tab.
func Blank() *Parser { return Expect(OneOf(" \t"), "blank") }

func Newline() *Parser { return Expect(Char('\n'), "newline") }
func Tab() *Parser     { return Expect(Char('\t'), "tab") }

// Escape matches a backslash and the character after it.
func Escape() *Parser { return And(StrFold, Char('\\'), Any()) }

// Digit, HexDigit and OctDigit match a single digit of their base; the
// plural forms match one or more.
func Digit() *Parser     { return Expect(Range('0', '9'), "digit") }
func HexDigit() *Parser  { return Expect(OneOf("0123456789abcdefABCDEF"), "hex digit") }
func OctDigit() *Parser  { return Expect(Range('0', '7'), "oct digit") }
func Digits() *Parser    { return Expect(Many1(StrFold, Digit()), "digits") }
func HexDigits() *Parser { return Expect(Many1(StrFold, HexDigit()), "hex digits") }
func OctDigits() *Parser { return Expect(Many1(StrFold, OctDigit()), "oct digits") }

// Letters are ASCII only.
func Lower() *Parser      { return Expect(Range('a', 'z'), "lowercase letter") }
func Upper() *Parser      { return Expect(Range('A', 'Z'), "uppercase letter") }
func Alpha() *Parser      { return Expect(Or(Lower(), Upper()), "letter") }
func Underscore() *Parser { return Expect(Char('_'), "underscore") }
func Alphanum() *Parser   { return Expect(Or(Alpha(), Digit()), "letter or digit") }

// Integer matches decimal digits and produces an Int. Values that do not
// fit saturate.
func Integer() *Parser {
	return Expect(Apply(Digits(), intOf(10)), "integer")
}

// Hex matches hexadecimal digits and produces an Int.
func Hex() *Parser {
	return Expect(Apply(HexDigits(), intOf(16)), "hexadecimal")
}

// Oct matches octal digits and produces an Int.
func Oct() *Parser {
	return Expect(Apply(OctDigits(), intOf(8)), "octal")
}

func intOf(base int) func(Value) Value {
	return func(v Value) Value {
		n, _ := strconv.ParseInt(Text(v), base, strconv.IntSize)
		return Int(n)
	}
}

// Real matches a decimal number with optional sign, fraction and exponent
// and produces its text.
func Real() *Parser {
	sign := Maybe(OneOf("+-"))
	fraction := Maybe(And(StrFold, Char('.'), Digits()))
	exponent := Maybe(And(StrFold, OneOf("eE"), Maybe(OneOf("+-")), Digits()))
	return Expect(And(StrFold, sign, Digits(), fraction, exponent), "real")
}

// Float is Real producing a float64 in a User value.
func Float() *Parser {
	return Expect(Apply(Real(), func(v Value) Value {
		f, _ := strconv.ParseFloat(Text(v), 64)
		return User{V: f}
	}), "float")
}

// Ident matches a C-style identifier.
func Ident() *Parser {
	head := Or(Alpha(), Underscore())
	tail := Many(StrFold, Or(Alphanum(), Underscore()))
	return Expect(And(StrFold, head, tail), "identifier")
}

// StringLit matches a double-quoted string with backslash escapes and
// produces its unquoted contents.
func StringLit() *Parser {
	body := Many(StrFold, Or(Escape(), NoneOf("\"\\")))
	return Expect(Apply(And(StrFold, Char('"'), body, Char('"')), unquote('"')), "string")
}

// CharLit matches a single-quoted character with backslash escapes and
// produces the character.
func CharLit() *Parser {
	body := Or(Escape(), NoneOf("'\\"))
	return Expect(Apply(And(StrFold, Char('\''), body, Char('\'')), unquote('\'')), "character")
}

// unquote strips the quotes of a literal and decodes its escapes one at a
// time. An escape strconv does not know stands for the escaped character.
func unquote(quote byte) func(Value) Value {
	return func(v Value) Value {
		text := Text(v)
		s := text[1 : len(text)-1]

		var sb strings.Builder
		for s != "" {
			if s[0] != '\\' {
				_, size := utf8.DecodeRuneInString(s)
				sb.WriteString(s[:size])
				s = s[size:]
				continue
			}
			value, multibyte, tail, err := strconv.UnquoteChar(s, quote)
			if err != nil {
				_, size := utf8.DecodeRuneInString(s[1:])
				sb.WriteString(s[1 : 1+size])
				s = s[1+size:]
				continue
			}
			if value < utf8.RuneSelf || !multibyte {
				sb.WriteByte(byte(value))
			} else {
				sb.WriteRune(value)
			}
			s = tail
		}
		return Str(sb.String())
	}
}

// Tok matches p followed by optional whitespace and keeps the value of p.
func Tok(p *Parser) *Parser {
	return And(Fst, p, Whitespaces())
}

// Sym matches the string s as a token.
func Sym(s string) *Parser {
	return Tok(String(s))
}
