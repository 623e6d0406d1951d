// Package grammar builds parsers from EBNF grammars.
//
// Grammars use the notation of golang.org/x/exp/ebnf. As in that package,
// productions whose names start with a lowercase letter are lexical: they
// produce plain text and never skip whitespace. The other productions
// produce AST nodes tagged with the production name.
package grammar

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/mpc/mpc"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

// LiteralTag is the tag of nodes produced by string tokens inside
// non-lexical productions.
const LiteralTag = "literal"

// Option configures Compile.
type Option func(*compiler)

// WithSkipSpace makes every token and lexical production used by a
// non-lexical production skip the whitespace that follows it. Leading
// whitespace of the input is skipped as well.
func WithSkipSpace() Option {
	return func(c *compiler) {
		c.skipSpace = true
	}
}

// WithLogger logs compilation at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(c *compiler) {
		c.log = log
	}
}

// Load reads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads an EBNF grammar from r. filename is used in error messages.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// CompileFile loads and compiles the grammar in filename.
func CompileFile(filename, start string, opts ...Option) (*mpc.Parser, error) {
	g, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return Compile(g, start, opts...)
}

type compiler struct {
	grammar   ebnf.Grammar
	retained  map[string]*mpc.Parser
	skipSpace bool
	log       commonlog.Logger
}

// Compile turns g into a parser for its start production. The parser must
// match the whole input and produces an AST whose top node is tagged
// mpc.RootTag.
//
// Left-recursive productions are not supported.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*mpc.Parser, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		grammar:  g,
		retained: make(map[string]*mpc.Parser, len(g)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for name := range g {
		c.retained[name] = mpc.New(name)
	}

	for name, prod := range g {
		lexical := isLexical(name)
		body, err := c.compile(prod.Expr, lexical)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		if !lexical {
			body = mpc.Tag(body, name)
		}
		c.retained[name].Define(mpc.Expect(body, name))
	}
	if c.log != nil {
		c.log.Debugf("compiled %d productions, start %s", len(g), start)
	}

	top := c.retained[start]
	if isLexical(start) {
		top = c.token(mpc.Tag(top, start))
	}
	if c.skipSpace {
		top = mpc.And(mpc.Snd, mpc.Whitespaces(), top)
	}
	return mpc.Root(mpc.Total(top)), nil
}

// compile follows the structure of the expression. lexical tells whether
// the expression belongs to a lexical production.
func (c *compiler) compile(expr ebnf.Expression, lexical bool) (*mpc.Parser, error) {
	fold := mpc.ASTFold
	if lexical {
		fold = mpc.StrFold
	}

	switch e := expr.(type) {
	case nil:
		return mpc.Pass(), nil

	case *ebnf.Token:
		p := mpc.String(e.String)
		if lexical {
			return p, nil
		}
		return c.token(mpc.Tag(p, LiteralTag)), nil

	case *ebnf.Range:
		lo, err := single(e.Begin)
		if err != nil {
			return nil, err
		}
		hi, err := single(e.End)
		if err != nil {
			return nil, err
		}
		return mpc.Range(lo, hi), nil

	case ebnf.Sequence:
		ps, err := c.compileAll(e, lexical)
		if err != nil {
			return nil, err
		}
		return mpc.And(fold, ps...), nil

	case ebnf.Alternative:
		ps, err := c.compileAll(e, lexical)
		if err != nil {
			return nil, err
		}
		return mpc.Or(ps...), nil

	case *ebnf.Repetition:
		body, err := c.compile(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return mpc.Many(fold, body), nil

	case *ebnf.Option:
		body, err := c.compile(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return mpc.Maybe(body), nil

	case *ebnf.Group:
		return c.compile(e.Body, lexical)

	case *ebnf.Name:
		ref, ok := c.retained[e.String]
		if !ok {
			return nil, fmt.Errorf("undefined production %s", e.String)
		}
		if !lexical && isLexical(e.String) {
			return c.token(mpc.Tag(ref, e.String)), nil
		}
		return ref, nil
	}

	return nil, fmt.Errorf("unsupported expression %T", expr)
}

func (c *compiler) compileAll(exprs []ebnf.Expression, lexical bool) ([]*mpc.Parser, error) {
	ps := make([]*mpc.Parser, 0, len(exprs))
	for _, expr := range exprs {
		p, err := c.compile(expr, lexical)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (c *compiler) token(p *mpc.Parser) *mpc.Parser {
	if c.skipSpace {
		return mpc.Tok(p)
	}
	return p
}

func single(tok *ebnf.Token) (rune, error) {
	r, size := utf8.DecodeRuneInString(tok.String)
	if size == 0 || size != len(tok.String) {
		return 0, fmt.Errorf("range bound %q is not a single character", tok.String)
	}
	return r, nil
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
