package mpc

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ParseError describes why and where a parse failed.
type ParseError struct {
	Filename string
	Pos      Position
	// Failure is set by Fail and by internal failures; matcher errors
	// leave it empty and are described by Expected.
	Failure string
	// Expected is a sorted set of descriptions of what would have matched.
	Expected []string
	// Received is the rune found at Pos, empty when EOF is set.
	Received string
	EOF      bool
}

func newExpected(c *Cursor, pos Position, expected ...string) *ParseError {
	err := &ParseError{Pos: pos}
	err.Expected = addExpected(nil, expected...)
	if r, ok := c.runeAt(pos.Offset); ok {
		err.Received = string(r)
	} else {
		err.EOF = true
	}
	return err
}

func newFailure(c *Cursor, msg string) *ParseError {
	err := newExpected(c, c.Position())
	err.Failure = msg
	return err
}

func addExpected(set []string, names ...string) []string {
	for _, name := range names {
		i, found := slices.BinarySearch(set, name)
		if !found {
			set = slices.Insert(set, i, name)
		}
	}
	return set
}

// mergeErrors keeps the failure that got farthest into the input. Failures
// at the same offset have their expected sets unioned.
func mergeErrors(best, err *ParseError) *ParseError {
	switch {
	case best == nil:
		return err
	case err.Pos.Offset > best.Pos.Offset:
		return err
	case err.Pos.Offset < best.Pos.Offset:
		return best
	}
	merged := *best
	merged.Expected = addExpected(slices.Clone(best.Expected), err.Expected...)
	if merged.Failure == "" {
		merged.Failure = err.Failure
	}
	return &merged
}

// Message describes the failure without its location.
func (e *ParseError) Message() string {
	var sb strings.Builder
	if len(e.Expected) > 0 {
		sb.WriteString("expected ")
		sb.WriteString(joinExpected(e.Expected))
	} else if e.Failure != "" {
		sb.WriteString(e.Failure)
	} else {
		sb.WriteString("unknown error")
	}
	if e.EOF {
		sb.WriteString(" at end of input")
	} else {
		fmt.Fprintf(&sb, " at %s", quoteRune(e.Received))
	}
	return sb.String()
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%s: error: %s", e.Filename, e.Pos, e.Message())
	}
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Message())
}

// Pretty renders the error followed by the offending line of input and a
// caret under the failing column.
func (e *ParseError) Pretty(input string) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	sb.WriteByte('\n')

	start := strings.LastIndexByte(input[:min(e.Pos.Offset, len(input))], '\n') + 1
	end := strings.IndexByte(input[start:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += start
	}
	line := input[start:end]
	fmt.Fprintf(&sb, "  %s\n", line)

	// Tabs are kept so the caret lines up in terminals.
	var pad strings.Builder
	col := 0
	for _, r := range line {
		if col >= e.Pos.Col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		col++
	}
	fmt.Fprintf(&sb, "  %s^", pad.String())
	return sb.String()
}

func joinExpected(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		if utf8.RuneCountInString(name) == 1 {
			name = quoteRune(name)
		}
		quoted[i] = name
	}
	switch len(quoted) {
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

func quoteRune(s string) string {
	switch s {
	case "\n":
		return `'\n'`
	case "\t":
		return `'\t'`
	case "\r":
		return `'\r'`
	}
	return "'" + s + "'"
}
