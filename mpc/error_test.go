package mpc

import (
	"reflect"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"single expectation",
			&ParseError{Filename: "f.txt", Pos: Position{Row: 1, Col: 3}, Expected: []string{"digit"}, Received: "x"},
			"f.txt:2:4: error: expected digit at 'x'",
		},
		{
			"several expectations",
			&ParseError{Filename: "f.txt", Expected: []string{"a", "b", "c"}, Received: "\n"},
			`f.txt:1:1: error: expected 'a', 'b' or 'c' at '\n'`,
		},
		{
			"end of input",
			&ParseError{Expected: []string{"')'"}, EOF: true},
			"1:1: error: expected ')' at end of input",
		},
		{
			"explicit failure",
			&ParseError{Filename: "f.txt", Failure: "not allowed here", Received: "q"},
			"f.txt:1:1: error: not allowed here at 'q'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeErrors(t *testing.T) {
	near := &ParseError{Pos: Position{Offset: 1}, Expected: []string{"a"}}
	far := &ParseError{Pos: Position{Offset: 3}, Expected: []string{"b"}}
	alsoFar := &ParseError{Pos: Position{Offset: 3}, Expected: []string{"c", "b"}}

	if got := mergeErrors(nil, near); got != near {
		t.Errorf("got %v, want the only error", got)
	}
	if got := mergeErrors(near, far); got != far {
		t.Errorf("got %v, want the farther error", got)
	}
	if got := mergeErrors(far, near); got != far {
		t.Errorf("got %v, want the farther error", got)
	}

	merged := mergeErrors(far, alsoFar)
	if !reflect.DeepEqual(merged.Expected, []string{"b", "c"}) {
		t.Errorf("got %q, want [b c]", merged.Expected)
	}
	if !reflect.DeepEqual(far.Expected, []string{"b"}) {
		t.Errorf("merge modified its input: %q", far.Expected)
	}
}

func TestMergeKeepsFailureMessage(t *testing.T) {
	a := &ParseError{Expected: nil, Failure: "custom"}
	b := &ParseError{Expected: []string{"x"}}
	merged := mergeErrors(b, a)
	if merged.Failure != "custom" {
		t.Errorf("got failure %q, want %q", merged.Failure, "custom")
	}
	if !reflect.DeepEqual(merged.Expected, []string{"x"}) {
		t.Errorf("got %q, want [x]", merged.Expected)
	}
}

func TestPretty(t *testing.T) {
	input := "let x = 1\nlet = 2\n"
	p := And(Null, String("let x = 1\n"), String("let "), Ident())
	_, err := Parse("prog", input, p)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "prog:2:5: error: expected identifier at '='\n" +
		"  let = 2\n" +
		"      ^"
	if got := err.(*ParseError).Pretty(input); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyAtEndOfInput(t *testing.T) {
	input := "ab"
	_, err := Parse("", input, String("abc"))
	want := "1:3: error: expected abc at end of input\n" +
		"  ab\n" +
		"    ^"
	if got := err.(*ParseError).Pretty(input); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
