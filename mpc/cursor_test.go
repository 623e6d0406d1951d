package mpc

import "testing"

func TestCursorAdvance(t *testing.T) {
	c := NewCursor("aé\nb")

	steps := []struct {
		r    rune
		want Position
	}{
		{'a', Position{Offset: 1, Row: 0, Col: 1}},
		{'é', Position{Offset: 3, Row: 0, Col: 2}},
		{'\n', Position{Offset: 4, Row: 1, Col: 0}},
		{'b', Position{Offset: 5, Row: 1, Col: 1}},
	}

	for i, step := range steps {
		r, ok := c.Advance()
		if !ok {
			t.Fatalf("step %d: unexpected end of input", i)
		}
		if r != step.r {
			t.Errorf("step %d: got %q, want %q", i, r, step.r)
		}
		if got := c.Position(); got != step.want {
			t.Errorf("step %d: got position %+v, want %+v", i, got, step.want)
		}
	}

	if _, ok := c.Advance(); ok {
		t.Error("expected end of input")
	}
	if _, ok := c.Peek(); ok {
		t.Error("expected Peek to report end of input")
	}
	if !c.AtEOF() {
		t.Error("expected AtEOF")
	}
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := NewCursor("xy")
	for range 3 {
		r, ok := c.Peek()
		if !ok || r != 'x' {
			t.Fatalf("got %q, %v, want 'x', true", r, ok)
		}
	}
	if got := c.Position(); got != (Position{}) {
		t.Errorf("got %+v, want zero position", got)
	}
}

func TestCursorReset(t *testing.T) {
	c := NewCursor("ab\ncd")
	mark := c.Position()
	c.Advance()
	c.Advance()
	c.Advance()
	if c.Position().Row != 1 {
		t.Fatalf("expected row 1, got %d", c.Position().Row)
	}
	c.Reset(mark)
	if got := c.Position(); got != mark {
		t.Errorf("got %+v after reset, want %+v", got, mark)
	}
	if r, _ := c.Peek(); r != 'a' {
		t.Errorf("got %q after reset, want 'a'", r)
	}
}

func TestCursorPrev(t *testing.T) {
	c := NewCursor("éa")
	if _, ok := c.Prev(); ok {
		t.Error("expected no previous rune at start")
	}
	c.Advance()
	if r, ok := c.Prev(); !ok || r != 'é' {
		t.Errorf("got %q, %v, want 'é', true", r, ok)
	}
}

func TestCursorInvalidUTF8(t *testing.T) {
	c := NewCursor("\xffa")
	c.Advance()
	if got := c.Position().Offset; got != 1 {
		t.Errorf("got offset %d, want 1", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Offset: 10, Row: 2, Col: 4}
	if got := p.String(); got != "3:5" {
		t.Errorf("got %q, want %q", got, "3:5")
	}
}
