package lsp

import (
	"testing"

	"github.com/dhamidi/mpc/mpc"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func listParser() *mpc.Parser {
	item := mpc.Expect(mpc.Digits(), "number")
	return mpc.Total(mpc.SepBy1(mpc.All, item, mpc.Tok(mpc.Char(','))))
}

func span(line, from, to int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(from)},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(to)},
	}
}

func TestDiagnostics(t *testing.T) {
	ls := NewServer(listParser(), "test")

	tests := []struct {
		name    string
		text    string
		want    protocol.Range
		message string
	}{
		{"trailing separator", "1,x", span(0, 1, 2), "expected end of input at ','"},
		{"second line", "1,\n2;", span(1, 1, 2), "expected end of input at ';'"},
		{"empty document", "", span(0, 0, 0), "expected number at end of input"},
		{"surrogate pair", "1\U0001F600", span(0, 1, 3), "expected end of input at '\U0001F600'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ls.Diagnostics("file:///tmp/input.txt", tt.text)
			if len(got) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(got))
			}
			d := got[0]
			if d.Range != tt.want {
				t.Errorf("got range %+v, want %+v", d.Range, tt.want)
			}
			if d.Message != tt.message {
				t.Errorf("got message %q, want %q", d.Message, tt.message)
			}
			if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
				t.Errorf("got severity %v, want error", d.Severity)
			}
		})
	}
}

func TestToProtocolPosition(t *testing.T) {
	text := "a\U0001F600b\nc\U0001F600x"
	got := toProtocolPosition(text, mpc.Position{Offset: 12, Row: 1, Col: 2})
	if got != (protocol.Position{Line: 1, Character: 3}) {
		t.Errorf("got %+v, want 1:3", got)
	}
}

func TestDiagnosticsClean(t *testing.T) {
	ls := NewServer(listParser(), "test")
	if got := ls.Diagnostics("file:///tmp/input.txt", "1,22,333"); len(got) != 0 {
		t.Errorf("got %d diagnostics, want none", len(got))
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/a%20b.txt", "/tmp/a b.txt"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}
	for _, tt := range tests {
		if got := uriToPath(tt.uri); got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
