package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/mpc/config"
	"github.com/dhamidi/mpc/mpc"
)

const wordsGrammar = `
Words = word { word } .
word  = letter { letter } .
letter = "a" … "z" .
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunParse(t *testing.T) {
	cfg := config.Default()
	cfg.Grammar = writeTemp(t, "words.ebnf", wordsGrammar)
	cfg.Start = "Words"
	cfg.SkipSpace = true

	if err := runParse(cfg, writeTemp(t, "ok.txt", "hello parser world\n"), false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := runParse(cfg, writeTemp(t, "bad.txt", "hello 42"), false)
	var perr *mpc.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *mpc.ParseError", err)
	}
	if perr.Pos.Offset != 6 {
		t.Errorf("got offset %d, want 6", perr.Pos.Offset)
	}
}

func TestRunParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"no grammar", config.Default()},
		{"no start", &config.Config{Grammar: "words.ebnf", Output: "tree"}},
		{"bad output", &config.Config{Output: "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runParse(tt.cfg, "input.txt", false); err == nil {
				t.Error("expected error")
			}
		})
	}
}
