package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "mpc.toml", `
grammar = "list.ebnf"
start = "List"
output = "json"
skip_space = true

[log]
verbosity = 2
`},
		{"yaml", "mpc.yaml", `
grammar: list.ebnf
start: List
output: json
skip_space: true
log:
  verbosity: 2
`},
		{"yml", "mpc.yml", `
grammar: list.ebnf
start: List
output: json
skip_space: true
log:
  verbosity: 2
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if want := filepath.Join(filepath.Dir(path), "list.ebnf"); cfg.Grammar != want {
				t.Errorf("got grammar %q, want %q", cfg.Grammar, want)
			}
			if cfg.Start != "List" || cfg.Output != "json" || !cfg.SkipSpace || cfg.Log.Verbosity != 2 {
				t.Errorf("got %+v", cfg)
			}
		})
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromString(`skip_space = true`, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "tree" {
		t.Errorf("got output %q, want default tree", cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "mpc.ini", `grammar = "x"`},
		{"bad toml", "mpc.toml", `grammar = `},
		{"bad yaml", "mpc.yaml", "grammar: [unclosed"},
		{"bad output", "mpc.toml", `output = "xml"`},
		{"start without grammar", "mpc.yaml", "start: List"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.file, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatString(t *testing.T) {
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" {
		t.Errorf("got %s and %s", FormatTOML, FormatYAML)
	}
}
