package main

import (
	"fmt"

	"github.com/dhamidi/mpc/config"
	"github.com/dhamidi/mpc/grammar"
	"github.com/dhamidi/mpc/mpc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

type grammarFlags struct {
	grammar   string
	start     string
	skipSpace bool
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.grammar, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start production")
	cmd.Flags().BoolVar(&f.skipSpace, "skip-space", false, "skip whitespace between tokens")
}

// apply copies the flags the user set onto cfg.
func (f *grammarFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("grammar") {
		cfg.Grammar = f.grammar
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = f.start
	}
	if cmd.Flags().Changed("skip-space") {
		cfg.SkipSpace = f.skipSpace
	}
}

func compileGrammar(cfg *config.Config) (*mpc.Parser, error) {
	if cfg.Grammar == "" {
		return nil, fmt.Errorf("no grammar given: use --grammar or set grammar in the config file")
	}
	if cfg.Start == "" {
		return nil, fmt.Errorf("no start production given: use --start or set start in the config file")
	}

	opts := []grammar.Option{grammar.WithLogger(commonlog.GetLogger("mpc.grammar"))}
	if cfg.SkipSpace {
		opts = append(opts, grammar.WithSkipSpace())
	}
	p, err := grammar.CompileFile(cfg.Grammar, cfg.Start, opts...)
	if err != nil {
		return nil, err
	}
	return p, nil
}
