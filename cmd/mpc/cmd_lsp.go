package main

import (
	"github.com/dhamidi/mpc/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server that reports parse errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			p, err := compileGrammar(cfg)
			if err != nil {
				return err
			}

			server := lsp.NewServer(p, version)
			return server.RunStdio()
		},
	}

	flags.register(cmd)

	return cmd
}
