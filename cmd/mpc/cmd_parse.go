package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dhamidi/mpc/config"
	"github.com/dhamidi/mpc/format"
	"github.com/dhamidi/mpc/mpc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var flags grammarFlags
	var outputFormat string
	var trace bool
	var watch bool

	cmd := &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse a file with an EBNF grammar and dump the tree",
		Long:          "Parse a file with an EBNF grammar and dump the tree. Use - to read standard input.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			flags.apply(cmd, cfg)
			if cmd.Flags().Changed("output") {
				cfg.Output = outputFormat
			}

			if watch {
				if args[0] == "-" || cfg.Grammar == "" {
					err := fmt.Errorf("--watch needs a grammar file and an input file")
					reportParse(err)
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				err := watchFiles(ctx, []string{cfg.Grammar, args[0]}, func() {
					reportParse(runParse(cfg, args[0], trace))
				})
				reportParse(err)
				return err
			}

			err = runParse(cfg, args[0], trace)
			reportParse(err)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every parser step (needs -vv)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "parse again whenever the grammar or the input changes")

	return cmd
}

// reportParse prints errors that runParse did not print itself.
func reportParse(err error) {
	var perr *mpc.ParseError
	if err != nil && !errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, err)
	}
}

// runParse parses filename and writes the result to stdout. Parse errors
// are reported here and returned as is.
func runParse(cfg *config.Config, filename string, trace bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := compileGrammar(cfg)
	if err != nil {
		return err
	}

	data, err := readInput(filename)
	if err != nil {
		return err
	}

	var parseOpts []mpc.Option
	if trace {
		parseOpts = append(parseOpts, mpc.WithLogger(commonlog.GetLogger("mpc.trace")))
	}

	v, err := mpc.Parse(filename, string(data), p, parseOpts...)
	if err != nil {
		var perr *mpc.ParseError
		if !errors.As(err, &perr) {
			return err
		}
		if cfg.Output == "json" {
			if encErr := format.NewErrorJSONEncoder(os.Stdout).Encode(perr); encErr != nil {
				return fmt.Errorf("encode error: %w", encErr)
			}
		} else {
			fmt.Fprintln(os.Stderr, perr.Pretty(string(data)))
		}
		return err
	}

	enc, err := format.NewEncoder(cfg.Output, os.Stdout)
	if err != nil {
		return err
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
