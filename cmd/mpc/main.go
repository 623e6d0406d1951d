package main

import (
	"os"

	"github.com/dhamidi/mpc/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

type globalOptions struct {
	configPath string
	verbosity  int
	logFile    string
}

func main() {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "mpc",
		Short:   "Parse text with grammars built from parser combinators",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(&opts))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies the logging
// flags on top of it.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if o.verbosity > 0 {
		cfg.Log.Verbosity = o.verbosity
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)

	return cfg, nil
}
