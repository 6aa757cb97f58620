package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GodYY/sbml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globalParams struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	params := &globalParams{}
	cmd := &cobra.Command{
		Use:           "sbmlcheck",
		Short:         "read, check and rewrite SBML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setUpLogger(params.verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&params.configPath, "config", "c", "", "configuration file (xml or yaml)")
	cmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "trace diagnostics while reading")

	cmd.AddCommand(
		newValidateCmd(params),
		newEchoCmd(params),
		newPrintCmd(params),
	)
	return cmd
}

func setUpLogger(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	sbml.SetLogger(logger)
}

// loadConfig returns the configuration named by params, an empty one when
// none is.
func loadConfig(params *globalParams) (*sbml.Config, error) {
	if params.configPath == "" {
		return &sbml.Config{}, nil
	}
	return sbml.LoadConfig(params.configPath)
}

func readDocument(path string, cfg *sbml.Config, extra ...sbml.ReadOption) (*sbml.Document, error) {
	opts, err := cfg.ReadOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)
	if path == "-" {
		return sbml.ReadSBML(os.Stdin, opts...), nil
	}
	return sbml.ReadSBMLFromFile(path, opts...), nil
}
