package main

import (
	"fmt"
	"io"

	"github.com/GodYY/sbml"
	"github.com/GodYY/sbml/validator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type validateParams struct {
	json     bool
	override string
	internal bool
}

func newValidateCmd(global *globalParams) *cobra.Command {
	params := validateParams{}
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "read documents and report their diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			if params.override != "" {
				cfg.SeverityOverride = params.override
			}

			failed := 0
			for _, path := range args {
				n, err := validate(cmd.OutOrStdout(), path, cfg, params)
				if err != nil {
					return err
				}
				failed += n
			}

			if failed > 0 {
				return errors.Errorf("%d error(s) found", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&params.json, "json", false, "print diagnostics as json")
	cmd.Flags().StringVar(&params.override, "override", "", "severity override: none, dont-log, warning or error")
	cmd.Flags().BoolVar(&params.internal, "internal", false, "also check internal consistency")
	return cmd
}

// validate reads and checks one document, prints its log and returns its
// number of errors.
func validate(w io.Writer, path string, cfg *sbml.Config, params validateParams) (int, error) {
	doc, err := readDocument(path, cfg)
	if err != nil {
		return 0, err
	}
	defer doc.Release()

	if doc.NumErrors() == 0 {
		opts := validator.OptionsFromConfig(cfg)
		if params.internal && !opts.Enabled(sbml.CategoryInternalConsistency) {
			opts.Categories = append(opts.Categories, sbml.CategoryInternalConsistency)
		}
		validator.CheckConsistency(doc, opts)
	}

	log := doc.ErrorLog()
	if params.json {
		if err := log.WriteJSON(w); err != nil {
			return 0, err
		}
	} else {
		fmt.Fprintf(w, "%s: %d diagnostic(s)\n", path, log.Len())
		if err := log.Print(w); err != nil {
			return 0, err
		}
	}

	return log.NumErrors(), nil
}
