package main

import (
	"github.com/GodYY/sbml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEchoCmd(global *globalParams) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "echo file",
		Short: "read a document and write it back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			doc, err := readDocument(args[0], cfg)
			if err != nil {
				return err
			}
			defer doc.Release()

			if doc.NumErrors() > 0 {
				doc.ErrorLog().Print(cmd.ErrOrStderr())
				return errors.Errorf("%s: %d error(s) while reading", args[0], doc.NumErrors())
			}

			if output == "" {
				return sbml.WriteSBML(doc, cmd.OutOrStdout(), cfg.WriteOptions()...)
			}
			return sbml.WriteSBMLToFile(doc, output, cfg.WriteOptions()...)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}
