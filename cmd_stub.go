package main

import (
	"fmanalyzer/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStubCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stub [name]",
		Short: "Invoke one placeholder render function directly",
		Long: `Invokes a single placeholder render function. Each prints one line
naming itself and returns.

Stubs:
  main
  render_calculator
  render_education
  render_simulator`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: render.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			stub, err := render.Lookup(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("invoking stub", zap.String("name", args[0]))
			return stub(cmd.OutOrStdout())
		},
	}
}
