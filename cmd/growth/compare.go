package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/config"
)

func newCompareCmd(a *app) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "compare <scenarios.yaml>",
		Short: "Run and rank every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("Loaded scenarios", "file", args[0], "count", len(cfg.Scenarios))

			cmp, err := a.engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return a.writeComparison(cmd, cmp, format, outDir)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", a.settings.Format, "output format (see 'growth formats')")
	cmd.Flags().StringVarP(&outDir, "out", "o", a.settings.OutputDir, "write a report file into this directory instead of stdout")
	return cmd
}
