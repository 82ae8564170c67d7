package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/logging"
	"github.com/rpgo/growth-calculator/internal/output"
)

// app carries what every command needs; it is built once per process in PersistentPreRunE.
type app struct {
	settings *config.Settings
	logger   *slog.Logger
	engine   *calculation.CalculationEngine
}

func newRootCmd(settings *config.Settings) *cobra.Command {
	a := &app{settings: settings}
	var logLevel string
	var logJSON bool

	root := &cobra.Command{
		Use:           "growth",
		Short:         "Compare compound-interest savings scenarios",
		Long:          "growth projects account balances year by year under compound interest with optional periodic payments, and ranks scenarios by final balance.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(logging.Config{
				Level:     level,
				Component: "growth",
				Output:    cmd.ErrOrStderr(),
				JSON:      logJSON,
			})
			a.engine = calculation.NewCalculationEngine()
			a.engine.Currency = a.settings.Currency
			a.engine.SetLogger(logging.NewEngineLogger(a.logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		newProjectCmd(a),
		newCompareCmd(a),
		newInitCmd(),
		newFormatsCmd(),
		newServeCmd(a),
	)
	return root
}

// writeComparison prints skipped scenarios to stderr and renders the comparison to stdout,
// or to a report file when outDir is set.
func (a *app) writeComparison(cmd *cobra.Command, cmp *domain.ScenarioComparison, format, outDir string) error {
	for _, s := range cmp.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped scenario %d (%s): %s\n", s.Index+1, s.Label, s.Reason)
	}
	if cmp.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "No scenarios to compare.")
		return nil
	}

	f, err := output.ResolveFormatter(format)
	if err != nil {
		return err
	}

	if outDir != "" {
		path, err := output.WriteFormatted(f, cmp, outDir)
		if err != nil {
			return err
		}
		a.logger.Info("Report written", "path", path, "format", f.Name())
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return output.Render(cmd.OutOrStdout(), f, cmp)
}
