package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/currency"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		in     = domain.NewScenarioInput(0, 0, 0, 0)
		code   string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single scenario from flags",
		Example: "  growth project --principal 10000 --rate 5 --years 10 --payment 100\n" +
			"  growth project --principal 500 --rate 4 --years 3 --compounds 4 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code != "" {
				if err := currency.Validate(code); err != nil {
					return err
				}
			}
			cfg := &domain.Configuration{
				Title:     in.Name,
				Currency:  strings.ToUpper(code),
				Scenarios: []domain.ScenarioInput{in},
			}
			cmp, err := a.engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return a.writeComparison(cmd, cmp, format, outDir)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Name, "name", "", "scenario name")
	flags.Float64Var(&in.Principal, "principal", 0, "starting balance")
	flags.Float64Var(&in.AnnualRatePercent, "rate", 0, "annual interest rate in percent")
	flags.IntVar(&in.Years, "years", 0, "number of years to project")
	flags.Float64Var(&in.MonthlyPayment, "payment", 0, "payment added every compounding period")
	flags.IntVar(&in.CompoundsPerYear, "compounds", domain.DefaultCompoundsPerYear, "compounding periods per year")
	flags.StringVar(&code, "currency", "", "ISO 4217 currency code (default from GROWTH_CURRENCY)")
	flags.StringVarP(&format, "format", "f", a.settings.Format, "output format")
	flags.StringVarP(&outDir, "out", "o", "", "write a report file into this directory instead of stdout")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}
