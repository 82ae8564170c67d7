package calculation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/currency"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs scenario projections and ranks the results
type CalculationEngine struct {
	Currency string
	Logger   Logger
}

// NewCalculationEngine creates a new calculation engine using the default currency
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Currency: domain.DefaultCurrency,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ScenarioLabel builds the legend text for a scenario, e.g. "$1,000.00 @ 5% for 10 years + $100.00/period"
func ScenarioLabel(in domain.ScenarioInput, currencyCode string) string {
	label := fmt.Sprintf("%s @ %s%% for %s",
		currency.Format(in.Principal, currencyCode),
		formatRate(in.AnnualRatePercent),
		pluralYears(in.Years))
	if in.MonthlyPayment != 0 {
		label += fmt.Sprintf(" + %s/period", currency.Format(in.MonthlyPayment, currencyCode))
	}
	if in.Name != "" {
		label = in.Name + ": " + label
	}
	return label
}

// decimal cannot represent NaN or Inf, which still need a label when reported as skipped
func formatRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).String()
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// RunScenario projects a single scenario and wraps it for presentation
func (ce *CalculationEngine) RunScenario(in domain.ScenarioInput) (*domain.Scenario, error) {
	return ce.runScenario(in, ce.currency())
}

func (ce *CalculationEngine) runScenario(in domain.ScenarioInput, currencyCode string) (*domain.Scenario, error) {
	projection, err := Project(in)
	if err != nil {
		return nil, err
	}

	final := projection.FinalBalance()
	if math.IsNaN(final) || math.IsInf(final, 0) {
		return nil, newValidationError("final balance", final, "exceeds the representable range")
	}
	contributed := in.Principal + in.MonthlyPayment*float64(projection.PeriodsCompleted)

	return &domain.Scenario{
		Label:            ScenarioLabel(in, currencyCode),
		Input:            in,
		Projection:       *projection,
		FinalBalance:     final,
		TotalContributed: contributed,
		InterestEarned:   final - contributed,
	}, nil
}

// RunScenarios projects every scenario in the configuration and ranks them by final balance.
// Invalid scenarios are recorded in Skipped and never abort the remaining ones.
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil {
		return nil, errors.New("configuration is required")
	}
	code := ce.currency()
	if config.Currency != "" {
		code = config.Currency
	}

	comparison := &domain.ScenarioComparison{
		Title:     config.ReportTitle(),
		Currency:  code,
		Scenarios: make([]domain.Scenario, 0, len(config.Scenarios)),
	}

	for i, in := range config.Scenarios {
		scenario, err := ce.runScenario(in, code)
		if err != nil {
			label := ScenarioLabel(in, code)
			ce.log().Warnf("skipping scenario %d (%s): %v", i+1, label, err)
			comparison.Skipped = append(comparison.Skipped, domain.ScenarioFailure{
				Index:  i,
				Label:  label,
				Reason: err.Error(),
			})
			continue
		}
		ce.log().Debugf("scenario %d (%s): final balance %.2f after %d periods",
			i+1, scenario.Label, scenario.FinalBalance, scenario.Projection.PeriodsCompleted)
		comparison.Scenarios = append(comparison.Scenarios, *scenario)
	}

	RankScenarios(comparison.Scenarios)
	ce.log().Infof("projected %d scenarios, skipped %d", len(comparison.Scenarios), len(comparison.Skipped))

	return comparison, nil
}

// RankScenarios sorts scenarios by final balance, highest first; ties keep their input order
func RankScenarios(scenarios []domain.Scenario) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].FinalBalance > scenarios[j].FinalBalance
	})
}

func (ce *CalculationEngine) currency() string {
	if ce.Currency == "" {
		return domain.DefaultCurrency
	}
	return ce.Currency
}
