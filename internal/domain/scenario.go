package domain

import (
	"gopkg.in/yaml.v3"
)

// DefaultCompoundsPerYear is used when a scenario does not specify a compounding frequency.
const DefaultCompoundsPerYear = 12

// ScenarioInput holds the parameters of a single growth projection
type ScenarioInput struct {
	Name              string  `yaml:"name,omitempty" json:"name,omitempty"`
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years             int     `yaml:"years" json:"years"`
	// MonthlyPayment is added once per compounding period, not once per calendar month.
	MonthlyPayment   float64 `yaml:"monthly_payment,omitempty" json:"monthly_payment,omitempty"`
	CompoundsPerYear int     `yaml:"compounds_per_year" json:"compounds_per_year"`
}

// NewScenarioInput creates an input with the default compounding frequency
func NewScenarioInput(principal, annualRatePercent float64, years int, monthlyPayment float64) ScenarioInput {
	return ScenarioInput{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		Years:             years,
		MonthlyPayment:    monthlyPayment,
		CompoundsPerYear:  DefaultCompoundsPerYear,
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for ScenarioInput.
// The compounding default only applies when the key is absent; an explicit 0 is kept
// so that validation can reject it.
func (si *ScenarioInput) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name              string  `yaml:"name"`
		Principal         float64 `yaml:"principal"`
		AnnualRatePercent float64 `yaml:"annual_rate_percent"`
		Years             int     `yaml:"years"`
		MonthlyPayment    float64 `yaml:"monthly_payment"`
		CompoundsPerYear  *int    `yaml:"compounds_per_year"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	si.Name = aux.Name
	si.Principal = aux.Principal
	si.AnnualRatePercent = aux.AnnualRatePercent
	si.Years = aux.Years
	si.MonthlyPayment = aux.MonthlyPayment
	si.CompoundsPerYear = DefaultCompoundsPerYear
	if aux.CompoundsPerYear != nil {
		si.CompoundsPerYear = *aux.CompoundsPerYear
	}
	return nil
}

// ProjectionResult is the balance at every year boundary of a projection
type ProjectionResult struct {
	YearIndices      []int     `json:"year_indices"`
	Balances         []float64 `json:"balances"`
	PeriodsCompleted int       `json:"periods_completed"`
}

// FinalBalance returns the last projected balance
func (pr *ProjectionResult) FinalBalance() float64 {
	if len(pr.Balances) == 0 {
		return 0
	}
	return pr.Balances[len(pr.Balances)-1]
}

// Scenario wraps a projection with presentation data used for ranking and legends
type Scenario struct {
	Label            string           `json:"label"`
	Input            ScenarioInput    `json:"input"`
	Projection       ProjectionResult `json:"projection"`
	FinalBalance     float64          `json:"final_balance"`
	TotalContributed float64          `json:"total_contributed"`
	InterestEarned   float64          `json:"interest_earned"`
}

// ScenarioFailure records a scenario that was rejected and left out of the comparison
type ScenarioFailure struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// ScenarioComparison holds the ranked scenarios, highest final balance first
type ScenarioComparison struct {
	Title     string            `json:"title"`
	Currency  string            `json:"currency"`
	Scenarios []Scenario        `json:"scenarios"`
	Skipped   []ScenarioFailure `json:"skipped,omitempty"`
}

// IsEmpty reports whether there is nothing to render
func (sc *ScenarioComparison) IsEmpty() bool {
	return sc == nil || len(sc.Scenarios) == 0
}
