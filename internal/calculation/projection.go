package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// Upper bounds keep a single projection to a few million loop steps.
const (
	MaxYears            = 1000
	MaxCompoundsPerYear = 8760 // hourly
)

// ValidateInput checks a scenario before any computation is attempted
func ValidateInput(in domain.ScenarioInput) error {
	reals := []struct {
		field string
		value float64
	}{
		{"principal", in.Principal},
		{"annual rate percent", in.AnnualRatePercent},
		{"monthly payment", in.MonthlyPayment},
	}
	for _, r := range reals {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return newValidationError(r.field, r.value, "must be a finite number")
		}
		if r.value < 0 {
			return newValidationError(r.field, r.value, "cannot be negative")
		}
	}
	if in.Years < 0 {
		return newValidationError("years", in.Years, "cannot be negative")
	}
	if in.Years > MaxYears {
		return newValidationError("years", in.Years, fmt.Sprintf("cannot exceed %d", MaxYears))
	}
	if in.CompoundsPerYear <= 0 {
		return newValidationError("compounds per year", in.CompoundsPerYear, "must be positive")
	}
	if in.CompoundsPerYear > MaxCompoundsPerYear {
		return newValidationError("compounds per year", in.CompoundsPerYear, fmt.Sprintf("cannot exceed %d", MaxCompoundsPerYear))
	}
	return nil
}

// RatePerPeriod converts a nominal annual percentage into the rate applied each compounding period
func RatePerPeriod(annualRatePercent float64, compoundsPerYear int) float64 {
	if annualRatePercent == 0 {
		return 0
	}
	return (annualRatePercent / 100) / float64(compoundsPerYear)
}

// Project simulates the account balance at every year boundary.
// Each period earns interest on the balance before the contribution for that period is added.
func Project(in domain.ScenarioInput) (*domain.ProjectionResult, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	rate := RatePerPeriod(in.AnnualRatePercent, in.CompoundsPerYear)
	balance := in.Principal
	yearlyBalances := make([]float64, 1, in.Years+1)
	yearlyBalances[0] = in.Principal
	totalPeriods := in.Years * in.CompoundsPerYear
	periodsDone := 0

	for year := 1; year <= in.Years; year++ {
		for period := 0; period < in.CompoundsPerYear; period++ {
			periodsDone++
			balance = balance + balance*rate + in.MonthlyPayment
			// guard against a period count that no longer matches years*compoundsPerYear
			if periodsDone >= totalPeriods {
				break
			}
		}
		yearlyBalances = append(yearlyBalances, balance)
		if periodsDone >= totalPeriods {
			break
		}
	}

	yearIndices := make([]int, len(yearlyBalances))
	for i := range yearIndices {
		yearIndices[i] = i
	}

	return &domain.ProjectionResult{
		YearIndices:      yearIndices,
		Balances:         yearlyBalances,
		PeriodsCompleted: periodsDone,
	}, nil
}
