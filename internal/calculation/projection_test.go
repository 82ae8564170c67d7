package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(principal, rate float64, years int, payment float64, compounds int) domain.ScenarioInput {
	return domain.ScenarioInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		Years:             years,
		MonthlyPayment:    payment,
		CompoundsPerYear:  compounds,
	}
}

func TestProjectConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.ScenarioInput
		expected []float64
	}{
		{
			name:     "zero rate and no payment stays flat",
			in:       input(1000, 0, 3, 0, 12),
			expected: []float64{1000, 1000, 1000, 1000},
		},
		{
			name:     "annual contributions without interest",
			in:       input(0, 0, 2, 100, 1),
			expected: []float64{0, 100, 200},
		},
		{
			name:     "zero years returns only the principal",
			in:       input(2500, 7, 0, 300, 12),
			expected: []float64{2500},
		},
		{
			name:     "annual compounding with contribution after interest",
			in:       input(1000, 10, 2, 100, 1),
			expected: []float64{1000, 1200, 1420},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Project(tt.in)
			require.NoError(t, err)
			require.Len(t, result.Balances, len(tt.expected))
			for i, want := range tt.expected {
				assert.InDelta(t, want, result.Balances[i], 1e-9, "balance at year %d", i)
			}
			assert.Len(t, result.YearIndices, len(result.Balances))
		})
	}
}

func TestProjectMonthlyCompoundingOneYear(t *testing.T) {
	result, err := Project(input(1000, 12, 1, 0, 12))
	require.NoError(t, err)

	assert.InDelta(t, 0.01, RatePerPeriod(12, 12), 1e-15)
	require.Len(t, result.Balances, 2)
	assert.InDelta(t, 1000*math.Pow(1.01, 12), result.Balances[1], 1e-9)
	assert.InDelta(t, 1126.825030131970, result.Balances[1], 1e-6)
	assert.Equal(t, []int{0, 1}, result.YearIndices)
	assert.Equal(t, 12, result.PeriodsCompleted)
}

func TestRatePerPeriod(t *testing.T) {
	assert.Equal(t, 0.0, RatePerPeriod(0, 12))
	assert.Equal(t, 0.0, RatePerPeriod(0, 1))
	assert.InDelta(t, 0.05, RatePerPeriod(5, 1), 1e-15)
	assert.InDelta(t, 0.0125, RatePerPeriod(5, 4), 1e-15)
}

func TestProjectRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.ScenarioInput
		field string
	}{
		{"negative principal", input(-1, 5, 10, 0, 12), "principal"},
		{"negative rate", input(1000, -5, 10, 0, 12), "annual rate percent"},
		{"negative years", input(1000, 5, -1, 0, 12), "years"},
		{"negative payment", input(1000, 5, 10, -1, 12), "monthly payment"},
		{"zero compounding", input(1000, 5, 10, 0, 0), "compounds per year"},
		{"negative compounding", input(1000, 5, 10, 0, -4), "compounds per year"},
		{"NaN principal", input(math.NaN(), 5, 10, 0, 12), "principal"},
		{"infinite rate", input(1000, math.Inf(1), 10, 0, 12), "annual rate percent"},
		{"years above limit", input(1, 5, MaxYears+1, 0, 12), "years"},
		{"max int years", input(1, 5, math.MaxInt, 0, 12), "years"},
		{"huge years", input(1, 5, 1<<40, 0, 12), "years"},
		{"compounding above limit", input(1, 5, 1, 0, MaxCompoundsPerYear+1), "compounds per year"},
		{"max int compounding", input(1, 5, 1, 0, math.MaxInt), "compounds per year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Project(tt.in)
			assert.Nil(t, result)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestProjectProperties(t *testing.T) {
	principals := []float64{0, 1, 1000, 250000.75}
	rates := []float64{0, 0.5, 5, 12, 30}
	yearsList := []int{0, 1, 5, 30}
	payments := []float64{0, 1, 100, 2500}
	compounds := []int{1, 2, 4, 12, 52, 365}

	for _, p := range principals {
		for _, r := range rates {
			for _, y := range yearsList {
				for _, m := range payments {
					for _, c := range compounds {
						in := input(p, r, y, m, c)
						result, err := Project(in)
						require.NoError(t, err)

						// first balance is the principal, bit for bit
						require.Equal(t, p, result.Balances[0])
						require.Len(t, result.Balances, y+1)
						require.Len(t, result.YearIndices, y+1)
						require.Equal(t, y*c, result.PeriodsCompleted)
						for i, idx := range result.YearIndices {
							require.Equal(t, i, idx)
						}

						for i := 1; i < len(result.Balances); i++ {
							if r == 0 && m == 0 {
								require.Equal(t, p, result.Balances[i])
							} else {
								require.GreaterOrEqual(t, result.Balances[i], result.Balances[i-1])
							}
						}
					}
				}
			}
		}
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	in := input(12345.67, 6.25, 25, 321.5, 12)
	first, err := Project(in)
	require.NoError(t, err)
	second, err := Project(in)
	require.NoError(t, err)

	require.Equal(t, len(first.Balances), len(second.Balances))
	for i := range first.Balances {
		assert.Equal(t, math.Float64bits(first.Balances[i]), math.Float64bits(second.Balances[i]))
	}
	assert.Equal(t, first.YearIndices, second.YearIndices)
}

func TestPaymentIsAddedOncePerPeriod(t *testing.T) {
	// quarterly compounding adds the "monthly" payment four times a year
	result, err := Project(input(0, 0, 1, 100, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 400}, result.Balances)
}

func TestProjectAtLimits(t *testing.T) {
	result, err := Project(input(1, 0, MaxYears, 1, MaxCompoundsPerYear))
	require.NoError(t, err)
	assert.Len(t, result.Balances, MaxYears+1)
	assert.Equal(t, MaxYears*MaxCompoundsPerYear, result.PeriodsCompleted)
	assert.Equal(t, float64(1+MaxYears*MaxCompoundsPerYear), result.FinalBalance())
}
