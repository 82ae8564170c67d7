package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
)

func loadExample(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)
	return results
}

func TestBasicCalculations(t *testing.T) {
	results := loadExample(t)

	assert.Equal(t, "Emergency Fund Options", results.Title)
	require.Len(t, results.Scenarios, 3)
	require.Len(t, results.Skipped, 1)
	assert.Equal(t, 3, results.Skipped[0].Index)

	// ranked highest first; regular payments beat the better rate
	assert.Equal(t, "Savings account", results.Scenarios[0].Input.Name)
	assert.Equal(t, "Certificate of deposit", results.Scenarios[1].Input.Name)
	assert.Equal(t, "Under the mattress", results.Scenarios[2].Input.Name)

	for _, sc := range results.Scenarios {
		assert.Len(t, sc.Projection.Balances, 6)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sc.Projection.YearIndices)
		assert.Equal(t, 10000.0, sc.Projection.Balances[0])
		assert.InDelta(t, sc.FinalBalance-sc.TotalContributed, sc.InterestEarned, 1e-9)
	}

	mattress := results.Scenarios[2]
	assert.Equal(t, 10000.0, mattress.FinalBalance)
	assert.Zero(t, mattress.InterestEarned)

	// quarterly 5% for 5 years: 10000 * 1.0125^20
	cd := results.Scenarios[1]
	assert.InDelta(t, 12820.372, cd.FinalBalance, 1e-3)
	assert.Equal(t, 20, cd.Projection.PeriodsCompleted)
}

func TestProjectionIsDeterministic(t *testing.T) {
	first := loadExample(t)
	second := loadExample(t)
	assert.Equal(t, first, second)
}
