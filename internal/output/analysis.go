package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioLabel    string
	FinalBalance     float64
	RunnerUpLabel    string
	LeadOverRunnerUp float64
	LeadPercent      float64
}

// AnalyzeScenarios picks the scenario with the highest final balance and its lead over the next best.
// Earlier scenarios win ties, matching the ranking order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results.IsEmpty() {
		return Recommendation{}
	}
	best := highestIndex(results.Scenarios, -1)
	rec := Recommendation{
		ScenarioLabel: results.Scenarios[best].Label,
		FinalBalance:  results.Scenarios[best].FinalBalance,
	}

	next := highestIndex(results.Scenarios, best)
	if next < 0 {
		return rec
	}
	runnerUp := results.Scenarios[next]
	rec.RunnerUpLabel = runnerUp.Label
	rec.LeadOverRunnerUp = rec.FinalBalance - runnerUp.FinalBalance
	if runnerUp.FinalBalance != 0 {
		rec.LeadPercent = rec.LeadOverRunnerUp / runnerUp.FinalBalance * 100
	}
	return rec
}

// highestIndex returns the index of the largest final balance, ignoring skip; -1 if none.
func highestIndex(scenarios []domain.Scenario, skip int) int {
	idx := -1
	for i, sc := range scenarios {
		if i == skip {
			continue
		}
		if idx < 0 || sc.FinalBalance > scenarios[idx].FinalBalance {
			idx = i
		}
	}
	return idx
}
