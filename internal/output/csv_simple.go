package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario, in ranked order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Rank", "Scenario", "Principal", "AnnualRatePercent", "Years", "MonthlyPayment", "CompoundsPerYear", "FinalBalance", "TotalContributed", "InterestEarned"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, sc := range results.Scenarios {
		row := []string{
			intToString(i + 1),
			sc.Label,
			fixed2(sc.Input.Principal),
			fixed2(sc.Input.AnnualRatePercent),
			intToString(sc.Input.Years),
			fixed2(sc.Input.MonthlyPayment),
			intToString(sc.Input.CompoundsPerYear),
			fixed2(sc.FinalBalance),
			fixed2(sc.TotalContributed),
			fixed2(sc.InterestEarned),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
