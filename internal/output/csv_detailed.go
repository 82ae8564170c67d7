package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw balance at every year boundary per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Rank", "Scenario", "Year", "Balance", "IsFinal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, sc := range results.Scenarios {
		last := len(sc.Projection.Balances) - 1
		for j, year := range sc.Projection.YearIndices {
			row := []string{
				intToString(i + 1),
				sc.Label,
				intToString(year),
				fixed2(sc.Projection.Balances[j]),
				boolToString(j == last),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
