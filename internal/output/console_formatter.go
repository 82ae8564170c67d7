package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// ConsoleFormatter prints the ranked scenarios as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	code := currencyOf(results)
	title := strings.ToUpper(titleOf(results))

	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(&buf, "Currency: %s\n", code)
	fmt.Fprintln(&buf)

	if results.IsEmpty() {
		fmt.Fprintln(&buf, "No scenarios to compare.")
	}
	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, sc.Label)
		fmt.Fprintf(&buf, "   Final=%s Contributed=%s Interest=%s Years=%d\n",
			FormatCurrency(sc.FinalBalance, code),
			FormatCurrency(sc.TotalContributed, code),
			FormatCurrency(sc.InterestEarned, code),
			len(sc.Projection.Balances)-1,
		)
	}

	if len(results.Skipped) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Skipped scenarios:")
		for _, s := range results.Skipped {
			fmt.Fprintf(&buf, "  - scenario %d (%s): %s\n", s.Index+1, s.Label, s.Reason)
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioLabel != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s (%s)\n", rec.ScenarioLabel, FormatCurrency(rec.FinalBalance, code))
		if rec.RunnerUpLabel != "" {
			fmt.Fprintf(&buf, "Lead over runner-up: %s / %s\n", FormatCurrency(rec.LeadOverRunnerUp, code), FormatPercentage(rec.LeadPercent))
		}
	}
	return buf.Bytes(), nil
}

func currencyOf(results *domain.ScenarioComparison) string {
	if results == nil || results.Currency == "" {
		return domain.DefaultCurrency
	}
	return results.Currency
}

func titleOf(results *domain.ScenarioComparison) string {
	if results == nil || results.Title == "" {
		return domain.DefaultTitle
	}
	return results.Title
}
