package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rpgo/growth-calculator/internal/domain"
)

// MarkdownFormatter renders the comparison as a Markdown document with a ranking table.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", escapeMarkdown(titleOf(results)))
	writeMarkdownBody(&buf, results)
	return buf.Bytes(), nil
}

// writeMarkdownBody writes everything below the title; the HTML report reuses it as its summary.
func writeMarkdownBody(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	code := currencyOf(results)
	if results.IsEmpty() {
		fmt.Fprintln(buf, "No scenarios to compare.")
	} else {
		fmt.Fprintln(buf, "| Rank | Scenario | Final balance | Contributed | Interest earned |")
		fmt.Fprintln(buf, "|---:|---|---:|---:|---:|")
		for i, sc := range results.Scenarios {
			fmt.Fprintf(buf, "| %d | %s | %s | %s | %s |\n",
				i+1,
				escapeMarkdown(sc.Label),
				FormatCurrency(sc.FinalBalance, code),
				FormatCurrency(sc.TotalContributed, code),
				FormatCurrency(sc.InterestEarned, code),
			)
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.RunnerUpLabel != "" {
		fmt.Fprintf(buf, "\n**Best:** %s, ahead of %s by %s (%s).\n",
			escapeMarkdown(rec.ScenarioLabel),
			escapeMarkdown(rec.RunnerUpLabel),
			FormatCurrency(rec.LeadOverRunnerUp, code),
			FormatPercentage(rec.LeadPercent))
	}

	if len(results.Skipped) > 0 {
		fmt.Fprintln(buf, "\n## Skipped scenarios")
		fmt.Fprintln(buf)
		for _, s := range results.Skipped {
			fmt.Fprintf(buf, "- Scenario %d (%s): %s\n", s.Index+1, escapeMarkdown(s.Label), escapeMarkdown(s.Reason))
		}
	}
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`", `<`, `&lt;`)

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }

// TerminalFormatter renders the Markdown report with ANSI styling for terminals.
type TerminalFormatter struct {
	// Style is a glamour standard style name (dark, light, notty, ...); empty picks one from the terminal.
	Style string
	// WordWrap limits line width; 0 uses glamour's default.
	WordWrap int
}

func (t TerminalFormatter) Name() string { return "terminal" }

func (t TerminalFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if t.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle(t.Style)}
	}
	if t.WordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(t.WordWrap))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return []byte(out), nil
}
