package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page with a line chart of every scenario's balance.
type HTMLFormatter struct {
	// Prelude is inserted above the chart; the web front-end puts its input form here.
	Prelude template.HTML
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"inc":  func(i int) int { return i + 1 },
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

var summaryMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

type chartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartData is the series handed to the chart: one dataset per scenario in ranked order.
type ChartData struct {
	Labels   []int          `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
	Currency string         `json:"currency"`
}

// BuildChartData converts ranked scenarios into chart series; balances are rounded to cents.
func BuildChartData(results *domain.ScenarioComparison) ChartData {
	data := ChartData{Currency: currencyOf(results), Labels: []int{}, Datasets: []chartDataset{}}
	longest := 0
	for _, sc := range results.Scenarios {
		values := make([]float64, len(sc.Projection.Balances))
		for i, b := range sc.Projection.Balances {
			values[i] = math.Round(b*100) / 100
		}
		data.Datasets = append(data.Datasets, chartDataset{Label: sc.Label, Data: values})
		if len(sc.Projection.YearIndices) > longest {
			longest = len(sc.Projection.YearIndices)
		}
	}
	for i := 0; i < longest; i++ {
		data.Labels = append(data.Labels, i)
	}
	return data
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var summary bytes.Buffer
	writeMarkdownBody(&summary, results)
	var summaryHTML bytes.Buffer
	if err := summaryMarkdown.Convert(summary.Bytes(), &summaryHTML); err != nil {
		return nil, fmt.Errorf("convert summary: %w", err)
	}

	data := struct {
		*domain.ScenarioComparison
		Title          string
		Currency       string
		Prelude        template.HTML
		Summary        template.HTML
		Chart          ChartData
		Recommendation Recommendation
	}{
		ScenarioComparison: results,
		Title:              titleOf(results),
		Currency:           currencyOf(results),
		Prelude:            h.Prelude,
		Summary:            template.HTML(summaryHTML.String()),
		Chart:              BuildChartData(results),
		Recommendation:     AnalyzeScenarios(results),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
