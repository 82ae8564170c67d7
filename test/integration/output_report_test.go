package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	results := loadExample(t)
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		if format == "terminal" {
			continue
		}
		t.Run(format, func(t *testing.T) {
			path, err := output.GenerateReport(results, format, filepath.Join(dir, format))
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
			assert.Contains(t, string(data), "Savings account")
		})
	}
}

func TestHTMLReportContent(t *testing.T) {
	results := loadExample(t)

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, output.HTMLFormatter{}, results))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Emergency Fund Options</title>")
	assert.Contains(t, html, `"labels":[0,1,2,3,4,5]`)
	assert.Contains(t, html, "Skipped Scenarios")
	assert.Contains(t, html, "compounds per year")
}

func TestDetailedCSVRowCount(t *testing.T) {
	results := loadExample(t)

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, output.CSVDetailedExporter{}, results))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header + 3 scenarios x 6 year boundaries
	assert.Len(t, lines, 19)
}

func TestOverflowingScenarioStillRenders(t *testing.T) {
	cfg := &domain.Configuration{Scenarios: []domain.ScenarioInput{
		{Name: "overflow", Principal: 1, AnnualRatePercent: 1e300, Years: 2, CompoundsPerYear: 1},
		{Name: "ok", Principal: 100, AnnualRatePercent: 5, Years: 2, CompoundsPerYear: 1},
	}}
	results, err := calculation.NewCalculationEngine().RunScenarios(cfg)
	require.NoError(t, err)

	for _, f := range []output.Formatter{output.JSONFormatter{}, output.HTMLFormatter{}} {
		data, err := f.Format(results)
		require.NoError(t, err, f.Name())
		assert.Contains(t, string(data), "overflow", f.Name()+" should list the skipped scenario")
	}
}
