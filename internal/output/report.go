package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// nowFunc returns the current time (override in tests for deterministic file names).
var nowFunc = time.Now

// ResolveFormatter looks up a formatter by name or alias.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats the comparison and writes it to w.
// Nothing is written when there are no scenarios to compare.
func Render(w io.Writer, f Formatter, results *domain.ScenarioComparison) error {
	if results.IsEmpty() {
		return nil
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
// It returns the file name, or "" when there was nothing to render.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	if results.IsEmpty() {
		return "", nil
	}
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	filename := filepath.Join(dir, fmt.Sprintf("growth_report_%s.%s", nowFunc().Format("20060102_150405"), ExtensionFor(f)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}

// GenerateReport resolves the format and writes the report file into dir.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir)
}
