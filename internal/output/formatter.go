package output

import (
	"sort"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// Formatter turns a ranked comparison into report bytes.
// Format must not write anywhere itself; Render and WriteFormatted do that.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name is the canonical format name used on the command line and in logs.
	Name() string
}

// FormatterFunc lets a plain function act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// registration ties a formatter to its report file extension and the synonyms users may type.
type registration struct {
	formatter Formatter
	ext       string
	aliases   []string
}

var registry = []registration{
	{ConsoleFormatter{}, "txt", []string{"text", "table"}},
	{CSVSummarizer{}, "csv", []string{"csv-summary"}},
	{CSVDetailedExporter{}, "csv", []string{"csv-detailed"}},
	{HTMLFormatter{}, "html", []string{"chart", "html-report"}},
	{JSONFormatter{}, "json", []string{"json-pretty"}},
	{MarkdownFormatter{}, "md", []string{"md"}},
	{TerminalFormatter{}, "txt", []string{"pretty"}},
}

func lookup(canonical string) (registration, bool) {
	for _, r := range registry {
		if r.formatter.Name() == canonical {
			return r, true
		}
	}
	return registration{}, false
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	if r, ok := lookup(NormalizeFormatName(name)); ok {
		return r.formatter
	}
	return nil
}

// ExtensionFor is the file extension used when f's output is written to disk.
// Unregistered formatters get "txt".
func ExtensionFor(f Formatter) string {
	if r, ok := lookup(f.Name()); ok {
		return r.ext
	}
	return "txt"
}

// NormalizeFormatName lower-cases name and maps an alias to its canonical name.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, r := range registry {
		for _, a := range r.aliases {
			if a == n {
				return r.formatter.Name()
			}
		}
	}
	return n
}

// AvailableFormatterNames lists canonical names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.formatter.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists every alias, sorted.
func AvailableFormatAliases() []string {
	var aliases []string
	for _, r := range registry {
		aliases = append(aliases, r.aliases...)
	}
	sort.Strings(aliases)
	return aliases
}
