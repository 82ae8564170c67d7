package domain

// DefaultCurrency is the ISO 4217 code used when a configuration does not name one
const DefaultCurrency = "USD"

// DefaultTitle is used for reports when the configuration has no title
const DefaultTitle = "Savings Growth Comparison"

// Configuration is the top-level scenario file
type Configuration struct {
	Title     string          `yaml:"title,omitempty" json:"title,omitempty"`
	Currency  string          `yaml:"currency,omitempty" json:"currency,omitempty"`
	Scenarios []ScenarioInput `yaml:"scenarios" json:"scenarios"`
}

// CurrencyCode returns the configured currency or the default
func (c *Configuration) CurrencyCode() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// ReportTitle returns the configured title or the default
func (c *Configuration) ReportTitle() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}
