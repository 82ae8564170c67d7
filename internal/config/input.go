package config

import (
	"fmt"
	"os"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/currency"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates file-level settings.
// Scenario numbers are checked by the calculation engine so that a single bad
// scenario is reported and skipped instead of rejecting the whole file.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Currency != "" {
		if err := currency.Validate(config.Currency); err != nil {
			return err
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Title:    "Savings Growth Comparison",
		Currency: domain.DefaultCurrency,
		Scenarios: []domain.ScenarioInput{
			{
				Name:              "High-yield savings",
				Principal:         10000,
				AnnualRatePercent: 4.5,
				Years:             10,
				MonthlyPayment:    200,
				CompoundsPerYear:  12,
			},
			{
				Name:              "Certificate of deposit",
				Principal:         10000,
				AnnualRatePercent: 5,
				Years:             10,
				CompoundsPerYear:  4,
			},
			{
				Name:              "Index fund",
				Principal:         10000,
				AnnualRatePercent: 7,
				Years:             10,
				MonthlyPayment:    200,
				CompoundsPerYear:  1,
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
