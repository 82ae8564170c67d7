package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/growth-calculator/internal/config"
)

func TestExampleConfigurationRuns(t *testing.T) {
	parser := config.NewInputParser()
	example := parser.CreateExampleConfiguration()

	path := t.TempDir() + "/scenarios.yaml"
	require.NoError(t, config.SaveConfiguration(example, path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example, cfg)
}

func TestSettingsFromEnvironment(t *testing.T) {
	t.Setenv("GROWTH_CURRENCY", "gbp")
	t.Setenv("GROWTH_FORMAT", "html")

	settings := config.LoadSettings()
	require.NoError(t, settings.Validate())
	assert.Equal(t, "GBP", settings.Currency)
	assert.Equal(t, "html", settings.Format)
}
