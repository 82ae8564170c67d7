package web

import (
	"net/url"
	"testing"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	values := url.Values{
		"title":     {"My plan"},
		"name":      {"Savings", "", ""},
		"principal": {"1,000", "", "500"},
		"rate":      {"5", "", "3.5"},
		"years":     {"10", "", "2"},
		"payment":   {"", "", "25"},
		"compounds": {"", "", "4"},
	}

	st := ParseState(values, "USD")
	assert.Equal(t, "My plan", st.Title)
	assert.Equal(t, "USD", st.Currency)
	assert.Empty(t, st.ParseErrors)
	require.Len(t, st.Inputs, 2)

	assert.Equal(t, domain.ScenarioInput{Name: "Savings", Principal: 1000, AnnualRatePercent: 5, Years: 10, CompoundsPerYear: 12}, st.Inputs[0])
	assert.Equal(t, domain.ScenarioInput{Principal: 500, AnnualRatePercent: 3.5, Years: 2, MonthlyPayment: 25, CompoundsPerYear: 4}, st.Inputs[1])
}

func TestParseStateErrors(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		errMsg string
	}{
		{"bad principal", url.Values{"principal": {"lots"}}, `row 1: invalid principal "lots"`},
		{"bad rate", url.Values{"principal": {"1"}, "rate": {"5%"}}, `invalid rate "5%"`},
		{"fractional years", url.Values{"principal": {"1"}, "years": {"2.5"}}, `invalid years "2.5"`},
		{"bad compounds", url.Values{"principal": {"1"}, "compounds": {"monthly"}}, `invalid compounds "monthly"`},
		{"unknown currency", url.Values{"currency": {"zzz"}}, `unknown currency "ZZZ"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ParseState(tt.values, "USD")
			require.Len(t, st.ParseErrors, 1)
			assert.Contains(t, st.ParseErrors[0], tt.errMsg)
			assert.Empty(t, st.Inputs)
			assert.Equal(t, "USD", st.Currency)
		})
	}
}

func TestParseStateKeepsNumericallyInvalidRows(t *testing.T) {
	// negative values parse fine and are rejected later by the engine
	st := ParseState(url.Values{"principal": {"-5"}, "years": {"1"}, "compounds": {"0"}}, "EUR")
	require.Len(t, st.Inputs, 1)
	assert.Equal(t, -5.0, st.Inputs[0].Principal)
	assert.Equal(t, 0, st.Inputs[0].CompoundsPerYear)
}

func TestParseStateCurrencyOverride(t *testing.T) {
	st := ParseState(url.Values{"currency": {" gbp "}}, "USD")
	assert.Equal(t, "GBP", st.Currency)
	assert.Equal(t, domain.DefaultTitle, st.Title)
	assert.Empty(t, st.Inputs)
}

func TestDefaultState(t *testing.T) {
	st := DefaultState("EUR")
	assert.Equal(t, "EUR", st.Currency)
	assert.Len(t, st.Inputs, 3)
	assert.Empty(t, st.ParseErrors)
}
