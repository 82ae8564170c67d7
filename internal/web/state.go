package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/currency"
)

// State is everything a page render needs. It is rebuilt from the request on
// every input change and passed to Server.Render.
type State struct {
	Title       string
	Currency    string
	Inputs      []domain.ScenarioInput
	ParseErrors []string
}

// DefaultState is shown before the user has submitted anything.
func DefaultState(code string) State {
	example := config.NewInputParser().CreateExampleConfiguration()
	return State{
		Title:    example.Title,
		Currency: code,
		Inputs:   example.Scenarios,
	}
}

// ParseState builds page state from repeated form fields. Row i is made of the
// i-th value of each field; blank rows are ignored and rows with unparsable
// numbers are reported in ParseErrors instead of being run.
func ParseState(values url.Values, code string) State {
	st := State{
		Title:    strings.TrimSpace(values.Get("title")),
		Currency: code,
	}
	if st.Title == "" {
		st.Title = domain.DefaultTitle
	}
	if c := strings.ToUpper(strings.TrimSpace(values.Get("currency"))); c != "" {
		if currency.IsKnown(c) {
			st.Currency = c
		} else {
			st.ParseErrors = append(st.ParseErrors, fmt.Sprintf("unknown currency %q, using %s", c, code))
		}
	}

	rows := 0
	for _, key := range []string{"name", "principal", "rate", "years", "payment", "compounds"} {
		if n := len(values[key]); n > rows {
			rows = n
		}
	}

	for i := 0; i < rows; i++ {
		field := func(key string) string {
			if v := values[key]; i < len(v) {
				return strings.TrimSpace(v[i])
			}
			return ""
		}
		if field("principal") == "" && field("rate") == "" && field("years") == "" && field("payment") == "" {
			continue
		}

		in, err := parseRow(field)
		if err != nil {
			st.ParseErrors = append(st.ParseErrors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		st.Inputs = append(st.Inputs, in)
	}
	return st
}

func parseRow(field func(string) string) (domain.ScenarioInput, error) {
	in := domain.ScenarioInput{Name: field("name"), CompoundsPerYear: domain.DefaultCompoundsPerYear}

	var err error
	if in.Principal, err = parseAmount("principal", field("principal")); err != nil {
		return in, err
	}
	if in.AnnualRatePercent, err = parseAmount("rate", field("rate")); err != nil {
		return in, err
	}
	if in.MonthlyPayment, err = parseAmount("payment", field("payment")); err != nil {
		return in, err
	}
	if s := field("years"); s != "" {
		if in.Years, err = strconv.Atoi(s); err != nil {
			return in, fmt.Errorf("invalid years %q", s)
		}
	}
	if s := field("compounds"); s != "" {
		if in.CompoundsPerYear, err = strconv.Atoi(s); err != nil {
			return in, fmt.Errorf("invalid compounds %q", s)
		}
	}
	return in, nil
}

// parseAmount treats a blank field as zero.
func parseAmount(name, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}
