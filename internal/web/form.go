package web

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(`<form id="scenario-form" method="get" action="/">
    <div class="row">
        <label>Title <input name="title" value="{{ .Title }}"></label>
        <label>Currency <input name="currency" value="{{ .Currency }}" size="3"></label>
    </div>
    {{ range .Rows }}<div class="row">
        <input name="name" placeholder="Name" value="{{ .Name }}">
        <input name="principal" placeholder="Principal" value="{{ if .Filled }}{{ num .Principal }}{{ end }}">
        <input name="rate" placeholder="Annual rate %" value="{{ if .Filled }}{{ num .AnnualRatePercent }}{{ end }}">
        <input name="years" placeholder="Years" value="{{ if .Filled }}{{ .Years }}{{ end }}">
        <input name="payment" placeholder="Payment per period" value="{{ if .Filled }}{{ num .MonthlyPayment }}{{ end }}">
        <input name="compounds" placeholder="Compounds per year" value="{{ if .Filled }}{{ .CompoundsPerYear }}{{ end }}">
    </div>
    {{ end }}
    <button type="submit">Compare</button>
</form>
{{ if .ParseErrors }}<ul class="warning">
    {{ range .ParseErrors }}<li>{{ . }}</li>
    {{ end }}
</ul>{{ end }}`))

type formRow struct {
	domain.ScenarioInput
	Filled bool
}

// renderForm draws the input form for st with one spare blank row for adding a scenario.
func renderForm(st State) (template.HTML, error) {
	rows := make([]formRow, 0, len(st.Inputs)+1)
	for _, in := range st.Inputs {
		rows = append(rows, formRow{ScenarioInput: in, Filled: true})
	}
	rows = append(rows, formRow{})

	var buf bytes.Buffer
	err := formTemplate.Execute(&buf, struct {
		State
		Rows []formRow
	}{st, rows})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
