package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"signed": signedCurrency,
	"pct":    FormatPercentage,
	"swing":  swingLabel,
	"json":   jsonScript,
}).Parse(htmlTemplateSource))

// jsonScript encodes v for the report's embedded data island.
func jsonScript(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

type htmlRow struct {
	Label  string
	Values []string
}

func (h HTMLFormatter) Format(results *domain.JobComparison) ([]byte, error) {
	var buf bytes.Buffer

	rows := make([]htmlRow, 0, len(metrics))
	for _, m := range metrics {
		row := htmlRow{Label: m.Label}
		for _, p := range results.Jobs {
			row.Values = append(row.Values, m.display(p.Results))
		}
		rows = append(rows, row)
	}

	data := struct {
		*domain.JobComparison
		Rows           []htmlRow
		Recommendation Recommendation
		Assumptions    []string
	}{results, rows, AnalyzeComparison(results), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
