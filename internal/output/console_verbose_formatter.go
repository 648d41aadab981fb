package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the jobs side by side with every metric, the
// comparison delta and the modeling assumptions.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.JobComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "FIFO SWING TAKE-HOME PAY")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	row := func(label string, cells []string) {
		fmt.Fprintf(tw, "%s\t%s\t\n", label, strings.Join(cells, "\t"))
	}
	cells := func(f func(p domain.JobProjection) string) []string {
		out := make([]string, len(results.Jobs))
		for i, p := range results.Jobs {
			out[i] = f(p)
		}
		return out
	}

	row("", cells(func(p domain.JobProjection) string { return p.Name }))
	row("Swing", cells(func(p domain.JobProjection) string { return swingLabel(p.Results) }))
	row("Pay type", cells(func(p domain.JobProjection) string { return string(p.Results.PayType) }))
	row("Tax rates", cells(func(p domain.JobProjection) string { return p.Results.TaxRegime }))
	for _, m := range metrics {
		row(m.Label, cells(func(p domain.JobProjection) string { return m.display(p.Results) }))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	if results.Delta != nil && len(results.Jobs) == 2 {
		writeComparison(&buf, results)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

// writeComparison prints the second job against the first and the recommendation.
func writeComparison(buf *bytes.Buffer, results *domain.JobComparison) {
	d := results.Delta
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%s VS %s\n", strings.ToUpper(results.Jobs[1].Name), strings.ToUpper(results.Jobs[0].Name))
	fmt.Fprintln(buf, strings.Repeat("-", 40))

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Gross per year\t%s\t\n", signedCurrency(d.GrossYear))
	fmt.Fprintf(tw, "Net per swing\t%s\t\n", signedCurrency(d.NetSwing))
	fmt.Fprintf(tw, "Net per month\t%s\t\n", signedCurrency(d.NetMonth))
	fmt.Fprintf(tw, "Net per year\t%s\t\n", signedCurrency(d.NetYear))
	fmt.Fprintf(tw, "Super per year\t%s\t\n", signedCurrency(d.RetirementPerYear))
	tw.Flush()

	fmt.Fprintln(buf)
	rec := AnalyzeComparison(results)
	if rec.JobName == "" {
		fmt.Fprintln(buf, "Both jobs pay the same net per year.")
		return
	}
	fmt.Fprintf(buf, "Higher take-home: %s (+%s / %s per year)\n",
		rec.JobName, FormatCurrency(rec.NetYearAdvantage), FormatPercentage(rec.PercentageChange))
}
