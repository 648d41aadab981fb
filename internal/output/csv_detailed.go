package output

import (
	"bytes"
	"encoding/csv"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// CSVDetailedExporter writes one line per job and metric, followed by the
// comparison delta when two jobs were compared.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.JobComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"job", "metric", "label", "value"}); err != nil {
		return nil, err
	}
	for _, p := range results.Jobs {
		for _, m := range metrics {
			if err := w.Write([]string{p.Name, m.Key, m.Label, m.raw(p.Results)}); err != nil {
				return nil, err
			}
		}
	}
	if d := results.Delta; d != nil {
		deltas := []struct {
			key, label, value string
		}{
			{"gross_year", "Gross per year", d.GrossYear.StringFixed(2)},
			{"net_swing", "Net per swing", d.NetSwing.StringFixed(2)},
			{"net_month", "Net per month", d.NetMonth.StringFixed(2)},
			{"net_year", "Net per year", d.NetYear.StringFixed(2)},
			{"super_per_year", "Super per year", d.RetirementPerYear.StringFixed(2)},
		}
		for _, row := range deltas {
			if err := w.Write([]string{"delta", row.key, row.label, row.value}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
