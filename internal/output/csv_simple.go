package output

import (
	"bytes"
	"encoding/csv"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per job, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.JobComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"job", "swing", "cycle_length", "pay_type", "tax_regime"}
	for _, m := range metrics {
		header = append(header, m.Key)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range results.Jobs {
		r := p.Results
		row := []string{p.Name, r.Swing, intToString(r.CycleLength), string(r.PayType), r.TaxRegime}
		for _, m := range metrics {
			row = append(row, m.raw(r))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
