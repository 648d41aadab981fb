package output

import (
	"bytes"
	"fmt"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.JobComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SWING PAY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, p := range results.Jobs {
		r := p.Results
		fmt.Fprintf(&buf, "%s [%s, %s]: NetSwing=%s NetMonth=%s NetYear=%s\n",
			p.Name,
			r.Swing,
			r.PayType,
			FormatCurrency(r.NetSwing),
			FormatCurrency(r.NetMonth),
			FormatCurrency(r.NetYear),
		)
		super := Placeholder
		if r.Retirement != nil {
			super = FormatCurrency(r.Retirement.PerYear) + " (" + FormatNumber(r.Retirement.RatePercent) + "%)"
		}
		loan := Placeholder
		if r.HasLoanRepayment() {
			loan = FormatCurrency(r.AnnualLoanRepayment)
		}
		fmt.Fprintf(&buf, "  Gross=%s Tax=%s Loan=%s Super=%s\n", FormatCurrency(r.GrossYear), FormatCurrency(r.AnnualTax), loan, super)
	}
	rec := AnalyzeComparison(results)
	if rec.JobName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (+%s / %s)\n", rec.JobName, FormatCurrency(rec.NetYearAdvantage), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
