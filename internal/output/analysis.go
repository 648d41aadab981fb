package output

import (
	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
)

// Recommendation encapsulates which compared job pays more after tax.
type Recommendation struct {
	JobName          string
	NetYear          decimal.Decimal
	NetYearAdvantage decimal.Decimal
	// PercentageChange is the advantage relative to the other job's net annual pay.
	PercentageChange decimal.Decimal
}

// AnalyzeComparison picks the job with the higher net annual pay. The zero
// Recommendation is returned for a single job or a tie.
func AnalyzeComparison(results *domain.JobComparison) Recommendation {
	if results == nil || results.Delta == nil || results.BetterJob < 0 || results.BetterJob >= len(results.Jobs) {
		return Recommendation{}
	}
	best := results.Jobs[results.BetterJob]
	other := results.Jobs[1-results.BetterJob]

	advantage := results.Delta.NetYear.Abs()
	pct := decimal.Zero
	if !other.Results.NetYear.IsZero() {
		pct = advantage.Div(other.Results.NetYear.Abs()).Mul(decimalHundred)
	}
	return Recommendation{
		JobName:          best.Name,
		NetYear:          best.Results.NetYear,
		NetYearAdvantage: advantage,
		PercentageChange: pct,
	}
}
