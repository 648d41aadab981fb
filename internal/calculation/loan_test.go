package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestLoanRepaymentCalculation checks repayment amounts at and around band edges
func TestLoanRepaymentCalculation(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expected string
	}{
		{"zero income", "0", "0"},
		{"just below threshold", "54434", "0"},
		{"just below threshold with cents", "54434.99", "0"},
		{"at threshold", "54435", "544.35"},
		{"top of 1% band", "62850", "628.5"},
		{"bottom of 2% band", "62851", "1257.02"},
		{"inside 5.5% band", "100000", "5500"},
		{"top of 9.5% band", "159663", "15167.985"},
		{"above last band", "159664", "15966.4"},
		{"high income", "200000", "20000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLoanRepayment(decimal.RequireFromString(tt.income))
			want := decimal.RequireFromString(tt.expected)
			assert.True(t, got.Equal(want), "income %s: expected %s, got %s", tt.income, want, got)
		})
	}
}

// TestLoanRepaymentBands checks the table shape: 18 thresholds, rates 1% then 2% to 10% in half steps
func TestLoanRepaymentBands(t *testing.T) {
	calc := NewLoanRepaymentCalculator2024()

	assert.Len(t, calc.Bands, 17)
	assert.True(t, calc.Threshold.Equal(decimal.NewFromInt(54435)))
	assert.True(t, calc.Bands[0].Rate.Equal(decimal.RequireFromString("0.01")))
	assert.True(t, calc.TopRate.Equal(decimal.RequireFromString("0.10")))

	step := decimal.RequireFromString("0.005")
	for i := 2; i < len(calc.Bands); i++ {
		assert.True(t, calc.Bands[i].Rate.Sub(calc.Bands[i-1].Rate).Equal(step), "band %d rate step", i)
		assert.True(t, calc.Bands[i].Max.GreaterThan(calc.Bands[i-1].Max), "band %d max must increase", i)
	}
	last := calc.Bands[len(calc.Bands)-1]
	assert.True(t, calc.TopRate.Sub(last.Rate).Equal(step))
}

// TestLoanRepaymentNotches verifies repayments jump at each band edge rather than
// growing marginally.
func TestLoanRepaymentNotches(t *testing.T) {
	calc := NewLoanRepaymentCalculator2024()
	one := decimal.NewFromInt(1)

	edges := []decimal.Decimal{calc.Threshold.Sub(one)}
	for _, b := range calc.Bands {
		edges = append(edges, b.Max)
	}

	for _, edge := range edges {
		atEdge := calc.CalculateRepayment(edge)
		above := calc.CalculateRepayment(edge.Add(one))
		// A one dollar raise costs far more than one dollar's worth of repayment.
		assert.True(t, above.Sub(atEdge).GreaterThan(decimal.NewFromInt(100)),
			"expected notch above %s: %s -> %s", edge, atEdge, above)
	}
}

func TestLoanRepaymentRate(t *testing.T) {
	calc := NewLoanRepaymentCalculator2024()
	assert.True(t, calc.Rate(decimal.NewFromInt(50000)).IsZero())
	assert.True(t, calc.Rate(decimal.NewFromInt(70000)).Equal(decimal.RequireFromString("0.025")))
	assert.True(t, calc.Rate(decimal.NewFromInt(1000000)).Equal(decimal.RequireFromString("0.1")))
}
