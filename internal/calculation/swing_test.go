package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/swingpay/fifo-calculator/internal/domain"
)

func TestCalculateSwingGeometry(t *testing.T) {
	tests := []struct {
		swing               domain.SwingPattern
		cycleLength         int
		cyclesPerYear       float64
		cyclesPerMonth      float64
		workingDaysPerMonth float64
	}{
		{domain.SwingPattern{Name: "8/6", DaysOn: 8, DaysOff: 6}, 14, 26.0893, 2.1743, 17.3943},
		{domain.SwingPattern{Name: "2/1", DaysOn: 14, DaysOff: 7}, 21, 17.3929, 1.4495, 20.2933},
		{domain.SwingPattern{Name: "2/2", DaysOn: 14, DaysOff: 14}, 28, 13.0446, 1.0871, 15.22},
	}

	for _, tt := range tests {
		t.Run(tt.swing.Name, func(t *testing.T) {
			geo := CalculateSwingGeometry(tt.swing)
			assert.Equal(t, tt.cycleLength, geo.CycleLength)
			assert.InDelta(t, tt.cyclesPerYear, geo.CyclesPerYear.InexactFloat64(), 1e-4)
			assert.InDelta(t, tt.cyclesPerMonth, geo.CyclesPerMonth.InexactFloat64(), 1e-4)
			assert.InDelta(t, tt.workingDaysPerMonth, geo.WorkingDaysPerMonth.InexactFloat64(), 1e-3)
		})
	}
}

func TestSwingGeometry_CalendarAverages(t *testing.T) {
	// A one-day cycle repeats exactly as often as the averaged calendar has days.
	geo := CalculateSwingGeometry(domain.SwingPattern{Name: "daily", DaysOn: 1})
	assert.True(t, geo.CyclesPerYear.Equal(decimal.RequireFromString("365.25")))
	assert.True(t, geo.CyclesPerMonth.Equal(decimal.RequireFromString("30.44")))
	assert.True(t, geo.WorkingDaysPerMonth.Equal(decimal.RequireFromString("30.44")))
}
