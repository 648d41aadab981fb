package output

import (
	json "github.com/goccy/go-json"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// JSONFormatter serializes the job comparison as pretty-printed JSON. Decimal
// amounts are emitted as strings to keep full precision.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.JobComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
