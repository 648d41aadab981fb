package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Bounds enforced at the input boundary. The calculation engine assumes them.
var (
	MaxRetirementRatePercent = decimal.NewFromInt(100)
	MinRetirementHoursPerDay = decimal.NewFromInt(1)
	MaxRetirementHoursPerDay = decimal.NewFromInt(12)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// InputParser handles parsing of comparison files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a comparison from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a comparison document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the custom swings and every job
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	catalog, err := config.Catalog()
	if err != nil {
		return invalid("swings: %v", err)
	}

	if len(config.Jobs) == 0 {
		return invalid("no jobs provided")
	}
	if len(config.Jobs) > 2 {
		return invalid("at most 2 jobs can be compared, got %d", len(config.Jobs))
	}

	for i, job := range config.Jobs {
		if err := ip.ValidateJob(catalog, job); err != nil {
			return fmt.Errorf("job %d (%s) validation failed: %w", i+1, job.Label(i), err)
		}
	}

	return nil
}

// ValidateJob checks a single job against the catalog and numeric bounds
func (ip *InputParser) ValidateJob(catalog domain.SwingCatalog, job domain.Job) error {
	switch job.PayType {
	case domain.PayTypeHourly:
		if job.HourlyRate.IsNegative() {
			return invalid("hourly rate cannot be negative")
		}
	case domain.PayTypeSalary:
		if job.AnnualSalary.IsNegative() {
			return invalid("annual salary cannot be negative")
		}
	default:
		return invalid("pay type must be '%s' or '%s', got %q", domain.PayTypeHourly, domain.PayTypeSalary, job.PayType)
	}

	if strings.TrimSpace(job.Swing) == "" {
		return invalid("swing is required")
	}
	if _, err := catalog.Lookup(job.Swing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if job.Retirement != nil {
		if err := ip.validateRetirement(job.Retirement); err != nil {
			return err
		}
	}

	return nil
}

// validateRetirement checks the superannuation election bounds
func (ip *InputParser) validateRetirement(r *domain.RetirementElection) error {
	if r.RatePercent.IsNegative() || r.RatePercent.GreaterThan(MaxRetirementRatePercent) {
		return invalid("retirement rate percent must be between 0 and 100")
	}
	if !r.HoursPerDay.IsZero() &&
		(r.HoursPerDay.LessThan(MinRetirementHoursPerDay) || r.HoursPerDay.GreaterThan(MaxRetirementHoursPerDay)) {
		return invalid("retirement hours per day must be between 1 and 12")
	}
	return nil
}

// CreateExampleConfiguration creates an example two-job comparison
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Swings: []domain.SwingPattern{
			{Name: "3/1", DaysOn: 21, DaysOff: 7},
		},
		Jobs: []domain.Job{
			{
				Name:        "Hourly 8/6",
				PayType:     domain.PayTypeHourly,
				HourlyRate:  decimal.NewFromInt(55),
				Swing:       "8/6",
				HasLoanDebt: true,
				Retirement: &domain.RetirementElection{
					Enabled:     true,
					RatePercent: decimal.RequireFromString("11.5"),
					HoursPerDay: decimal.NewFromInt(8),
				},
			},
			{
				Name:         "Salary 2/1",
				PayType:      domain.PayTypeSalary,
				AnnualSalary: decimal.NewFromInt(150000),
				Swing:        "2/1",
				Retirement: &domain.RetirementElection{
					Enabled:     true,
					RatePercent: decimal.RequireFromString("11.5"),
				},
			},
		},
	}
}
