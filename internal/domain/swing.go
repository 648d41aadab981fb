package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSwing is returned when a swing name is not present in the catalog.
var ErrUnknownSwing = errors.New("unknown swing")

// UnknownSwingError carries the requested name and the names that were available.
type UnknownSwingError struct {
	Name  string
	Known []string
}

func (e *UnknownSwingError) Error() string {
	return fmt.Sprintf("unknown swing %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownSwingError) Unwrap() error {
	return ErrUnknownSwing
}

// SwingPattern is a rotational roster: DaysOn working days followed by DaysOff rest days.
// The display name is not parsed; "2/1" means two weeks on, one week off.
type SwingPattern struct {
	Name    string `yaml:"name" json:"name"`
	DaysOn  int    `yaml:"days_on" json:"days_on"`
	DaysOff int    `yaml:"days_off" json:"days_off"`
}

// CycleLength returns the number of calendar days in one on+off cycle.
func (sp SwingPattern) CycleLength() int {
	return sp.DaysOn + sp.DaysOff
}

// Validate checks the pattern invariants.
func (sp SwingPattern) Validate() error {
	if strings.TrimSpace(sp.Name) == "" {
		return fmt.Errorf("swing name is required")
	}
	if sp.DaysOn <= 0 {
		return fmt.Errorf("swing %s: days on must be positive", sp.Name)
	}
	if sp.DaysOff < 0 {
		return fmt.Errorf("swing %s: days off cannot be negative", sp.Name)
	}
	return nil
}

func (sp SwingPattern) String() string {
	return fmt.Sprintf("%s (%d on / %d off)", sp.Name, sp.DaysOn, sp.DaysOff)
}

// SwingCatalog is the ordered set of swing patterns a projection may reference.
type SwingCatalog []SwingPattern

// DefaultSwingCatalog returns the built-in FIFO rosters.
func DefaultSwingCatalog() SwingCatalog {
	return SwingCatalog{
		{Name: "8/6", DaysOn: 8, DaysOff: 6},
		{Name: "2/1", DaysOn: 14, DaysOff: 7},
		{Name: "2/2", DaysOn: 14, DaysOff: 14},
	}
}

// Lookup resolves a swing by its display name. Misses never fall back to a default.
func (c SwingCatalog) Lookup(name string) (SwingPattern, error) {
	for _, sp := range c {
		if sp.Name == name {
			return sp, nil
		}
	}
	return SwingPattern{}, &UnknownSwingError{Name: name, Known: c.Names()}
}

// Names returns the display names in catalog order.
func (c SwingCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, sp := range c {
		names = append(names, sp.Name)
	}
	return names
}

// With returns a new catalog with extra patterns appended. Duplicate names are rejected.
func (c SwingCatalog) With(extra ...SwingPattern) (SwingCatalog, error) {
	out := make(SwingCatalog, len(c), len(c)+len(extra))
	copy(out, c)
	for _, sp := range extra {
		if err := sp.Validate(); err != nil {
			return nil, err
		}
		if _, err := out.Lookup(sp.Name); err == nil {
			return nil, fmt.Errorf("duplicate swing %q", sp.Name)
		}
		out = append(out, sp)
	}
	return out, nil
}
