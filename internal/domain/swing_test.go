package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSwingCatalog(t *testing.T) {
	catalog := DefaultSwingCatalog()

	testCases := []struct {
		name    string
		daysOn  int
		daysOff int
	}{
		{"8/6", 8, 6},
		{"2/1", 14, 7},
		{"2/2", 14, 14},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sp, err := catalog.Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.daysOn, sp.DaysOn)
			assert.Equal(t, tc.daysOff, sp.DaysOff)
			assert.Equal(t, tc.daysOn+tc.daysOff, sp.CycleLength())
		})
	}
	assert.Equal(t, []string{"8/6", "2/1", "2/2"}, catalog.Names())
}

func TestSwingCatalog_LookupMiss(t *testing.T) {
	sp, err := DefaultSwingCatalog().Lookup("7/7")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSwing))
	assert.Equal(t, SwingPattern{}, sp)

	var unknown *UnknownSwingError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "7/7", unknown.Name)
	assert.Contains(t, err.Error(), "8/6, 2/1, 2/2")
}

func TestSwingCatalog_With(t *testing.T) {
	base := DefaultSwingCatalog()

	extended, err := base.With(SwingPattern{Name: "4/4", DaysOn: 4, DaysOff: 4})
	require.NoError(t, err)
	assert.Len(t, extended, 4)
	assert.Len(t, base, 3, "original catalog must not be modified")

	sp, err := extended.Lookup("4/4")
	require.NoError(t, err)
	assert.Equal(t, 8, sp.CycleLength())

	_, err = base.With(SwingPattern{Name: "8/6", DaysOn: 8, DaysOff: 6})
	assert.ErrorContains(t, err, "duplicate swing")

	_, err = base.With(SwingPattern{Name: "0/7", DaysOn: 0, DaysOff: 7})
	assert.ErrorContains(t, err, "days on must be positive")

	_, err = base.With(SwingPattern{Name: "5/-1", DaysOn: 5, DaysOff: -1})
	assert.ErrorContains(t, err, "days off cannot be negative")
}

func TestSwingPattern_ZeroDaysOffIsValid(t *testing.T) {
	sp := SwingPattern{Name: "resident", DaysOn: 7, DaysOff: 0}
	assert.NoError(t, sp.Validate())
	assert.Equal(t, 7, sp.CycleLength())
}
