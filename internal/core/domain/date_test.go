package domain_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/srgjo27/trip_planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInclusive(t *testing.T) {
	jan1 := civil.Date{Year: 2024, Month: 1, Day: 1}

	assert.Equal(t, 1, domain.DaysInclusive(jan1, jan1))
	assert.Equal(t, 3, domain.DaysInclusive(jan1, jan1.AddDays(2)))
	assert.Equal(t, 0, domain.DaysInclusive(jan1, jan1.AddDays(-1)))
	assert.Equal(t, -4, domain.DaysInclusive(jan1, jan1.AddDays(-5)))
	assert.Equal(t, 367, domain.DaysInclusive(jan1, civil.Date{Year: 2025, Month: 1, Day: 1}))
}

func TestParseDate(t *testing.T) {
	want := civil.Date{Year: 2024, Month: 3, Day: 9}

	d, err := domain.ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, want, d)

	d, err = domain.ParseDate("09/03/2024")
	require.NoError(t, err)
	assert.Equal(t, want, d)

	_, err = domain.ParseDate("March 9")
	assert.Error(t, err)

	assert.Equal(t, "09/03/2024", domain.FormatDate(want))
}
