package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SingleDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	rng := Resolve(Query{Date: "2024-02-05"}, now)

	assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 2, 5, 23, 59, 59, 999000000, time.UTC), rng.End)
	assert.Equal(t, 1, rng.Days())
}

func TestResolve_ExplicitRange(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	rng := Resolve(Query{StartDate: "2024-02-01", EndDate: "2024-02-10"}, now)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 2, 10, 23, 59, 59, 999000000, time.UTC), rng.End)
	assert.Equal(t, 10, rng.Days())
}

func TestResolve_SevenDayPreset(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 45, 0, 0, time.UTC)

	rng := Resolve(Query{Preset: "7d"}, now)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999000000, time.UTC), rng.End)
	assert.Equal(t, 7, rng.Days())
}

func TestResolve_DefaultsToThirtyDays(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		query Query
	}{
		{"empty query", Query{}},
		{"unrecognized preset", Query{Preset: "lifetime"}},
		{"malformed preset", Query{Preset: "xd"}},
		{"negative preset", Query{Preset: "-5d"}},
		{"malformed date falls through", Query{Date: "03/10/2024"}},
		{"half-open explicit range falls through", Query{StartDate: "2024-03-01"}},
		{"inverted explicit range falls through", Query{StartDate: "2024-03-09", EndDate: "2024-03-01"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := Resolve(c.query, now)
			assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), rng.Start)
			assert.Equal(t, 30, rng.Days())
		})
	}
}

func TestResolve_DatePrecedesRangeAndPreset(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	rng := Resolve(Query{
		Date:      "2024-03-05",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Preset:    "7d",
	}, now)

	assert.Equal(t, 1, rng.Days())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), rng.Start)
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	day, err := ParseDay("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 15, day.Day())

	_, err = ParseDay("")
	assert.Error(t, err)

	_, err = ParseDay("15/06/2024")
	assert.Error(t, err)
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()
	rng := FromDays(
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	)

	assert.True(t, rng.Contains(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rng.Contains(time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, rng.Contains(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rng.Contains(time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC)))
}
