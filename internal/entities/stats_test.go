package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Range(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	testCases := []struct {
		period   entities.Period
		wantFrom time.Time
		wantTo   time.Time
	}{
		{entities.PeriodToday, day(2025, time.March, 15), day(2025, time.March, 16)},
		{entities.PeriodYesterday, day(2025, time.March, 14), day(2025, time.March, 15)},
		{entities.PeriodThisMonth, day(2025, time.March, 1), day(2025, time.March, 16)},
		{entities.PeriodLastMonth, day(2025, time.February, 1), day(2025, time.March, 1)},
		{entities.PeriodThisYear, day(2025, time.January, 1), day(2025, time.March, 16)},
		{entities.PeriodLastYear, day(2024, time.January, 1), day(2025, time.January, 1)},
		{entities.PeriodAll, time.Time{}, time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.period), func(t *testing.T) {
			from, to, err := tc.period.Range(now)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
		})
	}
}

func TestPeriod_RangeJanuary(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 5, 0, 0, time.UTC)

	from, to, err := entities.PeriodLastMonth.Range(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)

	from, to, err = entities.PeriodYesterday.Range(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPeriod_RangeUnknown(t *testing.T) {
	_, _, err := entities.Period("forever").Range(time.Now())
	assert.ErrorIs(t, err, entities.ErrUnknownPeriod)
}
