package accrual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayUsesUTCDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-03-02 01:00 in Tokyo is still 2024-03-01 in UTC.
	local := time.Date(2024, 3, 2, 1, 0, 0, 0, tokyo)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Day(local))
	assert.Equal(t, "2024-03-01", DateKey(local))
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDateKey("29/02/2024")
	assert.Error(t, err)
}

func TestPreviousDayCrossesMonth(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), previousDay(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
