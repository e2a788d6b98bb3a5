package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 15, day.Day())

	_, err = ParseDay("15/06/2025")
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}
