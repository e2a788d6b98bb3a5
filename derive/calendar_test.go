package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridJune2025(t *testing.T) {
	today := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	grid := BuildMonthGrid(2025, time.June, today)

	assert.Equal(t, "June 2025", grid.MonthLabel)
	assert.Equal(t, 15, grid.TodayDay)

	// June 1 2025 was a Sunday: no leading blanks, 30 days, padded to 35
	require.Len(t, grid.Cells, 35)
	require.NotNil(t, grid.Cells[0])
	assert.Equal(t, 1, *grid.Cells[0])
	require.NotNil(t, grid.Cells[29])
	assert.Equal(t, 30, *grid.Cells[29])
	for _, cell := range grid.Cells[30:] {
		assert.Nil(t, cell)
	}
}

func TestBuildMonthGridLeadingBlanks(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2025, time.February, today)

	// February 1 2025 was a Saturday: six leading blanks, 28 days, 35 cells
	require.Len(t, grid.Cells, 35)
	for _, cell := range grid.Cells[:6] {
		assert.Nil(t, cell)
	}
	require.NotNil(t, grid.Cells[6])
	assert.Equal(t, 1, *grid.Cells[6])

	// Today is outside the requested month
	assert.Zero(t, grid.TodayDay)
	assert.Equal(t, "February 2025", grid.MonthLabel)
}

func TestBuildMonthGridAlwaysFullWeeks(t *testing.T) {
	today := time.Now()
	for month := time.January; month <= time.December; month++ {
		grid := BuildMonthGrid(2024, month, today)
		assert.Zero(t, len(grid.Cells)%7, "month %s", month)
	}
}
