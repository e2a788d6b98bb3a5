package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildYearGrid(t *testing.T) {
	entries := []ContributionEntry{
		{Date: "2024-01-02", Count: 5, Level: 2},
		{Date: "2023-12-31", Count: 1, Level: 1},
		{Date: "2024-01-01", Count: 3, Level: 1},
	}

	grid := BuildYearGrid(entries, 2024)

	// January 1 2024 was a Monday, so one leading null
	require.Len(t, grid, 7)
	assert.Nil(t, grid[0])
	require.NotNil(t, grid[1])
	assert.Equal(t, "2024-01-01", grid[1].Date)
	require.NotNil(t, grid[2])
	assert.Equal(t, "2024-01-02", grid[2].Date)
	for _, cell := range grid[3:] {
		assert.Nil(t, cell)
	}
}

func TestBuildYearGridSundayStart(t *testing.T) {
	// January 1 2023 was a Sunday, so no leading nulls
	grid := BuildYearGrid([]ContributionEntry{{Date: "2023-01-01", Count: 1, Level: 1}}, 2023)

	require.Len(t, grid, 7)
	require.NotNil(t, grid[0])
	assert.Equal(t, "2023-01-01", grid[0].Date)
}

func TestBuildYearGridAlwaysFullWeeks(t *testing.T) {
	entries := []ContributionEntry{}
	for _, date := range []string{"2024-03-10", "2024-01-05", "2024-07-21", "2024-12-31"} {
		entries = append(entries, ContributionEntry{Date: date, Count: 1, Level: 1})
	}

	grid := BuildYearGrid(entries, 2024)
	assert.Zero(t, len(grid)%7)
}

func TestBuildYearGridEmptyYear(t *testing.T) {
	grid := BuildYearGrid([]ContributionEntry{{Date: "2022-05-01", Count: 2, Level: 1}}, 2024)
	assert.Empty(t, grid)
	assert.NotNil(t, grid)
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{4, 4},
		{9, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLevel(tt.level))
	}
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "bg-[var(--chip-bg)]", LevelColor(0))
	assert.Equal(t, "bg-green-400", LevelColor(4))

	// Out-of-range levels clamp rather than panic
	assert.Equal(t, "bg-[var(--chip-bg)]", LevelColor(-2))
	assert.Equal(t, "bg-green-400", LevelColor(7))

	assert.Len(t, LevelPalette(), 5)
}
