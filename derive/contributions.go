package derive

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ContributionEntry is one day of activity from a GitHub-style contributions
// feed. The feed is sparse; days without activity simply do not appear.
type ContributionEntry struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// BuildYearGrid lays a year of sparse contribution entries into a
// heatmap-ready sequence. Entries outside the year are dropped and the rest
// sorted ascending by date. The sequence is prefixed with nulls for the
// weekday offset of January 1 and padded with trailing nulls to a multiple of
// seven, so a renderer can fill a 7-row grid column-major with each column
// being one week. A year with no entries yields an empty slice.
func BuildYearGrid(entries []ContributionEntry, year int) []*ContributionEntry {
	yearPrefix := fmt.Sprintf("%04d-", year)
	filtered := make([]ContributionEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Date, yearPrefix) {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == 0 {
		return []*ContributionEntry{}
	}
	// ISO dates sort lexicographically in chronological order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date < filtered[j].Date
	})

	startDay := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
	grid := make([]*ContributionEntry, 0, startDay+len(filtered)+6)
	for i := 0; i < startDay; i++ {
		grid = append(grid, nil)
	}
	for i := range filtered {
		grid = append(grid, &filtered[i])
	}
	if remainder := len(grid) % 7; remainder != 0 {
		for i := 0; i < 7-remainder; i++ {
			grid = append(grid, nil)
		}
	}
	return grid
}

// ClampLevel forces a contribution level into the renderer's 0..4 palette
// range. Feeds are not validated upstream, so out-of-range values clamp to
// the nearest bucket instead of falling through to the background color.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 4 {
		return 4
	}
	return level
}

// levelPalette maps levels 0..4 to the heatmap cell classes, dimmest to
// brightest. Level 0 is the inactive chip background.
var levelPalette = [5]string{
	"bg-[var(--chip-bg)]",
	"bg-green-900",
	"bg-green-700",
	"bg-green-500",
	"bg-green-400",
}

// LevelColor returns the cell class for a contribution level, clamping
// out-of-range levels first.
func LevelColor(level int) string {
	return levelPalette[ClampLevel(level)]
}

// LevelPalette returns the five cell classes in level order.
func LevelPalette() []string {
	return levelPalette[:]
}
