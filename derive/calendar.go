package derive

import "time"

// MonthGrid is a render-ready month calendar. Cells holds nil for the blank
// cells before day 1 and after the last day, padding the total to full weeks.
type MonthGrid struct {
	MonthLabel string `json:"monthLabel"`
	Cells      []*int `json:"cells"`
	TodayDay   int    `json:"todayDay"`
}

// BuildMonthGrid lays out the month containing the given year/month as rows
// of seven. Leading nils equal the weekday index (Sunday = 0) of the first of
// the month; trailing nils complete the final week. TodayDay is today's
// day-of-month when today falls inside the requested month, otherwise 0, and
// is only ever compared for equality by the renderer.
func BuildMonthGrid(year int, month time.Month, today time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	// Day zero of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location()).Day()
	leading := int(first.Weekday())

	cells := make([]*int, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := day
		cells = append(cells, &d)
	}
	if remainder := len(cells) % 7; remainder != 0 {
		for i := 0; i < 7-remainder; i++ {
			cells = append(cells, nil)
		}
	}

	todayDay := 0
	if today.Year() == year && today.Month() == month {
		todayDay = today.Day()
	}
	return MonthGrid{
		MonthLabel: first.Format("January 2006"),
		Cells:      cells,
		TodayDay:   todayDay,
	}
}
