package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// DateOnly is a calendar date with no time-of-day component. It marshals to
// and from bare "YYYY-MM-DD" strings, which is the wire format the admin
// dashboard sends for scheduled and due dates.
type DateOnly struct {
	time.Time
}

// ParseDateOnly parses a "YYYY-MM-DD" string.
func ParseDateOnly(value string) (DateOnly, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(value))
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return DateOnly{t}, nil
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d DateOnly) String() string {
	return d.Format(dayLayout)
}

// Equal reports whether both values name the same calendar day.
func (d DateOnly) Equal(other DateOnly) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Before reports whether d names an earlier calendar day than other.
func (d DateOnly) Before(other DateOnly) bool {
	return d.String() < other.String()
}

// After reports whether d names a later calendar day than other.
func (d DateOnly) After(other DateOnly) bool {
	return d.String() > other.String()
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = DateOnly{}
		return nil
	}
	parsed, err := ParseDateOnly(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so gorm stores a date column.
func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *DateOnly) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
}
