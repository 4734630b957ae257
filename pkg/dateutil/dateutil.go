package dateutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// ISODate is the canonical text layout of a Date
	ISODate = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar date without time of day or time zone
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewDate creates a Date, normalizing out-of-range month and day values
// the same way time.Date does (e.g. April 31 becomes May 1)
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysSince returns the number of days from other to d
func (d Date) DaysSince(other Date) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return d == other
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats d as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format(ISODate)
}

// MarshalText implements encoding.TextMarshaler (YYYY-MM-DD)
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// jsonDate keeps the object form in JSON; without it encoding/json
// would prefer MarshalText and write a string.
type jsonDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// MarshalJSON encodes d as {"year":..,"month":..,"day":..}
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDate(d))
}

// UnmarshalJSON accepts the object form as well as a "YYYY-MM-DD" string
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(text))
	}

	var obj jsonDate
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	*d = Date(obj)
	return nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		ISODate,
		"02-01-2006",
		"02.01.2006",
		"2-1-2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date: %q", dateStr)
}

// Today returns today's date in the local time zone
func Today() Date {
	return FromTime(time.Now())
}
