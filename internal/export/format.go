package export

import (
	"github.com/goodsign/monday"

	"github.com/username/feestdagen/pkg/dateutil"
)

const (
	// LongDateLayout renders e.g. "zondag 20 april 2025"
	LongDateLayout = "Monday 02 January 2006"

	locale = monday.LocaleNlNL
)

// FormatDate renders a date the Dutch way: weekday, day, month name and year
func FormatDate(d dateutil.Date) string {
	return monday.Format(d.Time(), LongDateLayout, locale)
}

// FormatWeekday returns the Dutch name of the weekday of d
func FormatWeekday(d dateutil.Date) string {
	return monday.Format(d.Time(), "Monday", locale)
}
