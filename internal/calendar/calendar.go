package calendar

import (
	"time"

	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeOrdinary DayType = iota + 1
	DayTypeSunday
	DayTypeFeast
)

// String returns the Dutch label of the day type
func (t DayType) String() string {
	switch t {
	case DayTypeOrdinary:
		return "gewone dag"
	case DayTypeSunday:
		return "zondag"
	case DayTypeFeast:
		return "feestdag"
	}
	return "onbekend"
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date     dateutil.Date
	Type     DayType
	Feasts   []string
	IsSunday bool
}

// MonthInfo represents the feast days of a month
type MonthInfo struct {
	Year    int
	Month   time.Month
	Days    int
	Sundays int
	Feasts  feestdagen.List
}

// Calendar answers feast day questions for years, months and single days
type Calendar interface {
	// GetYear returns all feast days of the year in chronological order
	GetYear(year int) (feestdagen.List, error)

	// GetMonthInfo returns the feast days of one month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date dateutil.Date) (*DayInfo, error)
}
