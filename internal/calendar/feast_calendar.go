package calendar

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"go.uber.org/zap"

	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/pkg/dateutil"
)

// FeastCalendar implements Calendar for the Dutch Christian feast days
type FeastCalendar struct {
	business *cal.BusinessCalendar
	logger   *zap.Logger
}

// NewFeastCalendar creates a new FeastCalendar instance
func NewFeastCalendar(logger *zap.Logger) *FeastCalendar {
	business := cal.NewBusinessCalendar()
	for _, feast := range feestdagen.Feasts() {
		business.AddHoliday(newHoliday(feast))
	}

	return &FeastCalendar{
		business: business,
		logger:   logger,
	}
}

// newHoliday wraps a feast definition so rickar/cal evaluates it with our
// own date rules.
func newHoliday(feast feestdagen.Feast) *cal.Holiday {
	return &cal.Holiday{
		Name: feast.Name,
		Type: cal.ObservanceReligious,
		Func: func(h *cal.Holiday, year int) time.Time {
			return feast.Date(year).Time()
		},
	}
}

// GetYear returns all feast days of the year in chronological order
func (fc *FeastCalendar) GetYear(year int) (feestdagen.List, error) {
	if err := feestdagen.ValidateYear(year); err != nil {
		return nil, err
	}

	list := feestdagen.Holidays(year)
	fc.logger.Debug("Computed feast days",
		zap.Int("year", year),
		zap.Stringer("easter", feestdagen.Easter(year)),
		zap.Int("count", len(list)))

	return list, nil
}

// GetMonthInfo returns the feast days of one month
func (fc *FeastCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	list, err := fc.GetYear(year)
	if err != nil {
		return nil, err
	}

	info := &MonthInfo{
		Year:   year,
		Month:  month,
		Days:   dateutil.DaysInMonth(year, month),
		Feasts: list.InMonth(month),
	}
	for day := 1; day <= info.Days; day++ {
		if (dateutil.Date{Year: year, Month: month, Day: day}).Weekday() == time.Sunday {
			info.Sundays++
		}
	}

	return info, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FeastCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, error) {
	if err := feestdagen.ValidateYear(date.Year); err != nil {
		return nil, err
	}

	info := &DayInfo{
		Date:     date,
		Type:     DayTypeOrdinary,
		IsSunday: date.Weekday() == time.Sunday,
	}
	if info.IsSunday {
		info.Type = DayTypeSunday
	}

	actual, _, holiday := fc.business.IsHoliday(date.Time())
	if actual && holiday != nil {
		info.Type = DayTypeFeast
		info.Feasts = feestdagen.Holidays(date.Year).On(date).Names()

		fc.logger.Debug("Feast day found",
			zap.Stringer("date", date),
			zap.String("feast", holiday.Name))
	}

	return info, nil
}
