package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"go.uber.org/zap"

	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/pkg/dateutil"
)

func TestFeastCalendar_GetYear(t *testing.T) {
	fc := NewFeastCalendar(zap.NewNop())

	list, err := fc.GetYear(2025)
	if err != nil {
		t.Fatalf("GetYear() error = %v", err)
	}
	if len(list) != 17 {
		t.Errorf("GetYear() returned %d entries, want 17", len(list))
	}
	if list[0].Name != "Driekoningen" {
		t.Errorf("first entry = %q, want Driekoningen", list[0].Name)
	}

	if _, err := fc.GetYear(0); !errors.Is(err, feestdagen.ErrInvalidYear) {
		t.Errorf("GetYear(0) error = %v, want ErrInvalidYear", err)
	}
}

func TestFeastCalendar_GetMonthInfo(t *testing.T) {
	fc := NewFeastCalendar(zap.NewNop())

	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantDays    int
		wantSundays int
		wantFeasts  int
	}{
		{"April 2025", 2025, time.April, 30, 4, 5},
		{"December 2025", 2025, time.December, 31, 4, 5},
		{"February 2024", 2024, time.February, 29, 4, 1},
		{"August 2025", 2025, time.August, 31, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := fc.GetMonthInfo(tt.year, tt.month)
			if err != nil {
				t.Fatalf("GetMonthInfo() error = %v", err)
			}

			if info.Days != tt.wantDays {
				t.Errorf("Days = %d, want %d", info.Days, tt.wantDays)
			}
			if info.Sundays != tt.wantSundays {
				t.Errorf("Sundays = %d, want %d", info.Sundays, tt.wantSundays)
			}
			if len(info.Feasts) != tt.wantFeasts {
				t.Errorf("Feasts = %v, want %d entries", info.Feasts.Names(), tt.wantFeasts)
			}
		})
	}
}

func TestFeastCalendar_GetMonthInfo_InvalidMonth(t *testing.T) {
	fc := NewFeastCalendar(zap.NewNop())

	if _, err := fc.GetMonthInfo(2025, 13); err == nil {
		t.Error("GetMonthInfo(2025, 13) expected error, got nil")
	}
}

func TestFeastCalendar_GetDayInfo(t *testing.T) {
	fc := NewFeastCalendar(zap.NewNop())

	tests := []struct {
		name       string
		date       dateutil.Date
		wantType   DayType
		wantSunday bool
		wantFeast  string
	}{
		{"Easter Sunday", dateutil.Date{Year: 2025, Month: time.April, Day: 20}, DayTypeFeast, true, "Pasen (Eerste Paasdag)"},
		{"Ash Wednesday", dateutil.Date{Year: 2025, Month: time.March, Day: 5}, DayTypeFeast, false, "Aswoensdag"},
		{"Epiphany", dateutil.Date{Year: 2025, Month: time.January, Day: 6}, DayTypeFeast, false, "Driekoningen"},
		{"plain Sunday", dateutil.Date{Year: 2025, Month: time.April, Day: 27}, DayTypeSunday, true, ""},
		{"plain Tuesday", dateutil.Date{Year: 2025, Month: time.April, Day: 22}, DayTypeOrdinary, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := fc.GetDayInfo(tt.date)
			if err != nil {
				t.Fatalf("GetDayInfo() error = %v", err)
			}

			if info.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", info.Type, tt.wantType)
			}
			if info.IsSunday != tt.wantSunday {
				t.Errorf("IsSunday = %v, want %v", info.IsSunday, tt.wantSunday)
			}
			if tt.wantFeast == "" {
				if len(info.Feasts) != 0 {
					t.Errorf("Feasts = %v, want none", info.Feasts)
				}
				return
			}
			if len(info.Feasts) != 1 || info.Feasts[0] != tt.wantFeast {
				t.Errorf("Feasts = %v, want [%s]", info.Feasts, tt.wantFeast)
			}
		})
	}
}

func TestFeastCalendar_DayInfoAgreesWithYear(t *testing.T) {
	fc := NewFeastCalendar(zap.NewNop())

	for _, year := range []int{1900, 2024, 2025, 2100} {
		list, err := fc.GetYear(year)
		if err != nil {
			t.Fatalf("GetYear(%d) error = %v", year, err)
		}

		for _, h := range list {
			info, err := fc.GetDayInfo(h.Date)
			if err != nil {
				t.Fatalf("GetDayInfo(%v) error = %v", h.Date, err)
			}
			if info.Type != DayTypeFeast {
				t.Errorf("GetDayInfo(%v).Type = %v, want feast (%s)", h.Date, info.Type, h.Name)
			}
		}
	}
}

// rickar/cal ships its own Easter computation; both must agree.
func TestMovableFeasts_MatchReferenceEaster(t *testing.T) {
	for year := 1900; year <= 2200; year++ {
		for _, f := range feestdagen.MovableFeasts() {
			ref := &cal.Holiday{Offset: f.Offset, Func: cal.CalcEasterOffset}
			actual, _ := ref.Calc(year)

			if got := f.Date(year); got != dateutil.FromTime(actual) {
				t.Fatalf("%s %d = %v, reference = %v", f.Name, year, got, dateutil.FromTime(actual))
			}
		}
	}
}

func TestDayType_String(t *testing.T) {
	if DayTypeFeast.String() != "feestdag" {
		t.Errorf("DayTypeFeast.String() = %q", DayTypeFeast.String())
	}
	if DayType(0).String() != "onbekend" {
		t.Errorf("DayType(0).String() = %q", DayType(0).String())
	}
}
