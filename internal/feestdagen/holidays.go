package feestdagen

import (
	"sort"
	"time"

	"github.com/username/feestdagen/pkg/dateutil"
)

// Kind distinguishes fixed-date feasts from feasts that move with Easter
type Kind int

const (
	KindFixed Kind = iota + 1
	KindEaster
)

// Feast defines a yearly feast day. Fixed feasts use Month and Day,
// Easter feasts use Offset in days from Easter Sunday.
type Feast struct {
	Name   string
	Kind   Kind
	Month  time.Month
	Day    int
	Offset int
}

// Date returns the date of the feast in the given year
func (f Feast) Date(year int) dateutil.Date {
	if f.Kind == KindEaster {
		return Easter(year).AddDays(f.Offset)
	}
	return dateutil.Date{Year: year, Month: f.Month, Day: f.Day}
}

var fixedFeasts = []Feast{
	{Name: "Driekoningen", Kind: KindFixed, Month: time.January, Day: 6},
	{Name: "Sinterklaasavond", Kind: KindFixed, Month: time.December, Day: 5},
	{Name: "Kerstavond", Kind: KindFixed, Month: time.December, Day: 24},
	{Name: "Eerste Kerstdag", Kind: KindFixed, Month: time.December, Day: 25},
	{Name: "Tweede Kerstdag", Kind: KindFixed, Month: time.December, Day: 26},
	{Name: "Oudejaarsavond", Kind: KindFixed, Month: time.December, Day: 31},
}

var movableFeasts = []Feast{
	{Name: "Aswoensdag", Kind: KindEaster, Offset: -46},
	{Name: "Palmzondag", Kind: KindEaster, Offset: -7},
	{Name: "Witte Donderdag", Kind: KindEaster, Offset: -3},
	{Name: "Goede Vrijdag", Kind: KindEaster, Offset: -2},
	{Name: "Pasen (Eerste Paasdag)", Kind: KindEaster, Offset: 0},
	{Name: "Tweede Paasdag", Kind: KindEaster, Offset: 1},
	{Name: "Hemelvaartsdag", Kind: KindEaster, Offset: 39},
	{Name: "Pinksteren (Eerste Pinksterdag)", Kind: KindEaster, Offset: 49},
	{Name: "Tweede Pinksterdag", Kind: KindEaster, Offset: 50},
	{Name: "Drievuldigheidszondag", Kind: KindEaster, Offset: 56},
	{Name: "Sacramentsdag (RK)", Kind: KindEaster, Offset: 60},
}

// FixedFeasts returns the fixed-date feasts in definition order
func FixedFeasts() []Feast {
	return append([]Feast(nil), fixedFeasts...)
}

// MovableFeasts returns the Easter-relative feasts in definition order
func MovableFeasts() []Feast {
	return append([]Feast(nil), movableFeasts...)
}

// Feasts returns all feast definitions, fixed first
func Feasts() []Feast {
	return append(FixedFeasts(), movableFeasts...)
}

// Holiday is a feast day on a concrete date
type Holiday struct {
	Date dateutil.Date `json:"date"`
	Name string        `json:"name"`
}

// List is a sequence of holidays ordered by date
type List []Holiday

// Holidays returns all feast days of the given year sorted by date.
// Entries on the same date keep their definition order.
func Holidays(year int) List {
	easter := Easter(year)

	list := make(List, 0, len(fixedFeasts)+len(movableFeasts))
	for _, f := range fixedFeasts {
		list = append(list, Holiday{Date: f.Date(year), Name: f.Name})
	}
	for _, f := range movableFeasts {
		list = append(list, Holiday{Date: easter.AddDays(f.Offset), Name: f.Name})
	}

	list.sortByDate()
	return list
}

// HolidaysBetween returns the feast days within [from, to], sorted by date
func HolidaysBetween(from, to dateutil.Date) List {
	var list List
	if to.Before(from) {
		return list
	}

	for year := from.Year; year <= to.Year; year++ {
		for _, h := range Holidays(year) {
			if h.Date.Before(from) || h.Date.After(to) {
				continue
			}
			list = append(list, h)
		}
	}
	return list
}

// On returns the entries on the given date
func (l List) On(date dateutil.Date) List {
	var out List
	for _, h := range l {
		if h.Date == date {
			out = append(out, h)
		}
	}
	return out
}

// InMonth returns the entries that fall in the given month
func (l List) InMonth(month time.Month) List {
	var out List
	for _, h := range l {
		if h.Date.Month == month {
			out = append(out, h)
		}
	}
	return out
}

// Names returns the holiday names in list order
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, h := range l {
		names[i] = h.Name
	}
	return names
}

func (l List) sortByDate() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Date.Before(l[j].Date)
	})
}
