package feestdagen

import (
	"time"

	"github.com/username/feestdagen/pkg/dateutil"
)

// Easter returns Easter Sunday of the given year in the Gregorian calendar,
// computed with the anonymous Gregorian (Meeus/Jones/Butcher) algorithm.
// The result always falls between March 22 and April 25.
func Easter(year int) dateutil.Date {
	a := mod(year, 19)
	b := div(year, 100)
	c := mod(year, 100)
	d := div(b, 4)
	e := mod(b, 4)
	f := div(b+8, 25)
	g := div(b-f+1, 3)
	h := mod(19*a+b-d-g+15, 30)
	i := c / 4
	k := c % 4
	l := mod(32+2*e+2*i-h-k, 7)
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return dateutil.Date{Year: year, Month: time.Month(month), Day: day}
}

// div and mod round toward negative infinity so that years before 1 AD
// stay on the same cycle as positive years.
func div(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func mod(x, y int) int {
	r := x % y
	if r < 0 {
		r += y
	}
	return r
}
