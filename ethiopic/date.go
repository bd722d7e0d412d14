// Package ethiopic implements Ethiopian calendar arithmetic.
//
// Dates are converted through Julian Day Numbers using the Amete Mihret epoch, so
// any Ethiopian date from year 1 onwards maps to exactly one Gregorian date and back.
//
//	d, _ := ethiopic.FromGregorian(time.Date(2023, time.September, 12, 0, 0, 0, 0, time.UTC))
//	fmt.Println(d) // 2016-01-01
package ethiopic

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
)

const (
	// amateMihretEpoch is the JDN offset of the Amete Mihret era.
	amateMihretEpoch = 1723856

	// unixEpochJDN is the JDN of 1970-01-01.
	unixEpochJDN = 2440588

	// Pagume is the thirteenth month.
	Pagume = 13
)

// ErrOutOfRange is returned for dates before Meskerem 1 of year 1.
var ErrOutOfRange = eris.New("date outside the supported Ethiopian calendar range")

// Date is a day in the Ethiopian calendar.
// Construct one with New, FromGregorian, FromJDN or Parse.
type Date struct {
	year  int
	month int
	day   int
}

// New builds an Ethiopian date by day arithmetic from Meskerem 1 of year.
// Day overflow is carried like the calendar does: Pagume 6 of a common year
// becomes Meskerem 1 of the next year.
func New(year, month, day int) (Date, error) {
	if year < 1 {
		return Date{}, eris.Wrapf(ErrOutOfRange, "year %d", year)
	}
	if month < 1 || month > Pagume {
		return Date{}, eris.Errorf("month %d out of range [1, %d]", month, Pagume)
	}
	if day < 1 {
		return Date{}, eris.Errorf("day %d must be positive", day)
	}
	return FromJDN(toJDN(year, month, day))
}

// FromJDN converts a Julian Day Number to an Ethiopian date.
func FromJDN(jdn int) (Date, error) {
	if jdn < toJDN(1, 1, 1) {
		return Date{}, eris.Wrapf(ErrOutOfRange, "jdn %d", jdn)
	}
	r := mod(jdn-amateMihretEpoch, 1461)
	n := mod(r, 365) + 365*(r/1460)

	return Date{
		year:  4*floorDiv(jdn-amateMihretEpoch, 1461) + r/365 - r/1460,
		month: n/30 + 1,
		day:   mod(n, 30) + 1,
	}, nil
}

// FromGregorian converts the calendar date of t (in its own location) to Ethiopian.
func FromGregorian(t time.Time) (Date, error) {
	return FromJDN(GregorianJDN(t))
}

// Parse reads an Ethiopian date written as YYYY-MM-DD.
// Unlike New, the day must exist in the given month.
func Parse(s string) (Date, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); err != nil {
		return Date{}, eris.Wrapf(err, "parsing ethiopian date %q", s)
	}
	if m < 1 || m > Pagume || d < 1 || d > DaysInMonth(y, m) {
		return Date{}, eris.Errorf("ethiopian date %q does not exist", s)
	}
	return New(y, m, d)
}

// Year returns the Ethiopian year.
func (d Date) Year() int { return d.year }

// Month returns the month, 1 (Meskerem) through 13 (Pagume).
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.year == 0 }

// JDN returns the Julian Day Number of d.
func (d Date) JDN() int {
	return toJDN(d.year, d.month, d.day)
}

// Gregorian returns d as midnight UTC on the matching Gregorian day.
func (d Date) Gregorian() (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, eris.New("zero ethiopian date")
	}
	return JDNToGregorian(d.JDN()), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeap reports whether Pagume has six days in the given Ethiopian year.
func IsLeap(year int) bool {
	return mod(year, 4) == 3
}

// DaysInMonth returns the number of days in month of year, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month < Pagume:
		return 30
	case month == Pagume && IsLeap(year):
		return 6
	case month == Pagume:
		return 5
	}
	return 0
}

// GregorianJDN returns the Julian Day Number of t's calendar date.
func GregorianJDN(t time.Time) int {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return int(days) + unixEpochJDN
}

// JDNToGregorian returns midnight UTC of the Gregorian day with the given JDN.
func JDNToGregorian(jdn int) time.Time {
	return time.Unix(int64(jdn-unixEpochJDN)*86400, 0).UTC()
}

func toJDN(year, month, day int) int {
	return amateMihretEpoch + 365 + 365*(year-1) + floorDiv(year, 4) + 30*month + day - 31
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
