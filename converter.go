// Package ethcal converts dates between the Gregorian calendar used by the school
// api and the Ethiopian calendar shown to staff, and classifies days as class or
// no-class days for the attendance calendar.
//
// Conversions never fail on bad input. A date that cannot be parsed or converted is
// logged and replaced by today's date, so a date widget keeps working:
//
//	ethcal.GregorianToEthiopian("2023-09-12") // {2016 1 1}
//	ethcal.GregorianToEthiopian("garbage")    // today, plus an error log line
//
// Only ECToGregorianISO reports an error, and only for a month or day outside the
// Ethiopian calendar.
package ethcal

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tomroth04/ethcal/ethiopic"
	. "github.com/tomroth04/ethcal/types"
)

// Converter translates dates between the two calendars.
// The zero value is not usable, create one with NewConverter.
type Converter struct {
	logger zerolog.Logger
	now    func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger fallbacks are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// WithClock sets the clock used for the today fallback.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger: log.Logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GregorianToEthiopian converts an ISO date. On any failure the error is logged
// and today's Ethiopian date is returned instead.
func (c *Converter) GregorianToEthiopian(dateISO string) EthiopianDate {
	t, err := ParseISODate(dateISO)
	if err == nil {
		var d ethiopic.Date
		if d, err = ethiopic.FromGregorian(t); err == nil {
			return toEthiopianDate(d)
		}
	}
	c.logger.Error().Err(err).Str("date", dateISO).
		Msg("error converting gregorian date, falling back to today")
	return c.EthiopianToday()
}

// ECToGregorianISO converts an Ethiopian date to YYYY-MM-DD.
//
// A month outside 1-13 or a day outside the month yields a *ValidationError.
// Any other conversion failure is logged and today's date is returned.
func (c *Converter) ECToGregorianISO(year, month, day int) (string, error) {
	if month < 1 || month > ethiopic.Pagume {
		return "", &ValidationError{Field: "month", Value: month, Min: 1, Max: ethiopic.Pagume}
	}
	if last := c.DaysInEthiopianMonth(year, month); day < 1 || day > last {
		return "", &ValidationError{Field: "day", Value: day, Min: 1, Max: last}
	}

	d, err := ethiopic.New(year, month, day)
	if err == nil {
		var t time.Time
		if t, err = d.Gregorian(); err == nil {
			return FormatISODate(t), nil
		}
	}
	c.logger.Error().Err(err).Int("year", year).Int("month", month).Int("day", day).
		Msg("error converting ethiopian date, falling back to today")
	return c.TodayISO(), nil
}

// IsEthiopianLeapYear reports whether Pagume has six days in year. It builds
// Pagume 6 and checks the date did not roll over into the next year.
func (c *Converter) IsEthiopianLeapYear(year int) bool {
	d, err := ethiopic.New(year, ethiopic.Pagume, 6)
	if err != nil {
		return false
	}
	return d.Year() == year && d.Month() == ethiopic.Pagume && d.Day() == 6
}

// DaysInEthiopianMonth returns 30 for months 1-12, 5 or 6 for Pagume and 0 otherwise.
func (c *Converter) DaysInEthiopianMonth(year, month int) int {
	switch {
	case month >= 1 && month < ethiopic.Pagume:
		return 30
	case month == ethiopic.Pagume && c.IsEthiopianLeapYear(year):
		return 6
	case month == ethiopic.Pagume:
		return 5
	}
	return 0
}

// GregorianMonthToEthiopianMonth returns the Ethiopian month containing the
// 15th of a YYYY-MM Gregorian month.
func (c *Converter) GregorianMonthToEthiopianMonth(monthStr string) int {
	m, err := ParseISOMonth(monthStr)
	if err != nil {
		c.logger.Error().Err(err).Str("month", monthStr).
			Msg("error converting gregorian month, falling back to today")
		return c.EthiopianToday().Month
	}
	return c.GregorianToEthiopian(FormatISODate(m.AddDate(0, 0, 14))).Month
}

// FormatDateForUI renders an ISO date for display. Input that is not a date is
// logged and returned as is.
func (c *Converter) FormatDateForUI(dateISO string, system CalendarSystem) string {
	t, err := ParseISODate(dateISO)
	if err != nil {
		c.logger.Error().Err(err).Str("date", dateISO).Msg("error formatting date")
		return dateISO
	}

	if system != Ethiopian {
		return t.Format("Jan 02, 2006")
	}

	ec := c.GregorianToEthiopian(dateISO)
	return fmt.Sprintf("%s፣ %s %d ቀን %d",
		AmharicWeekday(t.Weekday()), EthiopianMonthNameAmharic(ec.Month), ec.Day, ec.Year)
}

// EthiopianToday returns today's date in the Ethiopian calendar.
func (c *Converter) EthiopianToday() EthiopianDate {
	d, err := ethiopic.FromGregorian(c.now())
	if err != nil {
		c.logger.Error().Err(err).Msg("error converting today's date")
		return EthiopianDate{}
	}
	return toEthiopianDate(d)
}

// TodayISO returns today's Gregorian date as YYYY-MM-DD.
func (c *Converter) TodayISO() string {
	return FormatISODate(c.now())
}

func toEthiopianDate(d ethiopic.Date) EthiopianDate {
	return EthiopianDate{Year: d.Year(), Month: d.Month(), Day: d.Day()}
}

// --- Package-level convenience functions ---

var defaultConverter = NewConverter()

// GregorianToEthiopian converts an ISO date, falling back to today on failure.
func GregorianToEthiopian(dateISO string) EthiopianDate {
	return defaultConverter.GregorianToEthiopian(dateISO)
}

// ECToGregorianISO converts an Ethiopian date to YYYY-MM-DD.
func ECToGregorianISO(year, month, day int) (string, error) {
	return defaultConverter.ECToGregorianISO(year, month, day)
}

// IsEthiopianLeapYear reports whether Pagume has six days in year.
func IsEthiopianLeapYear(year int) bool { return defaultConverter.IsEthiopianLeapYear(year) }

// GregorianMonthToEthiopianMonth returns the Ethiopian month containing the 15th.
func GregorianMonthToEthiopianMonth(monthStr string) int {
	return defaultConverter.GregorianMonthToEthiopianMonth(monthStr)
}

// FormatDateForUI renders an ISO date in the given calendar system.
func FormatDateForUI(dateISO string, system CalendarSystem) string {
	return defaultConverter.FormatDateForUI(dateISO, system)
}
