package types

import (
	"fmt"
)

// CalendarSystem selects the calendar dates are displayed in
type CalendarSystem string

const (
	Gregorian CalendarSystem = "gregorian"
	Ethiopian CalendarSystem = "ethiopian"
)

// EthiopianDate is a day in the Ethiopian calendar, Month 13 being Pagume
type EthiopianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d EthiopianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// NoClassReason tells why no class is held on a day
type NoClassReason string

const (
	ReasonWeekend        NoClassReason = "weekend"
	ReasonHoliday        NoClassReason = "holiday"
	ReasonWeekendHoliday NoClassReason = "weekend-holiday"
)

// NoClassClassification is the result of classifying a single day
type NoClassClassification struct {
	IsNoClass   bool          `json:"isNoClass"`
	Reason      NoClassReason `json:"reason,omitempty"`
	HolidayName string        `json:"holidayName,omitempty"`
}

type SchoolYear struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	StartDate Time   `json:"startDate"`
	EndDate   Time   `json:"endDate"`
}

func (s SchoolYear) String() string {
	return fmt.Sprintf("%s (%s - %s)", s.Name, s.StartDate.ISO(), s.EndDate.ISO())
}
