package types

import "time"

// Holiday is a named calendar event on a specific Ethiopian/Gregorian date pair
type Holiday struct {
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	EthiopianDate EthiopianDate `json:"ethiopianDate"`
	GregorianDate string        `json:"gregorianDate"`
}

// GetGregorianDate parses GregorianDate, the zero Time is returned for a malformed date
func (h Holiday) GetGregorianDate() Time {
	t, err := ParseISODate(h.GregorianDate)
	if err != nil {
		return Time{}
	}
	return Time(t)
}

// HasTag reports whether the holiday carries tag
func (h Holiday) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Year returns the Gregorian year of the holiday
func (h Holiday) Year() int {
	return time.Time(h.GetGregorianDate()).Year()
}
