package types

import (
	"strings"
	"time"
)

// necessary for unmarshalling dates from json, the api sends plain YYYY-MM-DD strings

type Time time.Time

func (t *Time) UnmarshalJSON(s []byte) (err error) {
	r := strings.Trim(string(s), `"`)
	if r == "" || r == "null" {
		*t = Time{}
		return nil
	}
	d, err := ParseISODate(r)
	if err != nil {
		return err
	}
	*(*time.Time)(t) = d

	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.ToTime().IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.ISO() + `"`), nil
}

func (t *Time) Before(u Time) bool {
	return time.Time(*t).Before(time.Time(u))
}

func (t Time) String() string {
	return time.Time(t).Format("02 January 2006")
}

// ISO formats the date as YYYY-MM-DD
func (t Time) ISO() string {
	return FormatISODate(time.Time(t))
}

func (t Time) ToTime() time.Time {
	return time.Time(t)
}
