package types

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

const (
	ISODateLayout  = "2006-01-02"
	ISOMonthLayout = "2006-01"
)

// ToJsonStr convert anything/interface{} to  string
func ToJsonStr(data any) string {
	jsonData, _ := json.Marshal(data)
	return string(jsonData)
}

// FormatISODate formats date to YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD date, a full RFC 3339 timestamp is cut down to its date
func ParseISODate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if len(date) > len(ISODateLayout) && date[len(ISODateLayout)] == 'T' {
		date = date[:len(ISODateLayout)]
	}
	t, err := time.Parse(ISODateLayout, date)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "invalid date %q", date)
	}
	return t, nil
}

// MustParseISODate parses a date and panics on error, meant for constants and tests
func MustParseISODate(date string) time.Time {
	t, err := ParseISODate(date)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseISOMonth parses a YYYY-MM month
func ParseISOMonth(month string) (time.Time, error) {
	t, err := time.Parse(ISOMonthLayout, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "invalid month %q", month)
	}
	return t, nil
}

// TransformResultEvents converts gjson.Result to GenericEvent
func TransformResultEvents(res []gjson.Result) []GenericEvent {
	result := make([]GenericEvent, len(res))
	for i := 0; i < len(res); i++ {
		result[i].R = res[i]
	}
	return result
}
