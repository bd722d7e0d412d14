package types

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// GenericEvent is a school calendar event returned by the api
// uses gjson.Result as data source, schools add their own fields to events
// and the code should not break when the structure changes
type GenericEvent struct {
	R gjson.Result
}

// IsCancelled check if an event is marked as cancelled
func (g GenericEvent) IsCancelled() bool {
	return g.R.Get("status").String() == "cancelled"
}

// IsClosure checks if the school is closed for the event
func (g GenericEvent) IsClosure() bool {
	if g.R.Get("noClass").Exists() {
		return g.R.Get("noClass").Bool()
	}
	switch g.R.Get("type").String() {
	case "closure", "holiday", "break":
		return true
	}
	return false
}

// GetId gets the id of the event
func (g GenericEvent) GetId() int {
	if !g.R.Get("id").Exists() {
		return 0
	}

	return int(g.R.Get("id").Int())
}

// GetName gets the name of the event, falling back to its title
func (g GenericEvent) GetName() string {
	if name := g.R.Get("name"); name.Exists() && name.String() != "" {
		return name.String()
	}
	return g.R.Get("title").String()
}

// GetDate gets the first day of the event
func (g GenericEvent) GetDate() time.Time {
	t, err := ParseISODate(g.R.Get("date").String())
	if err != nil {
		log.Error().Err(err).Str("data", g.R.String()).Msg("error parsing event date")
		return time.Time{}
	}
	return t
}

// GetEndDate gets the last day of the event, single day events end on their date
func (g GenericEvent) GetEndDate() time.Time {
	if !g.R.Get("endDate").Exists() {
		return g.GetDate()
	}
	t, err := ParseISODate(g.R.Get("endDate").String())
	if err != nil {
		log.Error().Err(err).Str("data", g.R.String()).Msg("error parsing event end date")
		return g.GetDate()
	}
	return t
}

// Days lists every day the event covers
func (g GenericEvent) Days() []time.Time {
	start, end := g.GetDate(), g.GetEndDate()
	if start.IsZero() || end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
