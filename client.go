package ethcal

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	. "github.com/tomroth04/ethcal/types"
)

// Client reads the school calendar from the dashboard api.
// Authentication is handled by the host, the client only forwards its token.
type Client struct {
	BaseUrl    string
	School     string
	token      string
	httpClient *resty.Client
	newBackOff func() backoff.BackOff
}

func NewClient(baseUrl string, school string, token string) *Client {
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		School:     school,
		token:      token,
		httpClient: resty.New(),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 30 * time.Second
			return b
		},
	}
}

// Make GET requests, retrying transport errors and 5xx/429 responses
func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	var resp *resty.Response

	if err := backoff.Retry(func() error {
		var err error
		resp, err = c.httpClient.R().
			SetContext(ctx).
			SetHeaders(c.getHeaders()).
			SetQueryParams(query).
			Get(c.BaseUrl + path)

		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError || resp.StatusCode() == http.StatusTooManyRequests {
			return eris.Errorf("server response %d", resp.StatusCode())
		}
		if resp.IsError() {
			return backoff.Permanent(eris.Errorf("server response %d, body: %s", resp.StatusCode(), resp.String()))
		}
		return nil
	}, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		return nil, eris.Wrapf(err, "GET %s", path)
	}

	return resp.Body(), nil
}

// GetSchoolYears gets all school years sorted by start date
func (c *Client) GetSchoolYears(ctx context.Context) ([]SchoolYear, error) {
	data, err := c.get(ctx, "/api/school-years", nil)
	if err != nil {
		return nil, err
	}
	res := gjson.GetBytes(data, "data")
	if !res.Exists() || !res.IsArray() {
		log.Error().Str("body", string(data)).Msg("school years response without data")
		return nil, eris.New("key data doesn't exist in answer")
	}

	var schoolYears []SchoolYear
	if err := json.Unmarshal([]byte(res.Raw), &schoolYears); err != nil {
		return nil, eris.Wrap(err, "school year format incorrect")
	}

	sort.Slice(schoolYears, func(i, j int) bool {
		return schoolYears[i].StartDate.Before(schoolYears[j].StartDate)
	})

	return schoolYears, nil
}

// GetLatestSchoolYear gets the school year that started last
func (c *Client) GetLatestSchoolYear(ctx context.Context) (SchoolYear, error) {
	schoolYears, err := c.GetSchoolYears(ctx)
	if err != nil {
		return SchoolYear{}, err
	}
	if len(schoolYears) == 0 {
		return SchoolYear{}, eris.New("no school years")
	}
	return schoolYears[len(schoolYears)-1], nil
}

// GetClosures gets the calendar events between two dates
func (c *Client) GetClosures(ctx context.Context, from time.Time, to time.Time) ([]GenericEvent, error) {
	data, err := c.get(ctx, "/api/calendar/events", map[string]string{
		"from": FormatISODate(from),
		"to":   FormatISODate(to),
	})
	if err != nil {
		return nil, err
	}

	res := gjson.GetBytes(data, "data.events")
	if !res.Exists() {
		log.Error().Str("body", string(data)).Msg("calendar response without events")
		return nil, eris.New("key data.events doesn't exist in answer")
	}

	return TransformResultEvents(res.Array()), nil
}

// SyncClosures registers every closure day between two dates as a custom holiday
// of the classifier and returns how many days were added.
func (c *Client) SyncClosures(ctx context.Context, cl *Classifier, from time.Time, to time.Time) (int, error) {
	events, err := c.GetClosures(ctx, from, to)
	if err != nil {
		return 0, err
	}

	from, to = dayOf(from), dayOf(to)
	n := 0
	seen := make(map[int]bool)
	for _, event := range events {
		if event.IsCancelled() || !event.IsClosure() {
			continue
		}
		// an event listed twice is synced once
		if id := event.GetId(); id != 0 {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		log.Debug().Int("id", event.GetId()).Str("name", event.GetName()).Msg("closure event")
		for _, day := range event.Days() {
			if day.Before(from) || day.After(to) {
				continue
			}
			if err := cl.AddCustomHoliday(FormatISODate(day), event.GetName()); err != nil {
				return n, err
			}
			n++
		}
	}

	log.Debug().Int("days", n).Int("events", len(events)).Msg("synced school closures")
	return n, nil
}

func (c *Client) getHeaders() map[string]string {
	headers := map[string]string{
		"Accept":        "application/json",
		"Cache-Control": "no-cache",
		"X-School":      c.School,
	}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	return headers
}
