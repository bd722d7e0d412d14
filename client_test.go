package ethcal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomroth04/ethcal/types"
)

const eventsBody = `{"data":{"events":[
	{"id":1,"name":"Mid-term break","type":"break","date":"2024-02-12","endDate":"2024-02-14"},
	{"id":2,"name":"Parents meeting","type":"meeting","date":"2024-02-20"},
	{"id":3,"title":"Cancelled closure","type":"closure","status":"cancelled","date":"2024-02-21"},
	{"id":4,"name":"Sports day","type":"event","noClass":true,"date":"2024-02-28"},
	{"id":5,"name":"Late closure","type":"closure","date":"2024-03-05"},
	{"id":1,"name":"Mid-term break","type":"break","date":"2024-02-12","endDate":"2024-02-14"}
]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", "st-george", "token-1")
	c.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 3)
	}
	return c
}

func TestClient_GetSchoolYears(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/school-years", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "st-george", r.Header.Get("X-School"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":2,"name":"2017 E.C.","startDate":"2024-09-11","endDate":"2025-07-07"},
			{"id":1,"name":"2016 E.C.","startDate":"2023-09-12","endDate":"2024-07-05"}
		]}`))
	})

	years, err := c.GetSchoolYears(context.Background())
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, 1, years[0].Id)

	latest, err := c.GetLatestSchoolYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2017 E.C.", latest.Name)
	assert.Equal(t, "2024-09-11", latest.StartDate.ISO())
}

func TestClient_GetSchoolYears_NoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"nope"}`))
	})

	_, err := c.GetSchoolYears(context.Background())
	assert.Error(t, err)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-02-29", r.URL.Query().Get("to"))
		w.Write([]byte(eventsBody))
	})

	events, err := c.GetClosures(context.Background(),
		types.MustParseISODate("2024-02-01"), types.MustParseISODate("2024-02-29"))
	require.NoError(t, err)
	assert.Len(t, events, 6)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetClosures(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GivesUp(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GetSchoolYears(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestClient_SyncClosures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventsBody))
	})
	cl := newTestClassifier()

	n, err := c.SyncClosures(context.Background(), cl,
		types.MustParseISODate("2024-02-01"), types.MustParseISODate("2024-02-29"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, day := range []string{"2024-02-12", "2024-02-13", "2024-02-14", "2024-02-28"} {
		got := cl.IsNoClassDay(day)
		assert.Equal(t, types.ReasonHoliday, got.Reason, day)
	}
	assert.Equal(t, "Mid-term break", cl.IsNoClassDay("2024-02-13").HolidayName)
	assert.False(t, cl.IsNoClassDay("2024-02-20").IsNoClass)
	assert.False(t, cl.IsNoClassDay("2024-02-21").IsNoClass)
	assert.False(t, cl.IsNoClassDay("2024-03-05").IsNoClass)
}
