package ethiopic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func g(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		year  int
		month int
		day   int
	}{
		{"new year after leap", g(2023, time.September, 12), 2016, 1, 1},
		{"new year", g(2024, time.September, 11), 2017, 1, 1},
		{"leap pagume 6", g(2023, time.September, 11), 2015, 13, 6},
		{"common pagume 5", g(2024, time.September, 10), 2016, 13, 5},
		{"genna", g(2024, time.January, 7), 2016, 4, 28},
		{"adwa", g(2025, time.March, 2), 2017, 6, 23},
		{"y2k", g(2000, time.January, 1), 1992, 4, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromGregorian(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestFromGregorian_IgnoresLocation(t *testing.T) {
	addis := time.FixedZone("EAT", 3*60*60)
	d, err := FromGregorian(time.Date(2023, time.September, 12, 23, 30, 0, 0, addis))
	require.NoError(t, err)
	assert.Equal(t, "2016-01-01", d.String())
}

func TestRoundTrip(t *testing.T) {
	start := g(1990, time.January, 1)
	for i := 0; i < 365*40; i++ {
		day := start.AddDate(0, 0, i)
		d, err := FromGregorian(day)
		require.NoError(t, err)
		back, err := d.Gregorian()
		require.NoError(t, err)
		if !assert.True(t, back.Equal(day), "%s -> %s -> %s", day.Format("2006-01-02"), d, back.Format("2006-01-02")) {
			return
		}
	}
}

func TestNew_Overflow(t *testing.T) {
	d, err := New(2016, Pagume, 6)
	require.NoError(t, err)
	assert.Equal(t, "2017-01-01", d.String())

	d, err = New(2015, Pagume, 6)
	require.NoError(t, err)
	assert.Equal(t, "2015-13-06", d.String())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(0, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = New(2016, 14, 1)
	assert.Error(t, err)

	_, err = New(2016, 1, 0)
	assert.Error(t, err)
}

func TestFromJDN_BeforeEpoch(t *testing.T) {
	_, err := FromJDN(toJDN(1, 1, 1) - 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParse(t *testing.T) {
	d, err := Parse("2016-13-05")
	require.NoError(t, err)
	assert.Equal(t, 13, d.Month())

	_, err = Parse("2016-13-06")
	assert.Error(t, err)

	_, err = Parse("not a date")
	assert.Error(t, err)
}

func TestIsLeap(t *testing.T) {
	assert.True(t, IsLeap(2011))
	assert.True(t, IsLeap(2015))
	assert.False(t, IsLeap(2016))
	assert.False(t, IsLeap(2017))
	assert.True(t, IsLeap(2019))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2016, 1))
	assert.Equal(t, 30, DaysInMonth(2016, 12))
	assert.Equal(t, 5, DaysInMonth(2016, Pagume))
	assert.Equal(t, 6, DaysInMonth(2015, Pagume))
	assert.Equal(t, 0, DaysInMonth(2016, 0))
	assert.Equal(t, 0, DaysInMonth(2016, 14))
}
