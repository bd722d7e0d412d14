package ethcal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, cfg.WeekendDays)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.APIBaseURL)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("ETHCAL_WEEKENDDAYS", "5, 6")
	t.Setenv("ETHCAL_APIBASEURL", "https://school.example.com")
	t.Setenv("ETHCAL_LOGLEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, cfg.WeekendDays)
	assert.Equal(t, "https://school.example.com", cfg.APIBaseURL)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("ETHCAL_SCHOOL=st-george\nETHCAL_APITOKEN=secret\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("ETHCAL_SCHOOL")
		os.Unsetenv("ETHCAL_APITOKEN")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "st-george", cfg.School)
	assert.Equal(t, "secret", cfg.APIToken)

	// a missing file is not an error
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("ETHCAL_WEEKENDDAYS", "7")
	_, err := LoadConfig("")
	assert.Error(t, err)

	t.Setenv("ETHCAL_WEEKENDDAYS", "0")
	t.Setenv("ETHCAL_LOGLEVEL", "loud")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestParseWeekendDays(t *testing.T) {
	days, err := ParseWeekendDays("0,6")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, days)

	days, err = ParseWeekendDays("")
	require.NoError(t, err)
	assert.Empty(t, days)

	_, err = ParseWeekendDays("sat")
	assert.Error(t, err)
	_, err = ParseWeekendDays("-1")
	assert.Error(t, err)
}
