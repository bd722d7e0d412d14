package ethcal

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the settings read from the environment, prefixed with ETHCAL_
// (ETHCAL_WEEKENDDAYS, ETHCAL_APIBASEURL, ...).
type Config struct {
	WeekendDays []time.Weekday
	APIBaseURL  string
	School      string
	APIToken    string
	LogLevel    zerolog.Level
}

// LoadConfig reads the configuration. The dotenv file is loaded first when it
// exists; variables already set in the environment win over it.
func LoadConfig(dotEnvPath string) (Config, error) {
	v := viper.New()

	// defaults
	v.SetDefault("weekendDays", "0,6")
	v.SetDefault("apiBaseURL", "")
	v.SetDefault("school", "")
	v.SetDefault("apiToken", "")
	v.SetDefault("logLevel", "info")

	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return Config{}, eris.Wrapf(err, "loading %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, eris.Wrapf(err, "stat %s", dotEnvPath)
		}
	}

	v.SetEnvPrefix("ethcal")
	v.AutomaticEnv()

	weekend, err := ParseWeekendDays(v.GetString("weekendDays"))
	if err != nil {
		return Config{}, err
	}
	level, err := zerolog.ParseLevel(v.GetString("logLevel"))
	if err != nil {
		return Config{}, eris.Wrapf(err, "invalid log level %q", v.GetString("logLevel"))
	}

	return Config{
		WeekendDays: weekend,
		APIBaseURL:  v.GetString("apiBaseURL"),
		School:      v.GetString("school"),
		APIToken:    v.GetString("apiToken"),
		LogLevel:    level,
	}, nil
}

// ParseWeekendDays parses a comma separated list of weekday numbers, 0 being Sunday.
// An empty list means no weekend at all.
func ParseWeekendDays(s string) ([]time.Weekday, error) {
	days := []time.Weekday{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, eris.Errorf("invalid weekend day %q: must be 0 (Sunday) to 6 (Saturday)", part)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}
