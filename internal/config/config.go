package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/fo-weather-stations/internal/common"
	"github.com/i474232898/fo-weather-stations/internal/logging"
	"github.com/i474232898/fo-weather-stations/internal/weather"
)

var validate = validator.New()

// rawConfig holds the env values that validator can check before parsing.
type rawConfig struct {
	Stations string `validate:"required"`
	Units    string `validate:"required,oneof=metric imperial"`
	FeedURL  string `validate:"required,url"`
	AppEnv   string `validate:"required,oneof=dev prod"`
	Port     string `validate:"required"`
}

type AppConfig struct {
	// Stations to poll, resolved against the registry in configuration order.
	Stations []weather.Station

	// Units is the default unit system for sensor projections.
	Units weather.UnitSystem

	// RefreshInterval is the per-station fetch throttle window.
	RefreshInterval time.Duration

	// SchedulerInterval controls the background refresh cadence.
	SchedulerInterval time.Duration

	// FetchTimeout bounds each feed request.
	FetchTimeout time.Duration

	FeedURL  string
	Port     string
	AppEnv   string
	LogLevel slog.Level
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found", "error", err)
	}

	raw := rawConfig{
		Stations: os.Getenv("FO_STATIONS"),
		Units:    getenvDefault("UNIT_SYSTEM", "metric"),
		FeedURL:  getenvDefault("FEED_URL", "https://lv.fo/fr/excel.php"),
		AppEnv:   getenvDefault("APP_ENV", "dev"),
		Port:     getenvDefault("PORT", "8080"),
	}
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &AppConfig{
		Units:    weather.UnitSystem(raw.Units),
		FeedURL:  raw.FeedURL,
		AppEnv:   raw.AppEnv,
		Port:     raw.Port,
		LogLevel: logging.ParseLevel(getenvDefault("LOG_LEVEL", "info")),
	}

	var err error
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SchedulerInterval, err = getenvDuration("SCHEDULER_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getenvDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	stations, err := resolveStations(raw.Stations)
	if err != nil {
		return nil, err
	}
	cfg.Stations = stations

	return cfg, nil
}

// resolveStations maps FO_STATIONS keys onto registry entries, rejecting
// unknown keys up front rather than at fetch time.
func resolveStations(csv string) ([]weather.Station, error) {
	keys := common.SplitCSV(csv)
	if len(keys) == 0 {
		return nil, fmt.Errorf("FO_STATIONS must name at least one station")
	}
	stations := make([]weather.Station, 0, len(keys))
	for _, key := range keys {
		st, ok := weather.LookupStation(key)
		if !ok {
			return nil, fmt.Errorf("FO_STATIONS: unknown station key %q", key)
		}
		stations = append(stations, st)
	}
	return stations, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
