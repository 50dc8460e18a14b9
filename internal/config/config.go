package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AppEnv          string
	APIURL          string
	CORSOrigins     string
	NativePlatforms []string
	SessionTTL      time.Duration
	HTTPTimeout     time.Duration
	LogLevel        string
}

// Load membaca .env (kalau ada) lalu environment.
func Load() (Config, error) {
	// coba load .env, kalau gak ada ya di-skip
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		AppEnv:          getEnv("APP_ENV", "production"),
		APIURL:          strings.TrimRight(getEnv("API_URL", "http://localhost:8080/api/v1"), "/"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:8100"),
		NativePlatforms: splitList(getEnv("NATIVE_PLATFORMS", "cordova,capacitor")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "")),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", "30m"); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("API_URL %q bukan URL yang valid", cfg.APIURL)
	}
	return cfg, nil
}

func (c Config) IsDev() bool { return strings.EqualFold(c.AppEnv, "development") }

// Level maps LOG_LEVEL to a fiber log level; development defaults to debug.
func (c Config) Level() log.Level {
	switch c.LogLevel {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	case "info":
		return log.LevelInfo
	}
	if c.IsDev() {
		return log.LevelDebug
	}
	return log.LevelInfo
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getDuration(key, fallback string) (time.Duration, error) {
	s := getEnv(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
