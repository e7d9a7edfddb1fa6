// Package config resolves settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultTheme     = "classic"
	DefaultPrecision = 2
	MaxPrecision     = 6
	DefaultLogLevel  = "warn"
)

type Config struct {
	Theme     string // classic | neon | mono
	Precision int    // decimals shown for averages
	LogLevel  string // debug | info | warn | error
}

// Load reads GPA_THEME, GPA_PRECISION and GPA_LOG_LEVEL. NO_COLOR forces
// the mono theme. A missing .env file is fine.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Theme:     strings.ToLower(getEnv("GPA_THEME", DefaultTheme)),
		Precision: ClampPrecision(getEnvInt("GPA_PRECISION", DefaultPrecision)),
		LogLevel:  strings.ToLower(getEnv("GPA_LOG_LEVEL", DefaultLogLevel)),
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Theme = "mono"
	}
	return cfg
}

// ClampPrecision keeps p within [0, MaxPrecision].
func ClampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
