// Package config reads the environment of the jha command.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/session"
)

// DefaultAddr is the listen address of the HTTP server.
const DefaultAddr = ":8501"

// Config holds the workbook location and server settings.
type Config struct {
	// Dir is searched for the workbook.
	Dir string
	// File is the workbook tried first inside Dir.
	File string
	// Addr is the HTTP listen address.
	Addr string
	// Charset is the text encoding of legacy .xls workbooks.
	Charset string
	// SessionIdle is how long an untouched edit session is kept.
	SessionIdle time.Duration
	// Production selects JSON logs.
	Production bool
}

// SetupEnvironment loads .env and configures the global logger from ENV and
// LOGLEVEL.
func SetupEnvironment() {
	err := godotenv.Load()

	if isProduction() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	level, known := ParseLevel(levelStr, isProduction())
	zerolog.SetGlobalLevel(level)
	if !known {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// Reported late so the logger is ready
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; using existing environment variables.")
	}
}

// ParseLevel maps a LOGLEVEL value to a zerolog level. An empty value picks
// warn in production and info otherwise. Unknown values map to info with
// known set to false.
func ParseLevel(s string, production bool) (level zerolog.Level, known bool) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Dir:         getEnv("JHA_DIR", "."),
		File:        getEnv("JHA_FILE", jha.DefaultFileName),
		Addr:        getEnv("JHA_ADDR", DefaultAddr),
		Charset:     getEnv("JHA_CHARSET", "utf-8"),
		SessionIdle: getDuration("JHA_SESSION_IDLE", session.DefaultIdleTimeout),
		Production:  isProduction(),
	}
}

// Options returns the workbook loading options for c.
func (c *Config) Options() jha.Options {
	opts := jha.DefaultOptions()
	opts.Charset = c.Charset
	return opts
}

func isProduction() bool {
	return os.Getenv("ENV") == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}
