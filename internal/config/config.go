package config

import (
	"os"
	"strings"
)

// Driver selects the backend holding the persisted lesson block.
type Driver string

const (
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// DefaultBlock is the name of the persisted lesson collection.
const DefaultBlock = "dark_psychology_lessons"

type Config struct {
	StoreDriver Driver
	// StoreDSN is a directory for the file driver and a DSN for SQL drivers.
	// Empty means "use the driver default".
	StoreDSN string
	Block    string

	// StrictAnswers turns unresolvable correct-answer references into
	// errors instead of the silent fallback to option "A".
	StrictAnswers bool

	HTTPAddr string
	LogMode  string
	// LogLevel is a zap level name. Empty means info for serve and warn for
	// the one-shot commands.
	LogLevel string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		StoreDriver: DriverFile,
		Block:       DefaultBlock,
		HTTPAddr:    ":8080",
		LogMode:     "dev",
	}
}

// FromEnv overlays environment variables on Default().
func FromEnv() Config {
	def := Default()
	return Config{
		StoreDriver:   Driver(strings.ToLower(envOr("LESSONS_STORE_DRIVER", string(def.StoreDriver)))),
		StoreDSN:      envOr("LESSONS_STORE_DSN", def.StoreDSN),
		Block:         envOr("LESSONS_BLOCK", def.Block),
		StrictAnswers: envBool("LESSONS_STRICT_ANSWERS", def.StrictAnswers),
		HTTPAddr:      envOr("HTTP_ADDR", def.HTTPAddr),
		LogMode:       envOr("LOG_MODE", def.LogMode),
		LogLevel:      strings.ToLower(envOr("LOG_LEVEL", def.LogLevel)),
	}
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
