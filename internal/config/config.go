// Package config loads application configuration from environment
// variables. Values from a .env file are applied by the caller first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds all runtime configuration values.
type Config struct {
	Env  string // application environment (dev, test, prod)
	Port string // HTTP port to listen on

	DBDriver   string // mysql or sqlite
	DBUser     string
	DBPass     string // optional
	DBHost     string
	DBPort     string
	DBName     string
	SQLitePath string // database file when DBDriver is sqlite

	LogLevel string // debug, info, warn or error
	LogFile  string // optional second log sink

	AMQPURL         string // broker for directory events; empty disables publishing
	ActivityLogPath string // file the consume command appends to
}

// Load reads the configuration. Required variables that are unset or
// empty, and malformed values, are reported as an error naming the
// first offending variable.
func Load() (Config, error) {
	e := &loader{}
	cfg := Config{
		Env:             e.must("APP_ENV"),
		Port:            strconv.Itoa(e.mustInt("APP_PORT")),
		DBDriver:        strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFile:         os.Getenv("LOG_FILE"),
		AMQPURL:         getenv("AMQP_URL", os.Getenv("RABBITMQ_URL")),
		ActivityLogPath: getenv("ACTIVITY_LOG_PATH", "logs/activity.log"),
	}
	switch cfg.DBDriver {
	case DriverMySQL:
		cfg.DBUser = e.must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = e.must("DB_HOST")
		cfg.DBPort = strconv.Itoa(e.mustInt("DB_PORT"))
		cfg.DBName = e.must("DB_NAME")
	case DriverSQLite:
		cfg.SQLitePath = getenv("SQLITE_PATH", "fyyur.db")
	default:
		e.fail(fmt.Errorf("unsupported DB_DRIVER: %q", cfg.DBDriver))
	}
	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, nil
}

// loader remembers the first error so Load can read every variable
// in one pass.
type loader struct{ err error }

func (l *loader) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// must returns a required variable.
func (l *loader) must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		l.fail(fmt.Errorf("missing required env var: %s", key))
	}
	return v
}

// mustInt is like must but the value has to be an integer.
func (l *loader) mustInt(key string) int {
	s := l.must(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		l.fail(fmt.Errorf("invalid int for %s: %q", key, s))
	}
	return n
}
