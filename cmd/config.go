package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort        string
	HTTPRateLimit   float64
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	SQLitePath      string
	AppTimezone     string
	WorkdayStart    string
	NotifySchedule  string
	NotifyBatchSize int
	LogLevel        string
}

// setting is one configuration key. The flag name is the key in lower
// kebab case, e.g. DB_HOST is --db-host.
type setting struct {
	key   string
	def   string
	usage string
}

var settings = []setting{
	{"HTTP_PORT", "8080", "port the HTTP server listens on"},
	{"HTTP_RATE_LIMIT", "0", "requests per second allowed per client IP, 0 disables limiting"},
	{"DB_DRIVER", DriverPostgres, "database driver: postgres or sqlite"},
	{"DB_HOST", "localhost", "postgres host"},
	{"DB_PORT", "5432", "postgres port"},
	{"DB_USER", "postgres", "postgres user"},
	{"DB_PASSWORD", "", "postgres password"},
	{"DB_NAME", "transport", "postgres database name"},
	{"DB_SSLMODE", "disable", "postgres sslmode"},
	{"SQLITE_PATH", "transport.db", "sqlite database file"},
	{"APP_TIMEZONE", "America/Lima", "IANA zone workdays are computed in"},
	{"WORKDAY_START", "08:00", "fixed start time of every closed workday"},
	{"NOTIFY_SCHEDULE", "*/5 * * * * *", "cron spec, with seconds, of the notification dispatch job"},
	{"NOTIFY_BATCH_SIZE", "100", "notifications delivered per dispatch run"},
	{"LOG_LEVEL", "info", "debug, info, warn or error"},
}

func flagName(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

// BindFlags registers one flag per configuration key plus --env-file.
func BindFlags(flags *pflag.FlagSet) {
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	for _, s := range settings {
		flags.String(flagName(s.key), s.def, s.usage+" ("+s.key+")")
	}
}

// LoadConfig resolves every key from, in increasing priority, its default,
// the dotenv file, the environment and an explicitly set flag. A missing
// dotenv file is not an error.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	envFile := ".env"
	if f := flags.Lookup("env-file"); f != nil {
		envFile = f.Value.String()
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.key] = s.def
		if v, ok := os.LookupEnv(s.key); ok {
			values[s.key] = v
		}
		if f := flags.Lookup(flagName(s.key)); f != nil && f.Changed {
			values[s.key] = f.Value.String()
		}
	}

	cfg := Config{
		HTTPPort:       values["HTTP_PORT"],
		DBDriver:       strings.ToLower(values["DB_DRIVER"]),
		DBHost:         values["DB_HOST"],
		DBPort:         values["DB_PORT"],
		DBUser:         values["DB_USER"],
		DBPassword:     values["DB_PASSWORD"],
		DBName:         values["DB_NAME"],
		DBSslMode:      values["DB_SSLMODE"],
		SQLitePath:     values["SQLITE_PATH"],
		AppTimezone:    values["APP_TIMEZONE"],
		WorkdayStart:   values["WORKDAY_START"],
		NotifySchedule: values["NOTIFY_SCHEDULE"],
		LogLevel:       values["LOG_LEVEL"],
	}

	var problems []error
	var err error
	if cfg.NotifyBatchSize, err = strconv.Atoi(values["NOTIFY_BATCH_SIZE"]); err != nil {
		problems = append(problems, fmt.Errorf("NOTIFY_BATCH_SIZE: %w", err))
	}
	if cfg.HTTPRateLimit, err = strconv.ParseFloat(values["HTTP_RATE_LIMIT"], 64); err != nil {
		problems = append(problems, fmt.Errorf("HTTP_RATE_LIMIT: %w", err))
	}
	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise only fail at first use.
func (c Config) Validate() error {
	var problems []error
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		problems = append(problems, fmt.Errorf("DB_DRIVER: %q is not postgres or sqlite", c.DBDriver))
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	if c.HTTPRateLimit < 0 {
		problems = append(problems, fmt.Errorf("HTTP_RATE_LIMIT: %v is negative", c.HTTPRateLimit))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	return errors.Join(problems...)
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.AppTimezone)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// EchoLogLevel maps LOG_LEVEL onto echo's logger.
func (c Config) EchoLogLevel() log.Lvl {
	level, _ := c.SlogLevel()
	switch {
	case level < slog.LevelInfo:
		return log.DEBUG
	case level < slog.LevelWarn:
		return log.INFO
	case level < slog.LevelError:
		return log.WARN
	default:
		return log.ERROR
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
