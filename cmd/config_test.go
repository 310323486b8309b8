package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "America/Lima", cfg.AppTimezone)
	assert.Equal(t, "08:00", cfg.WorkdayStart)
	assert.Equal(t, "*/5 * * * * *", cfg.NotifySchedule)
	assert.Equal(t, 100, cfg.NotifyBatchSize)
	assert.Zero(t, cfg.HTTPRateLimit)
}

func TestLoadConfig_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadConfig(newFlags(t, "--http-port", "9100"))
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("NOTIFY_BATCH_SIZE=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("NOTIFY_BATCH_SIZE") })

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"--env-file", envFile}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.NotifyBatchSize)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"driver", []string{"--db-driver", "mysql"}},
		{"timezone", []string{"--app-timezone", "Mars/Olympus"}},
		{"batch size", []string{"--notify-batch-size", "many"}},
		{"rate limit", []string{"--http-rate-limit", "-1"}},
		{"log level", []string{"--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(newFlags(t, tt.args...))
			require.Error(t, err)
		})
	}
}

func TestConfig_EchoLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, Config{LogLevel: "debug"}.EchoLogLevel())
	assert.Equal(t, log.INFO, Config{LogLevel: "info"}.EchoLogLevel())
	assert.Equal(t, log.WARN, Config{LogLevel: "warn"}.EchoLogLevel())
	assert.Equal(t, log.ERROR, Config{LogLevel: "error"}.EchoLogLevel())
}
