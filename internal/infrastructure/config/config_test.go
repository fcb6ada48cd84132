package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	// Eval config
	assert.Equal(t, 30, cfg.Eval.TimeoutSeconds)
	assert.Equal(t, int64(1048576), cfg.Eval.MaxBodyBytes)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                 "9000",
		"HOST":                 "127.0.0.1",
		"LOG_LEVEL":            "debug",
		"LOG_DEV":              "true",
		"RATE_LIMIT_RPS":       "500",
		"RATE_LIMIT_BURST":     "1000",
		"RATE_LIMIT_ENABLED":   "false",
		"EVAL_TIMEOUT_SECONDS": "5",
		"EVAL_MAX_BODY_BYTES":  "65536",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	// Verify server config
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	// Verify logging config
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Verify rate limit config
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)

	// Verify eval config
	assert.Equal(t, 5, cfg.Eval.TimeoutSeconds)
	assert.Equal(t, int64(65536), cfg.Eval.MaxBodyBytes)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	err := os.Setenv("PORT", "3000")
	require.NoError(t, err)
	defer os.Unsetenv("PORT")

	err = os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30, cfg.Eval.TimeoutSeconds)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		host     string
		wantPort string
		wantHost string
	}{
		{
			name:     "default values",
			port:     "",
			host:     "",
			wantPort: "8000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom port",
			port:     "9000",
			host:     "",
			wantPort: "9000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom host",
			port:     "",
			host:     "localhost",
			wantPort: "8000",
			wantHost: "localhost",
		},
		{
			name:     "custom port and host",
			port:     "3000",
			host:     "127.0.0.1",
			wantPort: "3000",
			wantHost: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("PORT")
			os.Unsetenv("HOST")

			// Set test values
			if tt.port != "" {
				err := os.Setenv("PORT", tt.port)
				require.NoError(t, err)
				defer os.Unsetenv("PORT")
			}
			if tt.host != "" {
				err := os.Setenv("HOST", tt.host)
				require.NoError(t, err)
				defer os.Unsetenv("HOST")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantHost, cfg.Server.Host)
		})
	}
}

func TestEvalConfig(t *testing.T) {
	tests := []struct {
		name        string
		timeout     string
		maxBody     string
		wantTimeout int
		wantMaxBody int64
	}{
		{
			name:        "default values",
			timeout:     "",
			maxBody:     "",
			wantTimeout: 30,
			wantMaxBody: 1048576,
		},
		{
			name:        "short timeout",
			timeout:     "1",
			maxBody:     "",
			wantTimeout: 1,
			wantMaxBody: 1048576,
		},
		{
			name:        "small body limit",
			timeout:     "",
			maxBody:     "4096",
			wantTimeout: 30,
			wantMaxBody: 4096,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("EVAL_TIMEOUT_SECONDS")
			os.Unsetenv("EVAL_MAX_BODY_BYTES")

			// Set test values
			if tt.timeout != "" {
				err := os.Setenv("EVAL_TIMEOUT_SECONDS", tt.timeout)
				require.NoError(t, err)
				defer os.Unsetenv("EVAL_TIMEOUT_SECONDS")
			}
			if tt.maxBody != "" {
				err := os.Setenv("EVAL_MAX_BODY_BYTES", tt.maxBody)
				require.NoError(t, err)
				defer os.Unsetenv("EVAL_MAX_BODY_BYTES")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantTimeout, cfg.Eval.TimeoutSeconds)
			assert.Equal(t, tt.wantMaxBody, cfg.Eval.MaxBodyBytes)
		})
	}
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `server:
  port: "9100"
logging:
  level: error
eval:
  timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	// Values from the file
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Eval.TimeoutSeconds)

	// Values not in the file keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `[server]
port = "9200"
host = "localhost"

[rate_limit]
requests_per_second = 50
burst = 75
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9200", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 75, cfg.RateLimit.Burst)

	// Defaults survive the overlay
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int64(1048576), cfg.Eval.MaxBodyBytes)
}

func TestLoadFileEnvThenFileOverlay(t *testing.T) {
	err := os.Setenv("LOG_LEVEL", "debug")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `server:
  port: "9300"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	// File wins for what it sets, env wins for the rest
	assert.Equal(t, "9300", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.ini")
		require.NoError(t, os.WriteFile(path, []byte("port=9000"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config format")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nport = 1"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
