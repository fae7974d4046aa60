package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// clearEnv isolates a test from variables set in the surrounding shell
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		APIKeyEnv,
		"GIFSAVER_API_KEY",
		"GIFSAVER_BASE_URL",
		"GIFSAVER_SEARCH_LIMIT",
		"GIFSAVER_REQUESTS_PER_MINUTE",
		"GIFSAVER_OUTPUT_DIR",
		"GIFSAVER_EXPORT_COUNT",
		"GIFSAVER_DOWNLOAD_TIMEOUT",
		"GIFSAVER_LOG_LEVEL",
		"GIFSAVER_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.giphy.com", cfg.Giphy.BaseURL)
	assert.Equal(t, 30, cfg.Giphy.SearchLimit)
	assert.Empty(t, cfg.Giphy.APIKey)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "saved", cfg.Output.BaseDirectory)
	assert.Equal(t, "list.json", cfg.Output.ManifestName)
	assert.Equal(t, ".gif", cfg.Output.Extension)
	assert.Equal(t, 10, cfg.Export.Count)
	assert.Equal(t, 30*time.Second, cfg.Download.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "legacy-key")
	t.Setenv("GIFSAVER_SEARCH_LIMIT", "25")
	t.Setenv("GIFSAVER_REQUESTS_PER_MINUTE", "30")
	t.Setenv("GIFSAVER_OUTPUT_DIR", "/tmp/gifs")
	t.Setenv("GIFSAVER_EXPORT_COUNT", "5")
	t.Setenv("GIFSAVER_DOWNLOAD_TIMEOUT", "45s")
	t.Setenv("GIFSAVER_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "legacy-key", cfg.Giphy.APIKey)
	assert.Equal(t, 25, cfg.Giphy.SearchLimit)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "/tmp/gifs", cfg.Output.BaseDirectory)
	assert.Equal(t, 5, cfg.Export.Count)
	assert.Equal(t, 45*time.Second, cfg.Download.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvAPIKeyPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "legacy-key")
	t.Setenv("GIFSAVER_API_KEY", "new-key")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())
	assert.Equal(t, "new-key", cfg.Giphy.APIKey)
}

func TestLoadFromEnvInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIFSAVER_DOWNLOAD_TIMEOUT", "soon")

	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadFromEnv())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
giphy:
  api_key: file-key
  search_limit: 20
output:
  base_directory: ./gifs
export:
  count: 3
download:
  timeout: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "file-key", cfg.Giphy.APIKey)
	assert.Equal(t, 20, cfg.Giphy.SearchLimit)
	assert.Equal(t, "./gifs", cfg.Output.BaseDirectory)
	assert.Equal(t, 3, cfg.Export.Count)
	assert.Equal(t, 10*time.Second, cfg.Download.Timeout)
	// untouched values keep their defaults
	assert.Equal(t, "list.json", cfg.Output.ManifestName)
}

func TestLoadFromFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("giphy: [unclosed"), 0644))
	assert.Error(t, cfg.LoadFromFile(bad))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing api key is allowed", func(c *Config) { c.Giphy.APIKey = "" }, false},
		{"zero search limit", func(c *Config) { c.Giphy.SearchLimit = 0 }, true},
		{"search limit too large", func(c *Config) { c.Giphy.SearchLimit = MaxSearchLimit + 1 }, true},
		{"empty base url", func(c *Config) { c.Giphy.BaseURL = "" }, true},
		{"zero rate limit", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, true},
		{"empty output dir", func(c *Config) { c.Output.BaseDirectory = "" }, true},
		{"empty manifest name", func(c *Config) { c.Output.ManifestName = "" }, true},
		{"extension without dot", func(c *Config) { c.Output.Extension = "gif" }, true},
		{"zero export count", func(c *Config) { c.Export.Count = 0 }, true},
		{"zero timeout", func(c *Config) { c.Download.Timeout = 0 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"api-key":   "flag-key",
		"output":    "./out",
		"limit":     15,
		"count":     4,
		"log-level": "warn",
	})

	assert.Equal(t, "flag-key", cfg.Giphy.APIKey)
	assert.Equal(t, "./out", cfg.Output.BaseDirectory)
	assert.Equal(t, 15, cfg.Giphy.SearchLimit)
	assert.Equal(t, 4, cfg.Export.Count)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  base_directory: from-file\nexport:\n  count: 7\n"), 0644))

	t.Setenv("GIFSAVER_OUTPUT_DIR", "from-env")

	cfg, err := Load(path, map[string]interface{}{"count": 2})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Output.BaseDirectory)
	assert.Equal(t, 2, cfg.Export.Count)
}

func TestLoadValidationFailure(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: chatty\n"), 0644))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestRedacted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Giphy.APIKey = "abcdef123456"

	redacted := cfg.Redacted()
	assert.Equal(t, "********3456", redacted.Giphy.APIKey)
	assert.Equal(t, "abcdef123456", cfg.Giphy.APIKey, "original must be untouched")

	out, err := yaml.Marshal(redacted)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "abcdef")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "***", MaskSecret("abc"))
	assert.Equal(t, "**cdef", MaskSecret("abcdef"))
}
