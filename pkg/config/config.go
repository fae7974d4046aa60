package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for gifsaver
type Config struct {
	// GIPHY API access
	Giphy GiphyConfig `yaml:"giphy" json:"giphy"`

	// Rate limiting of API calls
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Output directory layout
	Output OutputConfig `yaml:"output" json:"output"`

	// Export settings
	Export ExportConfig `yaml:"export" json:"export"`

	// Download settings
	Download DownloadConfig `yaml:"download" json:"download"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// GiphyConfig holds GIPHY API configuration
type GiphyConfig struct {
	APIKey      string `yaml:"api_key" json:"api_key"`
	BaseURL     string `yaml:"base_url" json:"base_url"`
	SearchLimit int    `yaml:"search_limit" json:"search_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requests_per_minute"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
	ManifestName  string `yaml:"manifest_name" json:"manifest_name"`
	Extension     string `yaml:"extension" json:"extension"`
}

// ExportConfig holds export configuration
type ExportConfig struct {
	Count int `yaml:"count" json:"count"`
}

// DownloadConfig holds download-specific configuration
type DownloadConfig struct {
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

const (
	// MaxSearchLimit is the largest page size the search endpoint accepts
	MaxSearchLimit = 50

	// APIKeyEnv is the environment variable holding the GIPHY API key
	APIKeyEnv = "GIPHY_API"
)

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Giphy: GiphyConfig{
			BaseURL:     "https://api.giphy.com",
			SearchLimit: 30,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 60,
		},
		Output: OutputConfig{
			BaseDirectory: "saved",
			ManifestName:  "list.json",
			Extension:     ".gif",
		},
		Export: ExportConfig{
			Count: 10,
		},
		Download: DownloadConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	// GIPHY_API is the historical name; GIFSAVER_API_KEY wins when both are set
	if apiKey := os.Getenv(APIKeyEnv); apiKey != "" {
		c.Giphy.APIKey = apiKey
	}
	if apiKey := os.Getenv("GIFSAVER_API_KEY"); apiKey != "" {
		c.Giphy.APIKey = apiKey
	}
	if baseURL := os.Getenv("GIFSAVER_BASE_URL"); baseURL != "" {
		c.Giphy.BaseURL = baseURL
	}
	if limit := os.Getenv("GIFSAVER_SEARCH_LIMIT"); limit != "" {
		var val int
		fmt.Sscanf(limit, "%d", &val)
		if val > 0 {
			c.Giphy.SearchLimit = val
		}
	}

	if rpm := os.Getenv("GIFSAVER_REQUESTS_PER_MINUTE"); rpm != "" {
		var val int
		fmt.Sscanf(rpm, "%d", &val)
		if val > 0 {
			c.RateLimit.RequestsPerMinute = val
		}
	}

	if outputDir := os.Getenv("GIFSAVER_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}

	if count := os.Getenv("GIFSAVER_EXPORT_COUNT"); count != "" {
		var val int
		fmt.Sscanf(count, "%d", &val)
		if val > 0 {
			c.Export.Count = val
		}
	}

	if timeout := os.Getenv("GIFSAVER_DOWNLOAD_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid GIFSAVER_DOWNLOAD_TIMEOUT: %w", err)
		}
		c.Download.Timeout = d
	}

	if logLevel := os.Getenv("GIFSAVER_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("GIFSAVER_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".gifsaver.yaml",
		".gifsaver.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "gifsaver", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".gifsaver.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid. A missing API key is not an
// error here: the API rejects the request and that surfaces as an auth error.
func (c *Config) Validate() error {
	var errs []error

	if c.Giphy.BaseURL == "" {
		errs = append(errs, errors.New("giphy base URL is required"))
	}
	if c.Giphy.SearchLimit <= 0 || c.Giphy.SearchLimit > MaxSearchLimit {
		errs = append(errs, fmt.Errorf("search limit must be between 1 and %d", MaxSearchLimit))
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, errors.New("requests per minute must be positive"))
	}

	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if c.Output.ManifestName == "" {
		errs = append(errs, errors.New("manifest name is required"))
	}
	if !strings.HasPrefix(c.Output.Extension, ".") || len(c.Output.Extension) < 2 {
		errs = append(errs, errors.New("extension must start with a dot"))
	}

	if c.Export.Count <= 0 {
		errs = append(errs, errors.New("export count must be positive"))
	}

	if c.Download.Timeout <= 0 {
		errs = append(errs, errors.New("download timeout must be positive"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Redacted returns a copy of the configuration with the API key masked
func (c *Config) Redacted() *Config {
	cp := *c
	cp.Giphy.APIKey = MaskSecret(c.Giphy.APIKey)
	return &cp
}

// MaskSecret keeps the last four characters of a secret
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if apiKey, ok := flags["api-key"].(string); ok && apiKey != "" {
		c.Giphy.APIKey = apiKey
	}
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if limit, ok := flags["limit"].(int); ok && limit > 0 {
		c.Giphy.SearchLimit = limit
	}
	if count, ok := flags["count"].(int); ok && count > 0 {
		c.Export.Count = count
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".gifsaver.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
