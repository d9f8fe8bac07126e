package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// StaticConfig represents the static configuration for the AAC MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `yaml:"port"`
	SSEBaseURL string `yaml:"sse_base_url"`

	// Logging configuration
	LogLevel int `yaml:"log_level"`

	// Analytics Cloud configuration
	APIURL       string `yaml:"api_url"`
	LegacyAPIURL string `yaml:"legacy_api_url"`
	APIToken     string `yaml:"api_token"`

	// Security configuration
	ReadOnly bool `yaml:"read_only"`

	// Toolset configuration
	Toolsets      []string `yaml:"toolsets"`
	EnabledTools  []string `yaml:"enabled_tools"`
	DisabledTools []string `yaml:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:     0, // 0 means stdio mode
		LogLevel: 0,
		Toolsets: []string{"scheduling", "workspace", "data"},
		ReadOnly: false,
	}
}

// Validate validates the configuration
func (c *StaticConfig) Validate() error {
	// Validate port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	// Validate log level
	if c.LogLevel < 0 || c.LogLevel > 9 {
		return fmt.Errorf("log_level must be between 0 and 9, got %d", c.LogLevel)
	}

	// Validate Analytics Cloud configuration
	if c.APIURL != "" {
		if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
			return fmt.Errorf("api_url must start with http:// or https://, got %s", c.APIURL)
		}
		if c.APIToken == "" {
			return fmt.Errorf("aac authentication required: api_token must be provided when api_url is set")
		}
	}
	if c.LegacyAPIURL != "" {
		if !strings.HasPrefix(c.LegacyAPIURL, "http://") && !strings.HasPrefix(c.LegacyAPIURL, "https://") {
			return fmt.Errorf("legacy_api_url must start with http:// or https://, got %s", c.LegacyAPIURL)
		}
	}

	return nil
}

// LoadConfig loads configuration from a YAML file with AAC_* environment
// variables taking precedence over file values.
func LoadConfig(configPath string) (*StaticConfig, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", configPath, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", configPath, err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnv overlays AAC_API_URL, AAC_LEGACY_API_URL and AAC_API_TOKEN
// onto the configuration.
func (c *StaticConfig) applyEnv() {
	v := viper.New()
	v.SetEnvPrefix("AAC")
	v.AutomaticEnv()

	if s := v.GetString("API_URL"); s != "" {
		c.APIURL = s
	}
	if s := v.GetString("LEGACY_API_URL"); s != "" {
		c.LegacyAPIURL = s
	}
	if s := v.GetString("API_TOKEN"); s != "" {
		c.APIToken = s
	}
}

// HasAPIConfig returns true if Analytics Cloud configuration is present
func (c *StaticConfig) HasAPIConfig() bool {
	return c.APIURL != "" && c.APIToken != ""
}

// GetLegacyAPIURL returns the legacy API base URL, falling back to the
// current API URL when no separate legacy endpoint is configured.
func (c *StaticConfig) GetLegacyAPIURL() string {
	if c.LegacyAPIURL != "" {
		return c.LegacyAPIURL
	}
	return c.APIURL
}

// GetPortString returns the listen address for HTTP mode
func (c *StaticConfig) GetPortString() string {
	return fmt.Sprintf(":%d", c.Port)
}
