package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFetchTimeout bounds each request to the console backend.
const DefaultFetchTimeout = 8 * time.Second

// StaticConfig represents the static configuration for the ACP MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `yaml:"port"`
	SSEBaseURL string `yaml:"sse_base_url"`

	// Logging configuration
	LogLevel int `yaml:"log_level"`

	// Console backend configuration
	ServerURL    string        `yaml:"server_url"`
	Token        string        `yaml:"token"`
	TLSInsecure  bool          `yaml:"tls_insecure"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// Navigation settings
	ClusterOptions   []string `yaml:"cluster_options"`
	NamespaceOptions []string `yaml:"namespace_options"`
	KubectlOpenType  string   `yaml:"kubectl_open_type"`

	// Output configuration
	ListOutput string `yaml:"list_output"`

	// Toolset configuration
	Toolsets      []string `yaml:"toolsets"`
	EnabledTools  []string `yaml:"enabled_tools"`
	DisabledTools []string `yaml:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:             0, // 0 means stdio mode
		LogLevel:         0,
		FetchTimeout:     DefaultFetchTimeout,
		ClusterOptions:   []string{"global"},
		NamespaceOptions: []string{"kube-system", "cpaas-system"},
		KubectlOpenType:  "tab",
		ListOutput:       "table",
		Toolsets:         []string{"config", "navigation"},
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

	// Validate list output
	validOutputs := map[string]bool{
		"table": true,
		"yaml":  true,
		"json":  true,
	}
	if !validOutputs[strings.ToLower(c.ListOutput)] {
		return fmt.Errorf("list_output must be one of: table, yaml, json, got %s", c.ListOutput)
	}

	if c.ServerURL != "" {
		if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
			return fmt.Errorf("server_url must start with http:// or https://, got %s", c.ServerURL)
		}
	}

	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", c.FetchTimeout)
	}

	switch c.KubectlOpenType {
	case "", "tab", "window", "current":
	default:
		return fmt.Errorf("kubectl_open_type must be one of: tab, window, current, got %s", c.KubectlOpenType)
	}

	return nil
}

// ReadConfig reads configuration from a YAML file on top of the defaults,
// without validating it. An empty path yields the defaults.
func ReadConfig(configPath string) (*StaticConfig, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	return config, nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(configPath string) (*StaticConfig, error) {
	config, err := ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// HasServerConfig returns true if a default console server is configured
func (c *StaticConfig) HasServerConfig() bool {
	return c.ServerURL != ""
}

// GetPortString returns the listen address for HTTP mode, or "" for stdio mode
func (c *StaticConfig) GetPortString() string {
	if c.Port == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.Port)
}

// GetFetchTimeout returns the configured fetch timeout, falling back to the default
func (c *StaticConfig) GetFetchTimeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return DefaultFetchTimeout
	}
	return c.FetchTimeout
}
