package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Port != 0 {
		t.Errorf("Expected Port to be 0, got %d", config.Port)
	}

	if config.LogLevel != 0 {
		t.Errorf("Expected LogLevel to be 0, got %d", config.LogLevel)
	}

	if config.ListOutput != "table" {
		t.Errorf("Expected ListOutput to be 'table', got '%s'", config.ListOutput)
	}

	if config.FetchTimeout != 8*time.Second {
		t.Errorf("Expected FetchTimeout to be 8s, got %s", config.FetchTimeout)
	}

	if config.KubectlOpenType != "tab" {
		t.Errorf("Expected KubectlOpenType to be 'tab', got '%s'", config.KubectlOpenType)
	}

	if len(config.ClusterOptions) != 1 || config.ClusterOptions[0] != "global" {
		t.Errorf("Expected default cluster options [global], got %v", config.ClusterOptions)
	}

	expectedNamespaces := []string{"kube-system", "cpaas-system"}
	if len(config.NamespaceOptions) != len(expectedNamespaces) {
		t.Fatalf("Expected %d default namespace options, got %d", len(expectedNamespaces), len(config.NamespaceOptions))
	}
	for i, ns := range expectedNamespaces {
		if config.NamespaceOptions[i] != ns {
			t.Errorf("Expected namespaceOptions[%d] to be '%s', got '%s'", i, ns, config.NamespaceOptions[i])
		}
	}

	expectedToolsets := []string{"config", "navigation"}
	for i, toolset := range expectedToolsets {
		if config.Toolsets[i] != toolset {
			t.Errorf("Expected toolsets[%d] to be '%s', got '%s'", i, toolset, config.Toolsets[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *StaticConfig
		wantErr bool
	}{
		{
			name:    "valid default config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid port",
			config: &StaticConfig{
				Port:       8080,
				ListOutput: "table",
			},
			wantErr: false,
		},
		{
			name: "invalid port negative",
			config: &StaticConfig{
				Port:       -1,
				ListOutput: "table",
			},
			wantErr: true,
		},
		{
			name: "invalid port too high",
			config: &StaticConfig{
				Port:       65536,
				ListOutput: "table",
			},
			wantErr: true,
		},
		{
			name: "invalid log level too high",
			config: &StaticConfig{
				LogLevel:   10,
				ListOutput: "table",
			},
			wantErr: true,
		},
		{
			name: "valid list output json",
			config: &StaticConfig{
				ListOutput: "json",
			},
			wantErr: false,
		},
		{
			name: "invalid list output",
			config: &StaticConfig{
				ListOutput: "invalid",
			},
			wantErr: true,
		},
		{
			name: "valid server url",
			config: &StaticConfig{
				ServerURL:  "https://console.example.com",
				Token:      "token123",
				ListOutput: "table",
			},
			wantErr: false,
		},
		{
			name: "server url without scheme",
			config: &StaticConfig{
				ServerURL:  "console.example.com",
				ListOutput: "table",
			},
			wantErr: true,
		},
		{
			name: "negative fetch timeout",
			config: &StaticConfig{
				FetchTimeout: -time.Second,
				ListOutput:   "table",
			},
			wantErr: true,
		},
		{
			name: "window open type",
			config: &StaticConfig{
				KubectlOpenType: "window",
				ListOutput:      "table",
			},
			wantErr: false,
		},
		{
			name: "unknown open type",
			config: &StaticConfig{
				KubectlOpenType: "popup",
				ListOutput:      "table",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
port: 8080
log_level: 2
list_output: yaml
server_url: https://console.example.com
token: test-token
fetch_timeout: 3s
cluster_options:
  - global
  - business-1
kubectl_open_type: window
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Port != 8080 {
		t.Errorf("Expected Port to be 8080, got %d", config.Port)
	}

	if config.LogLevel != 2 {
		t.Errorf("Expected LogLevel to be 2, got %d", config.LogLevel)
	}

	if config.ListOutput != "yaml" {
		t.Errorf("Expected ListOutput to be 'yaml', got '%s'", config.ListOutput)
	}

	if config.ServerURL != "https://console.example.com" {
		t.Errorf("Expected ServerURL to be 'https://console.example.com', got '%s'", config.ServerURL)
	}

	if config.Token != "test-token" {
		t.Errorf("Expected Token to be 'test-token', got '%s'", config.Token)
	}

	if config.FetchTimeout != 3*time.Second {
		t.Errorf("Expected FetchTimeout to be 3s, got %s", config.FetchTimeout)
	}

	if len(config.ClusterOptions) != 2 || config.ClusterOptions[1] != "business-1" {
		t.Errorf("Expected cluster options [global business-1], got %v", config.ClusterOptions)
	}

	// Unset keys keep their defaults
	if len(config.NamespaceOptions) != 2 {
		t.Errorf("Expected default namespace options to survive, got %v", config.NamespaceOptions)
	}

	if config.KubectlOpenType != "window" {
		t.Errorf("Expected KubectlOpenType to be 'window', got '%s'", config.KubectlOpenType)
	}

	// Test loading non-existent config
	_, err = LoadConfig("/non/existent/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent config file")
	}

	// Test loading invalid config
	invalidConfigPath := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalidConfigPath, []byte("invalid: yaml: content: ["), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = LoadConfig(invalidConfigPath)
	if err == nil {
		t.Error("Expected error for invalid config file")
	}
}

func TestReadConfigSkipsValidation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("port: 70000\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if config.Port != 70000 {
		t.Errorf("Expected Port to be 70000, got %d", config.Port)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("Expected LoadConfig to reject port 70000")
	}
}

func TestGetPortString(t *testing.T) {
	tests := []struct {
		name   string
		config *StaticConfig
		expect string
	}{
		{
			name:   "stdio mode (port 0)",
			config: &StaticConfig{Port: 0},
			expect: "",
		},
		{
			name:   "http mode port 8080",
			config: &StaticConfig{Port: 8080},
			expect: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetPortString()
			if result != tt.expect {
				t.Errorf("GetPortString() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func TestGetFetchTimeout(t *testing.T) {
	if got := (&StaticConfig{}).GetFetchTimeout(); got != DefaultFetchTimeout {
		t.Errorf("Expected default fetch timeout, got %s", got)
	}
	if got := (&StaticConfig{FetchTimeout: time.Second}).GetFetchTimeout(); got != time.Second {
		t.Errorf("Expected 1s fetch timeout, got %s", got)
	}
}

func TestHasServerConfig(t *testing.T) {
	if (&StaticConfig{}).HasServerConfig() {
		t.Error("Expected no server config")
	}
	if !(&StaticConfig{ServerURL: "https://console.example.com"}).HasServerConfig() {
		t.Error("Expected server config")
	}
}
