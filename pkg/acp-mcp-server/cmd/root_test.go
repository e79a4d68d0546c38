package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newTestStreams() IOStreams {
	return IOStreams{
		In:     &bytes.Buffer{},
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
	}
}

func TestVersionCommand(t *testing.T) {
	streams := newTestStreams()

	cmd := NewMCPServer(streams)

	// Test version command
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Version command failed: %v", err)
	}

	output := streams.Out.(*bytes.Buffer).String()
	if !strings.Contains(output, "acp-mcp-server") {
		t.Errorf("Version output should contain 'acp-mcp-server', got: %s", output)
	}

	if !strings.Contains(output, "Version:") {
		t.Errorf("Version output should contain 'Version:', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	streams := newTestStreams()

	cmd := NewMCPServer(streams)

	// Test help command
	cmd.SetArgs([]string{"--help"})
	_ = cmd.Execute()

	output := streams.Out.(*bytes.Buffer).String()

	if !strings.Contains(output, "ACP MCP Server") {
		t.Errorf("Help output should contain 'ACP MCP Server', got: %s", output)
	}

	for _, flag := range []string{"--port", "--server-url", "--cluster-options", "--help"} {
		if !strings.Contains(output, flag) {
			t.Errorf("Help output should contain '%s' flag, got: %s", flag, output)
		}
	}

	for _, sub := range []string{"classify", "switch", "kubectl", "options"} {
		if !strings.Contains(output, sub) {
			t.Errorf("Help output should list the '%s' command, got: %s", sub, output)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	cmd := NewMCPServer(newTestStreams())

	// Test with invalid arguments
	cmd.SetArgs([]string{"--invalid-flag", "value"})

	// Execute should fail with invalid flag
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Command should fail with invalid flag")
	}
	if !strings.Contains(err.Error(), "unknown flag") {
		t.Errorf("Error should mention invalid flag, got: %v", err)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	cmd := NewMCPServer(newTestStreams())
	cmd.SetArgs([]string{"--kubectl-open-type", "popup"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "kubectl_open_type") {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestClassifyCommand(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)
	cmd.SetArgs([]string{"classify", "-o", "yaml", "https://console.example.com/console-acp/workspace/p~business-1~team-a/home"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	output := streams.Out.(*bytes.Buffer).String()
	for _, want := range []string{"family: acp", "cluster: business-1", "namespace: team-a"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output: %s", want, output)
		}
	}
}

func TestSwitchCommand(t *testing.T) {
	var opened string
	orig := openURL
	openURL = func(u string) error {
		opened = u
		return nil
	}
	defer func() { openURL = orig }()

	streams := newTestStreams()
	cmd := NewMCPServer(streams)
	cmd.SetArgs([]string{"switch", "--namespace", "team-b", "--open",
		"https://console.example.com/console-acp/workspace/p~business-1~team-a/home?x=1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("switch failed: %v", err)
	}

	want := "https://console.example.com/console-acp/workspace/p~business-1~team-b/home?x=1"
	if got := strings.TrimSpace(streams.Out.(*bytes.Buffer).String()); got != want {
		t.Errorf("switch output = %q, want %q", got, want)
	}
	if opened != want {
		t.Errorf("opened %q, want %q", opened, want)
	}
}

func TestSwitchCommandNoChange(t *testing.T) {
	cmd := NewMCPServer(newTestStreams())
	cmd.SetArgs([]string{"switch", "https://console.example.com/console-acp/workspace/p~c~n/home"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error when neither cluster nor namespace is given")
	}
}

func TestKubectlCommand(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)
	cmd.SetArgs([]string{"kubectl", "https://console.example.com/console-acp/workspace/p~c~n/home"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("kubectl failed: %v", err)
	}

	want := "https://console.example.com/console-platform/terminal/cli-tools"
	if got := strings.TrimSpace(streams.Out.(*bytes.Buffer).String()); got != want {
		t.Errorf("kubectl output = %q, want %q", got, want)
	}
}

func TestOptionsNamespacesWithoutCluster(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)
	cmd.SetArgs([]string{"options", "namespaces", "-o", "json", "--server-url", "http://127.0.0.1:1", "--configured", "a,b"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("options namespaces failed: %v", err)
	}

	output := streams.Out.(*bytes.Buffer).String()
	if !strings.Contains(output, `"name": "a"`) || !strings.Contains(output, `"isAvailable": true`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestLoadStaticConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server_url: https://file.example.com
token: from-file
fetch_timeout: 3s
cluster_options: [global, file-cluster]
kubectl_open_type: window
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("ACP_TOKEN", "from-env")
	t.Setenv("ACP_NAMESPACE_OPTIONS", "env-a,env-b")
	t.Setenv("ACP_KUBECTL_OPEN_TYPE", "current")

	cmd := NewMCPServer(newTestStreams())
	flags := cmd.PersistentFlags()
	if err := flags.Parse([]string{"--config", path, "--kubectl-open-type", "tab"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	loaded := viper.New()
	bindViper(loaded, flags)

	cfg, err := loadStaticConfig(loaded)
	if err != nil {
		t.Fatalf("loadStaticConfig failed: %v", err)
	}

	if cfg.ServerURL != "https://file.example.com" {
		t.Errorf("server_url should come from the file, got %s", cfg.ServerURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("fetch_timeout should come from the file, got %s", cfg.FetchTimeout)
	}
	if strings.Join(cfg.ClusterOptions, ",") != "global,file-cluster" {
		t.Errorf("cluster_options should come from the file, got %v", cfg.ClusterOptions)
	}
	if cfg.Token != "from-env" {
		t.Errorf("token should come from the environment, got %s", cfg.Token)
	}
	if strings.Join(cfg.NamespaceOptions, ",") != "env-a,env-b" {
		t.Errorf("namespace_options should come from the environment, got %v", cfg.NamespaceOptions)
	}
	if cfg.KubectlOpenType != "tab" {
		t.Errorf("kubectl_open_type flag should win over env and file, got %s", cfg.KubectlOpenType)
	}
}
