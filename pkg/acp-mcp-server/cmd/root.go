package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/futuretea/acp-mcp-server/pkg/core/config"
	"github.com/futuretea/acp-mcp-server/pkg/core/logging"
	"github.com/futuretea/acp-mcp-server/pkg/core/version"
	"github.com/futuretea/acp-mcp-server/pkg/server/http"
	"github.com/futuretea/acp-mcp-server/pkg/server/mcp"
)

// EnvPrefix prefixes environment variables that override configuration,
// e.g. ACP_SERVER_URL or ACP_KUBECTL_OPEN_TYPE.
const EnvPrefix = "ACP"

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the ACP MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	v := viper.New()
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   version.BinaryName,
		Short: "ACP MCP Server - Model Context Protocol server for ACP console navigation",
		Long: `ACP MCP Server is a Model Context Protocol (MCP) server that helps users and
agents navigate the ACP Kubernetes console: it classifies console page URLs,
switches them to another cluster or namespace, lists selectable clusters and
namespaces, and locates the web kubectl terminal.

This server can run in stdio mode for integration with MCP clients or in HTTP mode
for network access. The same operations are available as subcommands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStaticConfig(v)
			if err != nil {
				return err
			}
			return runServer(cmd, cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	// Add flags. Persistent so that subcommands share the console settings.
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.Int("port", defaults.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	flags.String("sse-base-url", defaults.SSEBaseURL, "Public base URL advertised to SSE clients")
	flags.Int("log-level", defaults.LogLevel, "Log level (0-9)")
	flags.String("server-url", defaults.ServerURL, "ACP console URL used when no page URL is given")
	flags.String("token", defaults.Token, "Bearer token for the console API")
	flags.Bool("tls-insecure", defaults.TLSInsecure, "Skip TLS certificate verification")
	flags.Duration("fetch-timeout", defaults.FetchTimeout, "Timeout for each console API request")
	flags.StringSlice("cluster-options", defaults.ClusterOptions, "Comma-separated list of clusters to offer first")
	flags.StringSlice("namespace-options", defaults.NamespaceOptions, "Comma-separated list of namespaces to offer first")
	flags.String("kubectl-open-type", defaults.KubectlOpenType, "Where to open the kubectl terminal (tab, window, current)")
	flags.String("list-output", defaults.ListOutput, "Output format for list operations (table, yaml, json)")
	flags.StringSlice("toolsets", defaults.Toolsets, "Comma-separated list of toolsets to enable")
	flags.StringSlice("enabled-tools", defaults.EnabledTools, "Comma-separated list of tools to enable")
	flags.StringSlice("disabled-tools", defaults.DisabledTools, "Comma-separated list of tools to disable")

	bindViper(v, flags)

	cmd.AddCommand(
		newVersionCommand(streams),
		newClassifyCommand(v, streams),
		newSwitchCommand(v, streams),
		newKubectlCommand(v, streams),
		newOptionsCommand(v, streams),
	)

	return cmd
}

// bindViper makes flags and ACP_* environment variables visible through v.
func bindViper(v *viper.Viper, flags *pflag.FlagSet) {
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// loadStaticConfig reads the config file, then applies environment variables
// and flags on top, in that order of precedence.
func loadStaticConfig(v *viper.Viper) (*config.StaticConfig, error) {
	cfg, err := config.ReadConfig(v.GetString("config"))
	if err != nil {
		return nil, err
	}

	if v.IsSet("port") {
		cfg.Port = v.GetInt("port")
	}
	if v.IsSet("sse-base-url") {
		cfg.SSEBaseURL = v.GetString("sse-base-url")
	}
	if v.IsSet("log-level") {
		cfg.LogLevel = v.GetInt("log-level")
	}
	if v.IsSet("server-url") {
		cfg.ServerURL = v.GetString("server-url")
	}
	if v.IsSet("token") {
		cfg.Token = v.GetString("token")
	}
	if v.IsSet("tls-insecure") {
		cfg.TLSInsecure = v.GetBool("tls-insecure")
	}
	if v.IsSet("fetch-timeout") {
		cfg.FetchTimeout = v.GetDuration("fetch-timeout")
	}
	if v.IsSet("cluster-options") {
		cfg.ClusterOptions = getStringSlice(v, "cluster-options")
	}
	if v.IsSet("namespace-options") {
		cfg.NamespaceOptions = getStringSlice(v, "namespace-options")
	}
	if v.IsSet("kubectl-open-type") {
		cfg.KubectlOpenType = v.GetString("kubectl-open-type")
	}
	if v.IsSet("list-output") {
		cfg.ListOutput = v.GetString("list-output")
	}
	if v.IsSet("toolsets") {
		cfg.Toolsets = getStringSlice(v, "toolsets")
	}
	if v.IsSet("enabled-tools") {
		cfg.EnabledTools = getStringSlice(v, "enabled-tools")
	}
	if v.IsSet("disabled-tools") {
		cfg.DisabledTools = getStringSlice(v, "disabled-tools")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// getStringSlice reads a list setting. Environment values arrive as a
// single comma-separated string.
func getStringSlice(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// runServer runs the MCP server with the given configuration
func runServer(cmd *cobra.Command, cfg *config.StaticConfig, streams IOStreams) error {
	logging.Initialize(cfg.LogLevel, streams.ErrOut)

	// Create MCP server
	server, err := mcp.NewServer(mcp.Configuration{StaticConfig: cfg})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	// Start server based on port configuration
	if cfg.Port == 0 {
		fmt.Fprintf(streams.ErrOut, "Starting ACP MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	fmt.Fprintf(streams.ErrOut, "Starting ACP MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return http.Serve(cmd.Context(), server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
