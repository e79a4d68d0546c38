package mcp

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/futuretea/acp-mcp-server/pkg/client/acp"
	"github.com/futuretea/acp-mcp-server/pkg/core/config"
	"github.com/futuretea/acp-mcp-server/pkg/core/logging"
	"github.com/futuretea/acp-mcp-server/pkg/core/version"
	"github.com/futuretea/acp-mcp-server/pkg/toolset"
	configToolset "github.com/futuretea/acp-mcp-server/pkg/toolset/config"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/navigation"
)

// Configuration wraps the static configuration with additional runtime components
type Configuration struct {
	*config.StaticConfig
}

// Server represents the MCP server
type Server struct {
	configuration *Configuration
	server        *server.MCPServer
	enabledTools  []string
	acpClient     *acp.Client
}

// NewServer creates a new MCP server with the given configuration
func NewServer(configuration Configuration) (*Server, error) {
	// Note: Logging is initialized in root.go before calling NewServer
	// to properly handle stdio vs HTTP/SSE mode
	if configuration.StaticConfig == nil {
		configuration.StaticConfig = config.DefaultConfig()
	}

	serverOptions := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithLogging(),
	}

	acpClient := acp.NewClient(
		configuration.Token,
		configuration.TLSInsecure,
		configuration.GetFetchTimeout(),
	)
	if configuration.HasServerConfig() {
		logging.Info("Console client initialized for %s", configuration.ServerURL)
	} else {
		logging.Info("No console server configured, option tools need a page url")
	}

	s := &Server{
		configuration: &configuration,
		server:        server.NewMCPServer(version.BinaryName, version.Version, serverOptions...),
		acpClient:     acpClient,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, err
	}

	return s, nil
}

// registerTools registers all available tools based on configuration
func (s *Server) registerTools() error {
	cfg := s.configuration.StaticConfig
	availableToolsets := []toolset.Toolset{
		&configToolset.Toolset{Config: cfg},
		&navigation.Toolset{
			ServerURL:        cfg.ServerURL,
			ClusterOptions:   cfg.ClusterOptions,
			NamespaceOptions: cfg.NamespaceOptions,
			KubectlOpenType:  cfg.KubectlOpenType,
			DefaultFormat:    cfg.ListOutput,
		},
	}

	// Determine which toolsets to enable
	enabledToolsets := make([]toolset.Toolset, 0, len(availableToolsets))
	for _, ts := range availableToolsets {
		if len(cfg.Toolsets) == 0 || slices.Contains(cfg.Toolsets, ts.GetName()) {
			enabledToolsets = append(enabledToolsets, ts)
		}
	}

	// Register tools from each enabled toolset
	for _, ts := range enabledToolsets {
		for _, tool := range ts.GetTools(s.acpClient) {
			// Check if tool is enabled/disabled by configuration
			if s.shouldEnableTool(tool.Tool.Name) {
				// Create a configured tool handler that uses server configuration
				configuredTool := s.configureTool(tool)
				if err := s.registerTool(configuredTool); err != nil {
					return fmt.Errorf("failed to register tool %s: %w", tool.Tool.Name, err)
				}
			}
		}
	}

	logging.Info("MCP server initialized with %d tools", len(s.enabledTools))
	return nil
}

// shouldEnableTool determines if a tool should be enabled based on configuration
func (s *Server) shouldEnableTool(toolName string) bool {
	// Check if tool is explicitly disabled
	if slices.Contains(s.configuration.DisabledTools, toolName) {
		return false
	}

	// If enabled tools are specified, only those are enabled
	if len(s.configuration.EnabledTools) > 0 {
		return slices.Contains(s.configuration.EnabledTools, toolName)
	}

	// Default: enable the tool
	return true
}

// configureTool creates a configured tool handler that uses server configuration
func (s *Server) configureTool(tool toolset.ServerTool) toolset.ServerTool {
	return toolset.ServerTool{
		Tool:        tool.Tool,
		Annotations: tool.Annotations,
		Handler: func(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
			// Inject default output format if not specified; tool schemas
			// advertise the same default
			if _, hasFormat := params[handler.ParamFormat]; !hasFormat && s.configuration.ListOutput != "" {
				params[handler.ParamFormat] = s.configuration.ListOutput
			}
			return tool.Handler(ctx, client, params)
		},
	}
}

// contextFunc passes a bearer token from the HTTP request through to the
// console, so callers act with their own identity instead of the configured token.
func contextFunc(ctx context.Context, r *http.Request) context.Context {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if ok && strings.TrimSpace(token) != "" {
		return acp.WithToken(ctx, strings.TrimSpace(token))
	}
	return ctx
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(tool toolset.ServerTool) error {
	toolHandler := server.ToolHandlerFunc(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logging.Debug("Tool %s called with params: %v", tool.Tool.Name, request.Params.Arguments)

		// Convert arguments to the format expected by our tool handlers
		params := make(map[string]interface{})
		if arguments, ok := request.Params.Arguments.(map[string]interface{}); ok {
			for key, value := range arguments {
				params[key] = value
			}
		}

		result, err := tool.Handler(ctx, s.acpClient, params)
		if err != nil {
			logging.Debug("Tool %s failed: %v", tool.Tool.Name, err)
		}
		return NewTextResult(result, err), nil
	})

	s.server.AddTool(tool.Tool, toolHandler)
	s.enabledTools = append(s.enabledTools, tool.Tool.Name)

	logging.Info("Registered tool: %s", tool.Tool.Name)
	return nil
}

// ServeStdio starts the MCP server in stdio mode
func (s *Server) ServeStdio() error {
	logging.Info("Starting MCP server in stdio mode")
	return server.ServeStdio(s.server)
}

// ServeSse starts the MCP server in SSE mode
func (s *Server) ServeSse(baseURL string, httpServer *http.Server) *server.SSEServer {
	logging.Info("Starting MCP server in SSE mode")

	options := make([]server.SSEOption, 0)
	options = append(options, server.WithHTTPServer(httpServer), server.WithSSEContextFunc(contextFunc))

	if baseURL != "" {
		options = append(options, server.WithBaseURL(baseURL))
	}

	return server.NewSSEServer(s.server, options...)
}

// ServeHTTP starts the MCP server in HTTP mode
func (s *Server) ServeHTTP(httpServer *http.Server) *server.StreamableHTTPServer {
	logging.Info("Starting MCP server in HTTP mode")

	options := []server.StreamableHTTPOption{
		server.WithHTTPContextFunc(contextFunc),
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	}

	return server.NewStreamableHTTPServer(s.server, options...)
}

// GetEnabledTools returns the list of enabled tools
func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// IsHealthy returns true if the server is ready to serve tool calls
func (s *Server) IsHealthy() bool {
	return s.server != nil && s.acpClient != nil
}

// Close cleans up the server resources
func (s *Server) Close() {
	logging.Info("Closing MCP server")
	// Nothing to clean up for now
}

// NewTextResult creates a standardized text result for tool responses
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: err.Error(),
				},
			},
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: content,
			},
		},
	}
}
