package config

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	coreconfig "github.com/futuretea/acp-mcp-server/pkg/core/config"
	"github.com/futuretea/acp-mcp-server/pkg/toolset"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
)

// Toolset implements the config toolset
type Toolset struct {
	Config *coreconfig.StaticConfig
}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "config"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "View the navigation settings this server runs with"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "configuration_view",
				Description: "Show the console server, default cluster and namespace options, and kubectl open type this server uses",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"format": handler.FormatProperty(t.defaultFormat()),
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: handler.BoolPtr(true),
			},
			Handler: t.configurationViewHandler,
		},
	}
}

func (t *Toolset) defaultFormat() string {
	if t.Config == nil {
		return ""
	}
	return t.Config.ListOutput
}

// configurationViewHandler handles the configuration_view tool
func (t *Toolset) configurationViewHandler(_ context.Context, _ interface{}, params map[string]interface{}) (string, error) {
	format, err := handler.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}

	cfg := t.Config
	if cfg == nil {
		cfg = coreconfig.DefaultConfig()
	}

	if format == handler.FormatTable {
		return handler.FormatAsTable(settingRows(cfg), []string{"setting", "value"}), nil
	}
	return handler.FormatSingleResult(settingMap(cfg), format)
}

func settingMap(cfg *coreconfig.StaticConfig) map[string]interface{} {
	return map[string]interface{}{
		"server_url":        cfg.ServerURL,
		"token":             handler.MaskToken(cfg.Token),
		"tls_insecure":      cfg.TLSInsecure,
		"fetch_timeout":     cfg.GetFetchTimeout().String(),
		"cluster_options":   cfg.ClusterOptions,
		"namespace_options": cfg.NamespaceOptions,
		"kubectl_open_type": cfg.KubectlOpenType,
	}
}

func settingRows(cfg *coreconfig.StaticConfig) []map[string]string {
	row := func(k, v string) map[string]string {
		return map[string]string{"setting": k, "value": v}
	}
	return []map[string]string{
		row("server_url", handler.GetStringValue(nonEmpty(cfg.ServerURL))),
		row("token", handler.GetStringValue(nonEmpty(handler.MaskToken(cfg.Token)))),
		row("tls_insecure", handler.GetStringValue(cfg.TLSInsecure)),
		row("fetch_timeout", cfg.GetFetchTimeout().String()),
		row("cluster_options", strings.Join(cfg.ClusterOptions, ",")),
		row("namespace_options", strings.Join(cfg.NamespaceOptions, ",")),
		row("kubectl_open_type", handler.GetStringValue(nonEmpty(cfg.KubectlOpenType))),
	}
}

// nonEmpty maps "" to nil so it renders as "-".
func nonEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
