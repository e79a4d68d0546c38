package navigation

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/futuretea/acp-mcp-server/pkg/toolset"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
)

// Toolset implements the navigation toolset
type Toolset struct {
	// ServerURL is the console used when a tool call carries no page URL.
	ServerURL string

	// ClusterOptions and NamespaceOptions are the configured names shown
	// first in option lists.
	ClusterOptions   []string
	NamespaceOptions []string

	// KubectlOpenType is the default open type reported by kubectl_url.
	KubectlOpenType string

	// DefaultFormat is the output format advertised for calls without one.
	DefaultFormat string
}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "navigation"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Classify ACP console URLs and switch them between clusters and namespaces"
}

var configuredProperty = map[string]any{
	"type":        "array",
	"items":       map[string]any{"type": "string"},
	"description": "Names to list first, in this order (defaults to the server configuration)",
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	formatProperty := handler.FormatProperty(t.DefaultFormat)
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "url_classify",
				Description: "Parse an ACP console page URL into its family, base URL, project, cluster and namespace",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "Console page URL",
						},
						"format": formatProperty,
					},
					Required: []string{"url"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: handler.BoolPtr(true),
			},
			Handler: t.urlClassifyHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "url_switch",
				Description: "Rewrite an ACP console page URL to point at another cluster and/or namespace, keeping the rest of the page",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "Console page URL",
						},
						"cluster": map[string]any{
							"type":        "string",
							"description": "Target cluster (keeps the current one when empty)",
							"default":     "",
						},
						"namespace": map[string]any{
							"type":        "string",
							"description": "Target namespace (keeps the current one when empty)",
							"default":     "",
						},
					},
					Required: []string{"url"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: handler.BoolPtr(true),
			},
			Handler: t.urlSwitchHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_options",
				Description: "List selectable clusters: configured clusters first, then the clusters registered in the console",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "Console page URL; its origin is queried instead of the configured server",
							"default":     "",
						},
						"configured": configuredProperty,
						"format":     formatProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:   handler.BoolPtr(true),
				OpenWorldHint:  handler.BoolPtr(true),
				RequiresServer: handler.BoolPtr(true),
			},
			Handler: t.clusterOptionsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "namespace_options",
				Description: "List selectable namespaces of a cluster: configured namespaces first, then the namespaces found in the cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "Console page URL; supplies the server and, when cluster is empty, the cluster",
							"default":     "",
						},
						"cluster": map[string]any{
							"type":        "string",
							"description": "Cluster to list namespaces of",
							"default":     "",
						},
						"configured": configuredProperty,
						"format":     formatProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:   handler.BoolPtr(true),
				OpenWorldHint:  handler.BoolPtr(true),
				RequiresServer: handler.BoolPtr(true),
			},
			Handler: t.namespaceOptionsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "kubectl_url",
				Description: "Get the web kubectl terminal URL for the console a page belongs to",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "Console page URL",
						},
						"openType": map[string]any{
							"type":        "string",
							"description": "Where to open the terminal: tab, window or current",
							"enum":        []string{"tab", "window", "current"},
						},
						"format": formatProperty,
					},
					Required: []string{"url"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: handler.BoolPtr(true),
			},
			Handler: t.kubectlURLHandler,
		},
	}
}
