package navigation

import (
	"context"
	"strconv"

	"github.com/futuretea/acp-mcp-server/pkg/consoleurl"
	"github.com/futuretea/acp-mcp-server/pkg/options"
	"github.com/futuretea/acp-mcp-server/pkg/toolset"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
)

var entryHeaders = []string{"name", "available", "configured", "index"}

// entriesToMaps converts option entries to table rows.
func entriesToMaps(entries []options.Entry) []map[string]string {
	rows := make([]map[string]string, len(entries))
	for i, e := range entries {
		index := "-"
		if e.ConfiguredIndex != nil {
			index = strconv.Itoa(*e.ConfiguredIndex)
		}
		rows[i] = map[string]string{
			"name":       e.Name,
			"available":  strconv.FormatBool(e.Available),
			"configured": strconv.FormatBool(e.UserConfigured),
			"index":      index,
		}
	}
	return rows
}

// formatEntries renders entries; yaml and json keep the entry field names.
func formatEntries(entries []options.Entry, format string) (string, error) {
	switch format {
	case handler.FormatJSON:
		return handler.FormatAsJSON(entries)
	case handler.FormatYAML:
		return handler.FormatAsYAML(entries)
	default:
		return handler.FormatOutput(entriesToMaps(entries), format, entryHeaders)
	}
}

// resolveServer picks the console to query: the origin of the page URL when
// one is given, else the configured server.
func (t *Toolset) resolveServer(params map[string]interface{}) (string, *consoleurl.ParsedURL, error) {
	rawURL := handler.ExtractOptionalString(params, handler.ParamURL)
	if rawURL == "" {
		if t.ServerURL == "" {
			return "", nil, handler.ErrServerNotConfigured
		}
		return t.ServerURL, nil, nil
	}

	base, err := consoleurl.BaseURL(rawURL)
	if err != nil {
		return "", nil, err
	}
	// A page outside the known families still identifies the server.
	parsed, _ := consoleurl.Classify(rawURL)
	return base, parsed, nil
}

// configured returns the per-call configured names, or fallback.
func configured(params map[string]interface{}, fallback []string) []string {
	if names, ok := handler.ExtractStringSlice(params, handler.ParamConfigured); ok {
		return names
	}
	return fallback
}

// clusterOptionsHandler handles the cluster_options tool
func (t *Toolset) clusterOptionsHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	acpClient, err := toolset.ValidateACPClient(client)
	if err != nil {
		return "", err
	}
	format, err := handler.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}
	server, _, err := t.resolveServer(params)
	if err != nil {
		return "", err
	}

	entries := acpClient.ClusterOptions(ctx, server, configured(params, t.ClusterOptions))
	return formatEntries(entries, format)
}

// namespaceOptionsHandler handles the namespace_options tool
func (t *Toolset) namespaceOptionsHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	acpClient, err := toolset.ValidateACPClient(client)
	if err != nil {
		return "", err
	}
	format, err := handler.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}
	server, parsed, err := t.resolveServer(params)
	if err != nil {
		return "", err
	}

	cluster := handler.ExtractOptionalString(params, handler.ParamCluster)
	if cluster == "" && parsed != nil {
		cluster = parsed.Cluster
	}

	entries := acpClient.NamespaceOptions(ctx, server, cluster, configured(params, t.NamespaceOptions))
	return formatEntries(entries, format)
}
