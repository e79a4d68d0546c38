package navigation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/futuretea/acp-mcp-server/pkg/consoleurl"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
)

// parsedToMap converts a parsed URL to a result map.
func parsedToMap(parsed *consoleurl.ParsedURL, supported bool) map[string]interface{} {
	return map[string]interface{}{
		"family":      string(parsed.Family),
		"baseUrl":     parsed.BaseURL,
		"project":     parsed.Project,
		"cluster":     parsed.Cluster,
		"namespace":   parsed.Namespace,
		"originalUrl": parsed.OriginalURL,
		"supported":   strconv.FormatBool(supported),
	}
}

// urlClassifyHandler handles the url_classify tool
func (t *Toolset) urlClassifyHandler(_ context.Context, _ interface{}, params map[string]interface{}) (string, error) {
	rawURL, err := handler.ExtractRequiredString(params, handler.ParamURL)
	if err != nil {
		return "", err
	}
	format, err := handler.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}

	parsed, err := consoleurl.Classify(rawURL)
	if err != nil {
		return "", err
	}

	return handler.FormatSingleResult(parsedToMap(parsed, consoleurl.IsSupportedPlatformURL(rawURL)), format,
		"family", "project", "cluster", "namespace", "baseUrl", "supported")
}

// urlSwitchHandler handles the url_switch tool
func (t *Toolset) urlSwitchHandler(_ context.Context, _ interface{}, params map[string]interface{}) (string, error) {
	rawURL, err := handler.ExtractRequiredString(params, handler.ParamURL)
	if err != nil {
		return "", err
	}
	cluster := handler.ExtractOptionalString(params, handler.ParamCluster)
	namespace := handler.ExtractOptionalString(params, handler.ParamNamespace)

	newURL, err := consoleurl.Switch(rawURL, cluster, namespace)
	if err != nil {
		return "", err
	}
	return newURL, nil
}

// kubectlURLHandler handles the kubectl_url tool
func (t *Toolset) kubectlURLHandler(_ context.Context, _ interface{}, params map[string]interface{}) (string, error) {
	rawURL, err := handler.ExtractRequiredString(params, handler.ParamURL)
	if err != nil {
		return "", err
	}
	format, err := handler.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}

	openType := t.KubectlOpenType
	if v := handler.ExtractOptionalString(params, handler.ParamOpenType); v != "" {
		if !consoleurl.IsValidOpenType(v) {
			return "", fmt.Errorf("invalid openType %q (supported: tab, window, current)", v)
		}
		openType = v
	}

	target, err := consoleurl.KubectlURL(rawURL)
	if err != nil {
		return "", err
	}

	result := map[string]interface{}{
		"url":      target,
		"openType": string(consoleurl.ParseOpenType(openType)),
	}
	return handler.FormatSingleResult(result, format, "url", "openType")
}
