package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatAsTable formats data as a table with headers
func FormatAsTable(data []map[string]string, headers []string) string {
	if len(data) == 0 {
		return "No data available"
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	for _, row := range data {
		for i, header := range headers {
			if value, ok := row[header]; ok && len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}

	// Build table
	var builder strings.Builder

	// Header
	for i, header := range headers {
		builder.WriteString(fmt.Sprintf("%-*s", widths[i]+2, header))
	}
	builder.WriteString("\n")

	// Separator
	for i, width := range widths {
		builder.WriteString(strings.Repeat("-", width+2))
		if i < len(widths)-1 {
			builder.WriteString(" ")
		}
	}
	builder.WriteString("\n")

	// Rows
	for _, row := range data {
		for i, header := range headers {
			value := ""
			if v, ok := row[header]; ok {
				value = v
			}
			builder.WriteString(fmt.Sprintf("%-*s", widths[i]+2, value))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatAsYAML formats data as YAML
func FormatAsYAML(data interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(yamlBytes), nil
}

// FormatAsJSON formats data as JSON
func FormatAsJSON(data interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// BoolPtr returns a pointer to a boolean value
func BoolPtr(b bool) *bool {
	return &b
}

// GetStringValue extracts string value from interface safely.
// Returns "-" for nil values.
func GetStringValue(v interface{}) string {
	if v == nil {
		return "-"
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", v)
}

// FormatEmptyResult formats an empty result based on the output format.
func FormatEmptyResult(format string) (string, error) {
	switch format {
	case FormatYAML:
		return FormatAsYAML([]interface{}{})
	case FormatJSON:
		return FormatAsJSON([]interface{}{})
	case FormatTable:
		return "No data available", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// FormatOutput formats rows in the requested output format. Table output
// uses headers as columns; yaml and json render rows as-is.
func FormatOutput(data []map[string]string, format string, headers []string) (string, error) {
	if len(data) == 0 {
		return FormatEmptyResult(format)
	}

	switch format {
	case FormatYAML:
		return FormatAsYAML(data)
	case FormatJSON:
		return FormatAsJSON(data)
	case FormatTable:
		return FormatAsTable(data, headers), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// FormatSingleResult formats a single result object (map[string]interface{}) in the specified format.
// This is useful for get handlers that return a single resource.
// tableHeaders is optional - if provided and format is "table", it renders a table with those fields.
func FormatSingleResult(data map[string]interface{}, format string, tableHeaders ...string) (string, error) {
	switch format {
	case FormatYAML:
		return FormatAsYAML(data)
	case FormatJSON:
		return FormatAsJSON(data)
	case FormatTable:
		if len(tableHeaders) == 0 {
			return "", fmt.Errorf("%w: table format requires headers", ErrInvalidFormat)
		}
		row := make(map[string]string)
		for _, header := range tableHeaders {
			row[header] = GetStringValue(data[header])
		}
		return FormatAsTable([]map[string]string{row}, tableHeaders), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}
