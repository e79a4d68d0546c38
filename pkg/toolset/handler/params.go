package handler

import (
	"fmt"
	"strings"
)

// ExtractRequiredString extracts a required string parameter from params map.
// Returns ErrMissingParameter if the parameter is missing or blank.
func ExtractRequiredString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractOptionalString extracts an optional string parameter.
// Returns empty string if the parameter is missing or not a string.
func ExtractOptionalString(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// ExtractOptionalStringWithDefault extracts an optional string parameter with a default value.
// Returns defaultValue if the parameter is missing or empty.
func ExtractOptionalStringWithDefault(params map[string]interface{}, key, defaultValue string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// ExtractStringSlice extracts a list of strings. JSON arrays arrive as
// []interface{}; a single string is split on commas. ok is false when the
// parameter is absent.
func ExtractStringSlice(params map[string]interface{}, key string) (values []string, ok bool) {
	switch v := params[key].(type) {
	case []string:
		return v, true
	case []interface{}:
		values = make([]string, 0, len(v))
		for _, item := range v {
			if s, isString := item.(string); isString {
				values = append(values, s)
			}
		}
		return values, true
	case string:
		return strings.Split(v, ","), true
	default:
		return nil, false
	}
}

// ExtractFormat extracts the format parameter with "json" as default.
func ExtractFormat(params map[string]interface{}) string {
	return ExtractOptionalStringWithDefault(params, ParamFormat, FormatJSON)
}

// FormatProperty returns the input schema of the format parameter.
// defaultFormat is the format a call gets when it leaves format out; the
// server fills it in from list_output. Empty means json.
func FormatProperty(defaultFormat string) map[string]any {
	defaultFormat = strings.ToLower(defaultFormat)
	if defaultFormat == "" {
		defaultFormat = FormatJSON
	}
	return map[string]any{
		"type":        "string",
		"description": "Output format: json, table, or yaml",
		"enum":        []string{FormatJSON, FormatTable, FormatYAML},
		"default":     defaultFormat,
	}
}

// ValidateFormat validates that the format is one of the supported formats
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatTable:
		return nil
	default:
		return fmt.Errorf("%w: %s (supported: json, yaml, table)", ErrInvalidFormat, format)
	}
}

// ExtractAndValidateFormat extracts format parameter and validates it.
// Returns validated format or error if format is invalid.
func ExtractAndValidateFormat(params map[string]interface{}) (string, error) {
	format := strings.ToLower(ExtractFormat(params))
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
