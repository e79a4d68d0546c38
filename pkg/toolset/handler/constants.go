package handler

import "errors"

// Format constants
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Parameter name constants
const (
	ParamURL        = "url"
	ParamCluster    = "cluster"
	ParamNamespace  = "namespace"
	ParamConfigured = "configured"
	ParamFormat     = "format"
	ParamOpenType   = "openType"
)

// Error definitions
var (
	ErrACPNotConfigured    = errors.New("console client not configured")
	ErrServerNotConfigured = errors.New("no console server: pass a console page url or configure server_url")
	ErrInvalidFormat       = errors.New("invalid output format")
	ErrMissingParameter    = errors.New("missing required parameter")
)
