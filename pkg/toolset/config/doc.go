// Package config provides the configuration toolset.
// It implements MCP tools for:
//   - Viewing the effective server configuration, with credentials masked
package config
