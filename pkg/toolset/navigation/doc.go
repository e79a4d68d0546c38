// Package navigation provides the console navigation toolset.
// It implements MCP tools for:
//   - Classifying console page URLs (url_classify)
//   - Switching a page to another cluster or namespace (url_switch)
//   - Listing selectable clusters and namespaces (cluster_options, namespace_options)
//   - Locating the web kubectl terminal (kubectl_url)
//
// URL tools are pure; the option tools query the console backend and degrade
// to the configured names when it cannot be reached.
package navigation
