// Package url builds console backend endpoints from a console base URL.
package url

import "strings"

// NormalizeServerURL trims trailing slashes so paths can be appended:
// - "https://console.example.com/" -> "https://console.example.com"
// - "https://console.example.com" -> uses as-is
func NormalizeServerURL(url string) string {
	return strings.TrimRight(url, "/")
}

// GetClusterProxyURL returns the console's Kubernetes proxy URL for a workload cluster
func GetClusterProxyURL(baseURL string, cluster string) string {
	return NormalizeServerURL(baseURL) + "/kubernetes/" + cluster
}
