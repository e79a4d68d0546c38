package url

import "testing"

func TestNormalizeServerURL(t *testing.T) {
	tests := map[string]string{
		"https://console.example.com":   "https://console.example.com",
		"https://console.example.com/":  "https://console.example.com",
		"https://console.example.com//": "https://console.example.com",
	}
	for in, want := range tests {
		if got := NormalizeServerURL(in); got != want {
			t.Errorf("NormalizeServerURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetClusterProxyURL(t *testing.T) {
	got := GetClusterProxyURL("https://console.example.com/", "business-1")
	if got != "https://console.example.com/kubernetes/business-1" {
		t.Errorf("unexpected proxy url: %s", got)
	}
}
