package consoleurl

import (
	"fmt"
	"regexp"
	"strings"
)

// KubectlPath is the console page hosting the web kubectl terminal.
const KubectlPath = "/console-platform/terminal/cli-tools"

var consolePattern = regexp.MustCompile(`/console-([^/]+)/`)

// OpenType controls where the kubectl page is opened.
type OpenType string

const (
	OpenInTab     OpenType = "tab"
	OpenInWindow  OpenType = "window"
	OpenInCurrent OpenType = "current"
)

// ParseOpenType maps a stored setting to an OpenType. Empty or unknown
// values fall back to OpenInTab.
func ParseOpenType(s string) OpenType {
	switch OpenType(strings.ToLower(strings.TrimSpace(s))) {
	case OpenInWindow:
		return OpenInWindow
	case OpenInCurrent:
		return OpenInCurrent
	default:
		return OpenInTab
	}
}

// IsValidOpenType reports whether s names a known OpenType exactly.
func IsValidOpenType(s string) bool {
	switch OpenType(s) {
	case OpenInTab, OpenInWindow, OpenInCurrent:
		return true
	default:
		return false
	}
}

// KubectlURL returns the kubectl terminal URL for the console raw is part of.
func KubectlURL(raw string) (string, error) {
	if !consolePattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %s", ErrNotConsolePage, raw)
	}
	base, _, _ := strings.Cut(raw, "/console-")
	return base + KubectlPath, nil
}
