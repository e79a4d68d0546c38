// Package options builds the cluster and namespace choice lists offered to
// users, combining the names they configured with the names the console
// backend reports.
package options

import (
	"cmp"
	"slices"
	"strings"
)

// Entry is one selectable cluster or namespace.
// ConfiguredIndex is set exactly when UserConfigured is true.
type Entry struct {
	Name            string `json:"name" yaml:"name"`
	Available       bool   `json:"isAvailable" yaml:"isAvailable"`
	UserConfigured  bool   `json:"isUserConfigured" yaml:"isUserConfigured"`
	ConfiguredIndex *int   `json:"configuredIndex,omitempty" yaml:"configuredIndex,omitempty"`
}

// Merge combines userConfigured and available into a de-duplicated list.
//
// Configured names come first in their configured order, flagged available
// when present in available. The remaining available names follow, sorted
// byte-wise. Blank configured names are skipped; a name configured twice
// keeps the position of its last occurrence.
func Merge(userConfigured, available []string) []Entry {
	availableSet := make(map[string]struct{}, len(available))
	for _, name := range available {
		availableSet[name] = struct{}{}
	}

	byName := make(map[string]*Entry, len(userConfigured)+len(available))
	order := make([]string, 0, len(userConfigured)+len(available))

	for i, name := range userConfigured {
		if strings.TrimSpace(name) == "" {
			continue
		}
		_, ok := availableSet[name]
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = &Entry{
			Name:            name,
			Available:       ok,
			UserConfigured:  true,
			ConfiguredIndex: intPtr(i),
		}
	}

	for _, name := range available {
		if _, seen := byName[name]; seen {
			continue
		}
		order = append(order, name)
		byName[name] = &Entry{Name: name, Available: true}
	}

	entries := make([]Entry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *byName[name])
	}
	slices.SortStableFunc(entries, compare)
	return entries
}

// ConfiguredOnly lists the configured names as they are, all marked
// available. It is used when there is nothing to check them against, such as
// namespaces before a cluster has been chosen.
func ConfiguredOnly(userConfigured []string) []Entry {
	entries := Merge(userConfigured, nil)
	for i := range entries {
		entries[i].Available = true
	}
	return entries
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func compare(a, b Entry) int {
	switch {
	case a.UserConfigured && !b.UserConfigured:
		return -1
	case !a.UserConfigured && b.UserConfigured:
		return 1
	case a.UserConfigured:
		return cmp.Compare(*a.ConfiguredIndex, *b.ConfiguredIndex)
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

func intPtr(i int) *int {
	return &i
}
