package consoleurl

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	acpWorkspaceSegment = regexp.MustCompile(`/console-acp/workspace/.*?/`)
	workspaceParam      = regexp.MustCompile(`workspace=[^&]*`)
	viewSegment         = regexp.MustCompile(`/view/.*?~.*?~.*?~(.*)`)
)

// Switch classifies raw and rebuilds it for the given cluster and namespace.
func Switch(raw, cluster, namespace string) (string, error) {
	parsed, err := Classify(raw)
	if err != nil {
		return "", err
	}
	return Reconstruct(parsed, cluster, namespace)
}

// Reconstruct rebuilds parsed.OriginalURL with the workspace triple pointing
// at cluster and namespace. An empty override keeps the current value; both
// empty yields ErrNoChangeRequested. Nothing outside the triple is touched.
func Reconstruct(parsed *ParsedURL, cluster, namespace string) (string, error) {
	if cluster == "" && namespace == "" {
		return "", ErrNoChangeRequested
	}
	if parsed == nil {
		return "", fmt.Errorf("%w: nothing to reconstruct", ErrUnsupportedPageType)
	}

	triple := workspaceTriple(parsed, cluster, namespace)
	original := parsed.OriginalURL

	switch parsed.Family {
	case FamilyACP:
		loc := acpWorkspaceSegment.FindStringIndex(original)
		if loc == nil {
			return "", fmt.Errorf("%w: no workspace segment in %s", ErrUnrecognizedFormat, original)
		}
		return splice(original, loc[0], loc[1], "/console-acp/workspace/"+triple+"/"), nil

	case FamilyDataServices:
		if queryStart := strings.Index(original, "?"); queryStart >= 0 && strings.Contains(original, "?workspace=") {
			loc := workspaceParam.FindStringIndex(original[queryStart:])
			if loc == nil {
				return "", fmt.Errorf("%w: no workspace parameter in %s", ErrUnrecognizedFormat, original)
			}
			return splice(original, queryStart+loc[0], queryStart+loc[1], "workspace="+triple), nil
		}

		if strings.Contains(original, "/view/") {
			loc := viewSegment.FindStringSubmatchIndex(original)
			if loc == nil {
				return "", fmt.Errorf("%w: no view segment in %s", ErrUnrecognizedFormat, original)
			}
			rest := original[loc[2]:loc[3]]
			return splice(original, loc[0], loc[1], "/view/"+triple+"~"+rest), nil
		}

		return "", fmt.Errorf("%w: unrecognized data services url %s", ErrUnrecognizedFormat, original)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPageType, original)
	}
}

func workspaceTriple(parsed *ParsedURL, cluster, namespace string) string {
	if cluster == "" {
		cluster = parsed.Cluster
	}
	if namespace == "" {
		namespace = parsed.Namespace
	}
	return parsed.Project + "~" + cluster + "~" + namespace
}

// splice replaces s[start:end] with replacement, literally.
func splice(s string, start, end int, replacement string) string {
	return s[:start] + replacement + s[end:]
}
