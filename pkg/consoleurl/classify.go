// Package consoleurl parses and rewrites ACP console page URLs.
//
// Two console families are recognized:
//   - ACP: /console-acp/workspace/{project}~{cluster}~{namespace}/...
//   - Data services: /console-dataservices/project/{a}/{b}?workspace={project}~{cluster}~{namespace}
//     or /console-dataservices/project/{a}/{b}/view/{project}~{cluster}~{namespace}~{rest}
//
// All functions are pure and safe for concurrent use.
package consoleurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Family identifies the console a URL belongs to.
type Family string

const (
	FamilyACP          Family = "acp"
	FamilyDataServices Family = "dataservices"
	FamilyUnknown      Family = "unknown"
)

// Path segments that identify each family.
const (
	acpSegment          = "/console-acp/"
	dataServicesSegment = "/console-dataservices/"
)

var (
	acpPattern               = regexp.MustCompile(`/console-acp/workspace/(.*?)~(.*?)~(.*?)/`)
	dataServicesParamPattern = regexp.MustCompile(`/console-dataservices/project/(.*?)/(.*?)\?workspace=(.*?)~(.*?)~(.*?)(?:$|&)`)
	dataServicesViewPattern  = regexp.MustCompile(`/console-dataservices/project/(.*?)/(.*?)/view/(.*?)~(.*?)~(.*?)~(.*)`)
)

// ParsedURL is the structured form of a console URL.
// Project, Cluster and Namespace are empty when the family is unknown.
type ParsedURL struct {
	Family      Family `json:"family" yaml:"family"`
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	Project     string `json:"project,omitempty" yaml:"project,omitempty"`
	Cluster     string `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Namespace   string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	OriginalURL string `json:"originalUrl" yaml:"originalUrl"`
}

// ClassifyFamily reports which console family raw belongs to, by substring only.
func ClassifyFamily(raw string) Family {
	switch {
	case strings.Contains(raw, acpSegment):
		return FamilyACP
	case strings.Contains(raw, dataServicesSegment):
		return FamilyDataServices
	default:
		return FamilyUnknown
	}
}

// Classify parses raw into a ParsedURL.
func Classify(raw string) (*ParsedURL, error) {
	baseURL, err := BaseURL(raw)
	if err != nil {
		return nil, err
	}

	family := ClassifyFamily(raw)

	var match []string
	switch family {
	case FamilyACP:
		if m := acpPattern.FindStringSubmatch(raw); m != nil {
			match = m[1:4]
		}
	case FamilyDataServices:
		if m := dataServicesParamPattern.FindStringSubmatch(raw); m != nil {
			match = m[3:6]
		} else if m := dataServicesViewPattern.FindStringSubmatch(raw); m != nil {
			match = m[3:6]
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPageType, raw)
	}

	if match == nil {
		return nil, fmt.Errorf("%w: cannot parse %s url %s", ErrUnrecognizedFormat, family, raw)
	}

	return &ParsedURL{
		Family:      family,
		BaseURL:     baseURL,
		Project:     match[0],
		Cluster:     match[1],
		Namespace:   match[2],
		OriginalURL: raw,
	}, nil
}

// BaseURL returns "{scheme}://{host}" of raw, with the host lowercased.
func BaseURL(raw string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + strings.ToLower(u.Host), nil
}

// IsSupportedPlatformURL reports whether raw is a console page that navigation
// can act on. Local addresses and file URLs are never supported.
func IsSupportedPlatformURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := parse(raw)
	if err != nil {
		return false
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "localhost" || strings.HasPrefix(hostname, "127.") || u.Scheme == "file" {
		return false
	}

	return ClassifyFamily(raw) != FamilyUnknown
}

// parse accepts absolute URLs only. file URLs may have an empty host.
func parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: missing scheme in %q", ErrInvalidURL, raw)
	}
	if u.Host == "" && u.Scheme != "file" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}
	return u, nil
}
