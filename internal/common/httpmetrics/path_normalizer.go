package httpmetrics

import (
	"regexp"
	"strings"
)

var (
	uuidRegex     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

const (
	otherPath  = "other"
	publicPath = "/public/*"
)

var knownPaths = map[string]struct{}{
	"/":                         {},
	"/api/users":                {},
	"/api/users/{id}/exercises": {},
	"/api/users/{id}/logs":      {},
	"/health":                   {},
	"/metrics":                  {},
}

// NormalizePath maps a request path onto a bounded set of metric labels:
// record identifiers become {id}, static assets share one label and every
// path the router does not serve is "other".
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if strings.HasPrefix(path, "/public/") {
		return publicPath
	}

	normalized := collapseIDs(path)
	if _, ok := knownPaths[normalized]; ok {
		return normalized
	}
	return otherPath
}

func collapseIDs(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if uuidRegex.MatchString(part) || objectIDRegex.MatchString(part) || isNumeric(part) {
			parts[i] = "{id}"
			continue
		}
		if i == 3 && parts[1] == "api" && parts[2] == "users" {
			parts[i] = "{id}"
		}
	}

	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
