package xmldiff

import "strings"

// PathIgnored reports whether path is excluded by any of the ignore
// path patterns. The first matching pattern wins.
func PathIgnored(path string, patterns []string) bool {
	for _, p := range patterns {
		if pathMatches(path, p) {
			return true
		}
	}
	return false
}

// PropertyIgnored reports whether name (an attribute key or an element
// tag name) appears in the ignore property list.
func PropertyIgnored(name string, properties []string) bool {
	for _, p := range properties {
		if p == name {
			return true
		}
	}
	return false
}

// pathMatches applies a single ignore pattern to a path. Exactly one
// wildcard token is supported, and only at the end of a pattern; no
// regular expressions.
func pathMatches(path, pattern string) bool {
	if pattern == path {
		return true
	}

	// "/root/*" matches everything under (and including) the prefix.
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	}

	// "/root/" matches the subtree, including "/root" itself.
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern) || strings.HasPrefix(path+"/", pattern)
	}

	return false
}
