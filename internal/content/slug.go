package content

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// NormalizeSlug applies the default slug normalization rules to one segment.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether a single segment matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// NormalizePath normalizes a routable page path segment by segment, so
// "/Sydney/House Cleaning" becomes "/sydney/house-cleaning". The leading
// slash is preserved; empty segments are dropped.
func NormalizePath(value string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(value), "/")
	if trimmed == "" {
		return "/", nil
	}
	segments := strings.Split(trimmed, "/")
	normalized := make([]string, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		cleaned, err := slug.Normalize(segment)
		if err != nil {
			return "", err
		}
		normalized = append(normalized, cleaned)
	}
	return "/" + strings.Join(normalized, "/"), nil
}

// IsValidPath reports whether every segment of a routable path is a valid slug.
func IsValidPath(value string) bool {
	trimmed := strings.Trim(strings.TrimSpace(value), "/")
	if trimmed == "" {
		return value == "/"
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if !slug.IsValid(segment) {
			return false
		}
	}
	return strings.HasPrefix(value, "/")
}
