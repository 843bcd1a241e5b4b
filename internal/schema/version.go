package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidSchemaVersion = errors.New("schema: invalid schema version")
	ErrMigrationMissing     = errors.New("schema: no migration registered")
	ErrMigrationCycle       = errors.New("schema: migration cycle detected")
)

// Error reports a versioned-schema inconsistency such as a missing migration
// path or an invalid version string. It is an operational problem, not a
// per-request user error.
type Error struct {
	Version string
	Details string
	Cause   error
}

func (e *Error) Error() string {
	details := strings.TrimSpace(e.Details)
	if details == "" {
		details = "schema inconsistency"
	}
	if strings.TrimSpace(e.Version) == "" {
		return details
	}
	return fmt.Sprintf("%s (version %s)", details, e.Version)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Version identifies a schema revision for a content shape.
type Version struct {
	Slug   string
	SemVer string
}

// ParseVersion parses a "<slug>@vMAJOR.MINOR.PATCH" string.
func ParseVersion(value string) (Version, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Version{}, &Error{Details: "empty version", Cause: ErrInvalidSchemaVersion}
	}
	parts := strings.Split(trimmed, "@")
	if len(parts) != 2 {
		return Version{}, &Error{Version: value, Details: "want slug@vX.Y.Z", Cause: ErrInvalidSchemaVersion}
	}
	slug := strings.TrimSpace(parts[0])
	version := strings.TrimSpace(parts[1])
	if slug == "" || version == "" {
		return Version{}, &Error{Version: value, Details: "want slug@vX.Y.Z", Cause: ErrInvalidSchemaVersion}
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !isSemVer(version) {
		return Version{}, &Error{Version: value, Details: "invalid semver", Cause: ErrInvalidSchemaVersion}
	}
	return Version{Slug: slug, SemVer: version}, nil
}

// DefaultVersion builds the initial schema version for a slug.
func DefaultVersion(slug string) Version {
	return Version{Slug: strings.TrimSpace(slug), SemVer: "v1.0.0"}
}

// String returns the canonical string format.
func (v Version) String() string {
	if strings.TrimSpace(v.Slug) == "" {
		return strings.TrimSpace(v.SemVer)
	}
	return strings.TrimSpace(v.Slug) + "@" + strings.TrimSpace(v.SemVer)
}

func isSemVer(value string) bool {
	if !strings.HasPrefix(value, "v") {
		return false
	}
	parts := strings.Split(value[1:], ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}
	return true
}
