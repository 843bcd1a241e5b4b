package logging

import (
	"maps"
	"strings"

	"github.com/tidynest/sitekit/pkg/interfaces"
)

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithResolutionContext enriches the provided logger with common resolution
// fields such as page slug and shared-section ref. Empty values are ignored.
func WithResolutionContext(logger interfaces.Logger, slug, ref string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields["page_slug"] = trimmed
	}
	if trimmed := strings.TrimSpace(ref); trimmed != "" {
		fields["shared_ref"] = trimmed
	}
	return WithFields(logger, fields)
}
