// Package interfaces declares the contracts sitekit expects from its host:
// structured logging today, kept separate from internal packages so hosts can
// implement them without importing the module's internals.
package interfaces

import "context"

// Logger is the leveled logging contract used throughout sitekit. The method
// set matches github.com/goliatone/go-logger, so that package plugs in
// directly; any other structured logger needs only a thin adapter.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Implementations may scope children
// per name (module loggers) or return a single shared instance.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional Logger extension for persistent structured
// fields. Implementations return a new logger carrying the fields on every
// entry; callers must not assume the extension is present and should go
// through logging.WithFields, which degrades gracefully.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
