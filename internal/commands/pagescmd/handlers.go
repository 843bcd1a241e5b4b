package pagescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/tidynest/sitekit/internal/commands"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

const registerOperation = "pages.register_page"

var _ command.Commander[RegisterPageCommand] = (*RegisterPageHandler)(nil)

// RegisterPageHandler validates and registers page payloads via the shared
// command handler foundation.
type RegisterPageHandler struct {
	inner *commands.Handler[RegisterPageCommand]
}

// NewRegisterPageHandler creates a handler bound to the supplied validator
// and registry.
func NewRegisterPageHandler(validator *pages.Validator, registry *pages.MemoryPageRegistry, logger interfaces.Logger, opts ...commands.HandlerOption[RegisterPageCommand]) *RegisterPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RegisterPageCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := validator.ValidatePage(msg.Payload, pages.ValidateOptions{
			ResolveShared: msg.ResolveShared,
		})
		if err != nil {
			return err
		}

		if err := registry.Register(result.Page); err != nil {
			return err
		}

		fields := map[string]any{
			"slug":     result.Page.Slug,
			"type":     result.Page.Type,
			"sections": len(result.Page.Sections),
		}
		if result.Resolution != nil {
			fields["resolved_refs"] = len(result.Resolution.Resolved)
			fields["skipped_refs"] = len(result.Resolution.Skipped)
		}
		logging.WithFields(baseLogger, fields).Info("pages.command.register_page.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RegisterPageCommand]{
		commands.WithLogger[RegisterPageCommand](baseLogger),
		commands.WithOperation[RegisterPageCommand](registerOperation),
		commands.WithMessageFields(func(msg RegisterPageCommand) map[string]any {
			fields := map[string]any{}
			if slug, ok := msg.Payload["slug"].(string); ok && slug != "" {
				fields["slug"] = slug
			}
			if msg.ResolveShared {
				fields["resolve_shared"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RegisterPageCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RegisterPageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RegisterPageCommand].
func (h *RegisterPageHandler) Execute(ctx context.Context, msg RegisterPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
