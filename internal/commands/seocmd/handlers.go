package seocmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/tidynest/sitekit/internal/commands"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/seo"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

const generateOperation = "seo.generate_pages"

var _ command.Commander[GeneratePagesCommand] = (*GeneratePagesHandler)(nil)

// GeneratePagesHandler runs the programmatic-SEO generator via the shared
// command handler foundation.
type GeneratePagesHandler struct {
	inner *commands.Handler[GeneratePagesCommand]
}

// NewGeneratePagesHandler creates a handler bound to the supplied generator.
func NewGeneratePagesHandler(generator *seo.Generator, logger interfaces.Logger, opts ...commands.HandlerOption[GeneratePagesCommand]) *GeneratePagesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, _ GeneratePagesCommand) error {
		report, err := generator.Apply(ctx)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"created_count": len(report.Created),
			"skipped_count": len(report.Skipped),
		}).Info("seo.command.generate_pages.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[GeneratePagesCommand]{
		commands.WithLogger[GeneratePagesCommand](baseLogger),
		commands.WithOperation[GeneratePagesCommand](generateOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[GeneratePagesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GeneratePagesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GeneratePagesCommand].
func (h *GeneratePagesHandler) Execute(ctx context.Context, msg GeneratePagesCommand) error {
	return h.inner.Execute(ctx, msg)
}
