package seo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/runtimeconfig"
	"github.com/tidynest/sitekit/internal/templates"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// Catalog supplies the city and service enumerations the generator crosses.
// Ordering determines generation order, which matters for idempotence tests.
type Catalog interface {
	Cities(ctx context.Context) ([]string, error)
	Services(ctx context.Context) ([]string, error)
}

// StaticCatalog is a fixed in-memory catalog, useful for hosts without a
// dynamic location source and for tests.
type StaticCatalog struct {
	CityList    []string
	ServiceList []string
}

func (c StaticCatalog) Cities(context.Context) ([]string, error)   { return c.CityList, nil }
func (c StaticCatalog) Services(context.Context) ([]string, error) { return c.ServiceList, nil }

// Report summarizes one generation run.
type Report struct {
	Created []string
	Skipped []string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithAIGenerator enables AI content generation for rules carrying
// instructions.
func WithAIGenerator(generator templates.AIGenerator) GeneratorOption {
	return func(g *Generator) {
		g.ai = generator
	}
}

// WithLogger injects the generator's logger.
func WithLogger(logger interfaces.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator materializes pages for configured route rules. It is a batch
// operation run at deploy time, not a request-scoped call; re-running it is
// safe because existing slugs are skipped.
type Generator struct {
	config   *runtimeconfig.Snapshot
	registry *pages.MemoryPageRegistry
	builder  *pages.Builder
	catalog  Catalog
	routes   *routeBuilder
	ai       templates.AIGenerator
	logger   interfaces.Logger
}

// NewGenerator wires a generator to the frozen config, the page registry it
// writes into, and the catalog collaborator it crosses.
func NewGenerator(config *runtimeconfig.Snapshot, registry *pages.MemoryPageRegistry, builder *pages.Builder, catalog Catalog, opts ...GeneratorOption) *Generator {
	g := &Generator{
		config:   config,
		registry: registry,
		builder:  builder,
		catalog:  catalog,
		routes:   newRouteBuilder(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Apply runs one generation pass. It is a no-op unless both the
// programmatic-SEO feature flag and the advanced-config enabled flag are on;
// the two gates are independent kill switches.
//
// Every generated page in one run shares the first rule's AI instructions.
// This mirrors the long-standing single-instruction behaviour; per-rule
// instructions would change output for multi-rule configs and need product
// sign-off first.
func (g *Generator) Apply(ctx context.Context) (*Report, error) {
	report := &Report{}

	features := g.config.Features()
	advanced := g.config.Advanced()
	if !features.EnableProgrammaticSEO || !advanced.ProgrammaticSEO.Enabled {
		g.logger.Debug("programmatic SEO disabled, skipping generation")
		return report, nil
	}

	rules := advanced.ProgrammaticSEO.RouteRules
	instructions := ""
	if len(rules) > 0 {
		instructions = rules[0].AIInstructions
	}

	aiEnabled := features.EnableAIContent && advanced.AIContent.Enabled &&
		strings.TrimSpace(instructions) != "" && g.ai != nil

	for _, rule := range rules {
		if rule.Type != runtimeconfig.RouteDynamic || rule.GenerateFrom != runtimeconfig.FromLocations {
			continue
		}
		if err := g.applyLocationsRule(ctx, rule, instructions, aiEnabled, report); err != nil {
			return report, err
		}
	}

	g.logger.Info("programmatic SEO run complete",
		"created", len(report.Created),
		"skipped", len(report.Skipped),
	)
	return report, nil
}

func (g *Generator) applyLocationsRule(ctx context.Context, rule runtimeconfig.RouteRule, instructions string, aiEnabled bool, report *Report) error {
	cities, err := g.catalog.Cities(ctx)
	if err != nil {
		// External enumerations are best-effort; a failing catalog skips the
		// rule rather than aborting the run.
		g.logger.Warn("city catalog unavailable, skipping rule", "pattern", rule.Pattern, "error", err)
		return nil
	}
	services, err := g.catalog.Services(ctx)
	if err != nil {
		g.logger.Warn("service catalog unavailable, skipping rule", "pattern", rule.Pattern, "error", err)
		return nil
	}

	for _, city := range cities {
		for _, service := range services {
			slug, err := g.routes.CityServiceSlug(city, service)
			if err != nil {
				g.logger.Warn("skipping unsluggable pair", "city", city, "service", service, "error", err)
				continue
			}
			if g.registry.Has(slug) {
				report.Skipped = append(report.Skipped, slug)
				continue
			}

			page, err := g.buildPage(ctx, slug, city, service, instructions, aiEnabled)
			if err != nil {
				return err
			}

			if err := g.registry.Register(page); err != nil {
				var exists *pages.AlreadyRegisteredError
				if errors.As(err, &exists) {
					report.Skipped = append(report.Skipped, slug)
					continue
				}
				return err
			}
			report.Created = append(report.Created, slug)
			g.logger.Debug("generated page registered", "slug", slug)
		}
	}
	return nil
}

func (g *Generator) buildPage(ctx context.Context, slug, city, service, instructions string, aiEnabled bool) (pages.Page, error) {
	input := pages.NewPageInput{
		Type:        pages.PageCity,
		Slug:        slug,
		Title:       fmt.Sprintf("%s in %s", titleCase(service), titleCase(city)),
		Description: fmt.Sprintf("Professional %s services in %s.", strings.ToLower(service), titleCase(city)),
		CreatedBy:   "programmatic-seo",
	}

	if aiEnabled {
		generated, err := g.ai.Generate(ctx, instructions, map[string]string{
			"city":    city,
			"service": service,
		})
		if err != nil {
			g.logger.Warn("ai generation failed, registering page without generated sections",
				"slug", slug,
				"error", err,
			)
		} else {
			input.Sections = generated
		}
	}

	return g.builder.NewPage(input)
}

func titleCase(value string) string {
	words := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
