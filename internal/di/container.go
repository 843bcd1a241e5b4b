package di

import (
	"fmt"
	"strings"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/logging/console"
	"github.com/tidynest/sitekit/internal/logging/gologger"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/runtimeconfig"
	"github.com/tidynest/sitekit/internal/seo"
	"github.com/tidynest/sitekit/internal/templates"
	"github.com/tidynest/sitekit/internal/themes"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// Container wires module dependencies against one frozen config snapshot.
// Every service reads feature flags and advanced settings from the snapshot,
// never from mutable state.
type Container struct {
	snapshot *runtimeconfig.Snapshot
	provider interfaces.LoggerProvider

	sectionTypes   *content.TypeRegistry
	sectionBuilder *content.Builder

	pageRegistry *pages.MemoryPageRegistry
	pageBuilder  *pages.Builder
	resolver     *pages.Resolver
	validator    *pages.Validator

	templateRegistry *templates.MemoryTemplateRegistry
	instantiator     *templates.Instantiator

	themeSvc *themes.Service

	catalog   seo.Catalog
	ai        templates.AIGenerator
	generator *seo.Generator
}

// Option mutates the container before services are finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider derived from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithCatalog supplies the city/service catalog crossed by the programmatic
// SEO generator. Without one the generator has nothing to enumerate.
func WithCatalog(catalog seo.Catalog) Option {
	return func(c *Container) {
		c.catalog = catalog
	}
}

// WithAIGenerator enables AI content generation for templates and
// programmatic pages.
func WithAIGenerator(generator templates.AIGenerator) Option {
	return func(c *Container) {
		c.ai = generator
	}
}

// WithPageRegistry overrides the default empty page registry, letting hosts
// pre-seed pages before validation or generation runs.
func WithPageRegistry(registry *pages.MemoryPageRegistry) Option {
	return func(c *Container) {
		if registry != nil {
			c.pageRegistry = registry
		}
	}
}

// NewContainer validates and freezes the configuration, then wires every
// service against the snapshot.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	snapshot, err := runtimeconfig.NewSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{
		snapshot:         snapshot,
		sectionTypes:     content.NewTypeRegistry(),
		pageRegistry:     pages.NewMemoryPageRegistry(),
		templateRegistry: templates.NewMemoryTemplateRegistry(),
		catalog:          seo.StaticCatalog{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		provider, err := providerFromConfig(snapshot.Logging())
		if err != nil {
			return nil, err
		}
		c.provider = provider
	}

	if err := content.RegisterCatalog(c.sectionTypes); err != nil {
		return nil, fmt.Errorf("di: section catalog: %w", err)
	}
	c.sectionBuilder = content.NewBuilder(c.sectionTypes)

	features := snapshot.Features()

	c.resolver = pages.NewResolver(
		func() bool { return features.EnableSharedSections },
		snapshot.SharedSections,
		pages.WithResolverLogger(logging.PagesLogger(c.provider)),
	)
	c.validator = pages.NewValidator(c.resolver,
		pages.WithValidatorLogger(logging.PagesLogger(c.provider)),
	)
	c.pageBuilder = pages.NewBuilder()

	instantiatorOpts := []templates.InstantiatorOption{
		templates.WithLogger(logging.TemplatesLogger(c.provider)),
	}
	if c.ai != nil && features.EnableAIContent {
		instantiatorOpts = append(instantiatorOpts, templates.WithAIGenerator(c.ai))
	}
	c.instantiator = templates.NewInstantiator(c.templateRegistry, instantiatorOpts...)

	themeOpts := []themes.ServiceOption{}
	theme, hasTheme := snapshot.Theme()
	if hasTheme {
		themeOpts = append(themeOpts, themes.WithDefaults(theme.Name, theme.Variant))
	}
	c.themeSvc = themes.NewService(themeOpts...)
	if hasTheme && features.EnableThemes {
		if _, err := c.themeSvc.Register(themes.RegisterThemeInput{
			Name:    theme.Name,
			Version: theme.Version,
			Tokens:  theme.Tokens,
		}); err != nil {
			return nil, fmt.Errorf("di: configured theme: %w", err)
		}
	}

	generatorOpts := []seo.GeneratorOption{
		seo.WithLogger(logging.SEOLogger(c.provider)),
	}
	if c.ai != nil {
		generatorOpts = append(generatorOpts, seo.WithAIGenerator(c.ai))
	}
	c.generator = seo.NewGenerator(snapshot, c.pageRegistry, c.pageBuilder, c.catalog, generatorOpts...)

	return c, nil
}

func providerFromConfig(cfg runtimeconfig.Logging) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:  cfg.Level,
			Format: cfg.Format,
		})
	case "console":
		opts := console.Options{}
		if level, ok := consoleLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "noop":
		return noopProvider{}, nil
	default:
		return nil, fmt.Errorf("di: unknown logging provider %q", cfg.Provider)
	}
}

func consoleLevel(level string) (console.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace, true
	case "debug":
		return console.LevelDebug, true
	case "info":
		return console.LevelInfo, true
	case "warn", "warning":
		return console.LevelWarn, true
	case "error":
		return console.LevelError, true
	case "fatal":
		return console.LevelFatal, true
	default:
		return console.LevelDebug, false
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

// Config returns the frozen configuration snapshot.
func (c *Container) Config() *runtimeconfig.Snapshot { return c.snapshot }

// LoggerProvider exposes the wired logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.provider }

// SectionTypes returns the section type registry pre-loaded with the
// built-in catalog.
func (c *Container) SectionTypes() *content.TypeRegistry { return c.sectionTypes }

// SectionBuilder returns the gated section builder.
func (c *Container) SectionBuilder() *content.Builder { return c.sectionBuilder }

// PageRegistry returns the slug-keyed page registry.
func (c *Container) PageRegistry() *pages.MemoryPageRegistry { return c.pageRegistry }

// PageBuilder returns the page builder used for new and generated pages.
func (c *Container) PageBuilder() *pages.Builder { return c.pageBuilder }

// PageValidator returns the three-step page validator.
func (c *Container) PageValidator() *pages.Validator { return c.validator }

// SharedSectionResolver returns the shared-section resolver.
func (c *Container) SharedSectionResolver() *pages.Resolver { return c.resolver }

// TemplateRegistry returns the template registry.
func (c *Container) TemplateRegistry() *templates.MemoryTemplateRegistry {
	return c.templateRegistry
}

// TemplateInstantiator returns the template instantiation service.
func (c *Container) TemplateInstantiator() *templates.Instantiator { return c.instantiator }

// ThemeService returns the theme registry service.
func (c *Container) ThemeService() *themes.Service { return c.themeSvc }

// SEOGenerator returns the programmatic page generator.
func (c *Container) SEOGenerator() *seo.Generator { return c.generator }
