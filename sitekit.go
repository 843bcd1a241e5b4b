package sitekit

import (
	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/di"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/runtimeconfig"
	"github.com/tidynest/sitekit/internal/seo"
	"github.com/tidynest/sitekit/internal/templates"
	"github.com/tidynest/sitekit/internal/themes"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// Config exports the application configuration consumed by New.
type Config = runtimeconfig.Config

// Features exports the feature flag block.
type Features = runtimeconfig.Features

// Advanced exports the advanced configuration block.
type Advanced = runtimeconfig.Advanced

// ProgrammaticSEO exports the programmatic SEO settings.
type ProgrammaticSEO = runtimeconfig.ProgrammaticSEO

// RouteRule exports a single programmatic route rule.
type RouteRule = runtimeconfig.RouteRule

// AIContent exports the AI content settings.
type AIContent = runtimeconfig.AIContent

// ThemeSettings exports the configured theme block.
type ThemeSettings = runtimeconfig.ThemeSettings

// Logging exports the logging configuration block.
type Logging = runtimeconfig.Logging

// Snapshot exports the frozen configuration handle.
type Snapshot = runtimeconfig.Snapshot

// Page exports the validated page model.
type Page = pages.Page

// PageValidator exports the three-step page validator.
type PageValidator = pages.Validator

// ValidateOptions exports per-call validation options.
type ValidateOptions = pages.ValidateOptions

// ValidationResult exports the validator's result envelope.
type ValidationResult = pages.ValidationResult

// ResolutionReport exports the shared-section resolution report.
type ResolutionReport = pages.ResolutionReport

// SharedSection exports the shared-section config entry.
type SharedSection = pages.SharedSection

// ContentCluster exports the content cluster config entry.
type ContentCluster = pages.ContentCluster

// PageRegistry exports the slug-keyed page registry.
type PageRegistry = pages.MemoryPageRegistry

// PageBuilder exports the draft page builder.
type PageBuilder = pages.Builder

// Section exports the section content model.
type Section = content.Section

// Field exports the discriminated field model.
type Field = content.Field

// SectionTypeRegistry exports the section type registry.
type SectionTypeRegistry = content.TypeRegistry

// SectionBuilder exports the gated section builder.
type SectionBuilder = content.Builder

// Template exports the section template model.
type Template = templates.Template

// TemplateRegistry exports the template registry.
type TemplateRegistry = templates.MemoryTemplateRegistry

// TemplateInstantiator exports the template instantiation service.
type TemplateInstantiator = templates.Instantiator

// TemplateVariable exports a template substitution slot declaration.
type TemplateVariable = templates.Variable

// AIGenerator exports the AI content generation contract.
type AIGenerator = templates.AIGenerator

// ThemeService exports the theme registry service.
type ThemeService = themes.Service

// SEOGenerator exports the programmatic page generator.
type SEOGenerator = seo.Generator

// SEOCatalog exports the city/service enumeration contract.
type SEOCatalog = seo.Catalog

// StaticCatalog exports the fixed in-memory catalog.
type StaticCatalog = seo.StaticCatalog

// Logger exports the structured logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// DefaultConfig exports the baseline configuration.
func DefaultConfig() Config { return runtimeconfig.DefaultConfig() }

// Module is the top level runtime façade. One module owns one frozen config
// and the registries and services wired from it.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI
// overrides. Configuration is validated and frozen before any service sees it.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the frozen configuration snapshot.
func (m *Module) Config() *Snapshot {
	return m.container.Config()
}

// Pages returns the slug-keyed page registry.
func (m *Module) Pages() *PageRegistry {
	return m.container.PageRegistry()
}

// Validator returns the three-step page validator.
func (m *Module) Validator() *PageValidator {
	return m.container.PageValidator()
}

// PageBuilder returns the draft page builder.
func (m *Module) PageBuilder() *PageBuilder {
	return m.container.PageBuilder()
}

// SectionTypes returns the section type registry.
func (m *Module) SectionTypes() *SectionTypeRegistry {
	return m.container.SectionTypes()
}

// Sections returns the gated section builder.
func (m *Module) Sections() *SectionBuilder {
	return m.container.SectionBuilder()
}

// Templates returns the template registry.
func (m *Module) Templates() *TemplateRegistry {
	return m.container.TemplateRegistry()
}

// Instantiator returns the template instantiation service.
func (m *Module) Instantiator() *TemplateInstantiator {
	return m.container.TemplateInstantiator()
}

// Themes returns the theme registry service.
func (m *Module) Themes() *ThemeService {
	return m.container.ThemeService()
}

// SEO returns the programmatic page generator.
func (m *Module) SEO() *SEOGenerator {
	return m.container.SEOGenerator()
}

// Logger returns a module-scoped logger from the wired provider.
func (m *Module) Logger() LoggerProvider {
	return m.container.LoggerProvider()
}
