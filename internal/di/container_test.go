package di_test

import (
	"context"
	"testing"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/di"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/runtimeconfig"
	"github.com/tidynest/sitekit/internal/seo"
	"github.com/tidynest/sitekit/internal/themes"
)

func quietConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestNewContainerWiresServices(t *testing.T) {
	container, err := di.NewContainer(quietConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	if container.Config() == nil {
		t.Error("Config() is nil")
	}
	if container.LoggerProvider() == nil {
		t.Error("LoggerProvider() is nil")
	}
	if container.SectionBuilder() == nil || container.PageBuilder() == nil {
		t.Error("builders are nil")
	}
	if container.PageValidator() == nil || container.SharedSectionResolver() == nil {
		t.Error("validation services are nil")
	}
	if container.TemplateRegistry() == nil || container.TemplateInstantiator() == nil {
		t.Error("template services are nil")
	}
	if container.ThemeService() == nil || container.SEOGenerator() == nil {
		t.Error("theme or seo services are nil")
	}
}

func TestNewContainerPreloadsSectionCatalog(t *testing.T) {
	container, err := di.NewContainer(quietConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	registry := container.SectionTypes()
	for _, sectionType := range content.SectionTypes() {
		if !registry.Has(sectionType) {
			t.Errorf("catalog missing %q", sectionType)
		}
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Advanced = &runtimeconfig.Advanced{
		ProgrammaticSEO: runtimeconfig.ProgrammaticSEO{Enabled: true},
	}

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("NewContainer() accepted advanced config without a feature flag")
	}
}

func TestWithPageRegistryPreSeeds(t *testing.T) {
	seeded := pages.NewMemoryPageRegistry()
	builder := pages.NewBuilder()
	page, err := builder.NewPage(pages.NewPageInput{
		Type:  pages.PageAbout,
		Slug:  "/about",
		Title: "About Us",
	})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}
	if err := seeded.Register(page); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	container, err := di.NewContainer(quietConfig(), di.WithPageRegistry(seeded))
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	if !container.PageRegistry().Has("/about") {
		t.Error("seeded page missing from container registry")
	}
}

func TestContainerRegistersConfiguredTheme(t *testing.T) {
	cfg := quietConfig()
	cfg.Features.EnableThemes = true
	cfg.Theme = &runtimeconfig.ThemeSettings{
		Name:    "tidy-light",
		Version: "2.1.0",
		Tokens: themes.TokenSet{
			Colors:     map[string]string{"primary": "#2563eb"},
			Typography: themes.Typography{FontFamily: "Inter, sans-serif"},
		},
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	theme, ok := container.ThemeService().Get("tidy-light")
	if !ok {
		t.Fatal("configured theme not registered")
	}
	if theme.Version != "2.1.0" {
		t.Errorf("version = %q", theme.Version)
	}
}

func TestContainerRegistersVersionlessTheme(t *testing.T) {
	cfg := quietConfig()
	cfg.Features.EnableThemes = true
	cfg.Theme = &runtimeconfig.ThemeSettings{
		Name: "tidy-light",
		Tokens: themes.TokenSet{
			Colors:     map[string]string{"primary": "#2563eb"},
			Typography: themes.Typography{FontFamily: "Inter, sans-serif"},
		},
	}

	if _, err := di.NewContainer(cfg); err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
}

func TestContainerGeneratesProgrammaticPages(t *testing.T) {
	cfg := quietConfig()
	cfg.Features.EnableAdvancedSEO = true
	cfg.Features.EnableProgrammaticSEO = true
	cfg.Advanced = &runtimeconfig.Advanced{
		ProgrammaticSEO: runtimeconfig.ProgrammaticSEO{
			Enabled: true,
			RouteRules: []runtimeconfig.RouteRule{
				{Pattern: "/:city/:service", Type: runtimeconfig.RouteDynamic, GenerateFrom: runtimeconfig.FromLocations},
			},
		},
	}

	container, err := di.NewContainer(cfg, di.WithCatalog(seo.StaticCatalog{
		CityList:    []string{"Sydney"},
		ServiceList: []string{"House Cleaning"},
	}))
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	report, err := container.SEOGenerator().Apply(context.Background())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(report.Created) != 1 {
		t.Fatalf("Created = %v", report.Created)
	}
	if !container.PageRegistry().Has("/sydney/house-cleaning") {
		t.Error("generated page missing from registry")
	}
}
