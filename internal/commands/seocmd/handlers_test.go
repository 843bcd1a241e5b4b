package seocmd_test

import (
	"context"
	"testing"

	"github.com/tidynest/sitekit/internal/commands/seocmd"
	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/runtimeconfig"
	"github.com/tidynest/sitekit/internal/seo"
)

func generatorFixture(t *testing.T) (*seo.Generator, *pages.MemoryPageRegistry) {
	t.Helper()

	cfg := runtimeconfig.DefaultConfig()
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
	snapshot, err := runtimeconfig.NewSnapshot(cfg)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}

	registry := pages.NewMemoryPageRegistry()
	generator := seo.NewGenerator(snapshot, registry, pages.NewBuilder(), seo.StaticCatalog{
		CityList:    []string{"Sydney"},
		ServiceList: []string{"House Cleaning"},
	})
	return generator, registry
}

func TestGeneratePagesCommandExecute(t *testing.T) {
	generator, registry := generatorFixture(t)
	handler := seocmd.NewGeneratePagesHandler(generator, nil)

	if err := handler.Execute(context.Background(), seocmd.GeneratePagesCommand{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !registry.Has("/sydney/house-cleaning") {
		t.Error("generated page missing from registry")
	}
}

func TestGeneratePagesCommandIdempotent(t *testing.T) {
	generator, registry := generatorFixture(t)
	handler := seocmd.NewGeneratePagesHandler(generator, nil)

	if err := handler.Execute(context.Background(), seocmd.GeneratePagesCommand{}); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if err := handler.Execute(context.Background(), seocmd.GeneratePagesCommand{}); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if registry.Len() != 1 {
		t.Errorf("Len() = %d, want 1", registry.Len())
	}
}
