package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	sitekit "github.com/tidynest/sitekit"
	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/di"
)

func main() {
	ctx := context.Background()

	cfg := sitekit.DefaultConfig()
	cfg.Features.EnableAdvancedSEO = true
	cfg.Features.EnableProgrammaticSEO = true
	cfg.Features.EnableSharedSections = true
	cfg.Advanced = &sitekit.Advanced{
		ProgrammaticSEO: sitekit.ProgrammaticSEO{
			Enabled: true,
			RouteRules: []sitekit.RouteRule{
				{Pattern: "/:city/:service", Type: "dynamic", GenerateFrom: "locations"},
			},
		},
		SharedSections: []sitekit.SharedSection{
			{
				ID: "spring-promo",
				Section: map[string]any{
					"type": "leadCapture",
					"fields": map[string]any{
						"offer": map[string]any{"id": "offer", "type": "cta", "label": "20% off your first clean", "href": "/booking"},
					},
				},
			},
		},
	}

	module, err := sitekit.New(cfg, di.WithCatalog(sitekit.StaticCatalog{
		CityList:    []string{"Sydney", "Melbourne", "Brisbane"},
		ServiceList: []string{"House Cleaning", "End of Lease Cleaning"},
	}))
	if err != nil {
		log.Fatalf("sitekit: %v", err)
	}

	if err := registerServicePage(module); err != nil {
		log.Fatalf("register page: %v", err)
	}
	if err := instantiateCityHero(ctx, module); err != nil {
		log.Fatalf("instantiate template: %v", err)
	}
	if err := generateProgrammaticPages(ctx, module); err != nil {
		log.Fatalf("generate pages: %v", err)
	}

	listPages(module)
}

func registerServicePage(module *sitekit.Module) error {
	payload := map[string]any{
		"type": "service",
		"slug": "/services/house-cleaning",
		"meta": map[string]any{
			"title":       "House Cleaning | TidyNest",
			"description": "Professional house cleaning with vetted local cleaners.",
		},
		"sections": []any{
			map[string]any{
				"type": "hero",
				"fields": map[string]any{
					"headline": map[string]any{"id": "headline", "type": "text", "value": "Sparkling homes, zero hassle"},
					"cta":      map[string]any{"id": "cta", "type": "cta", "label": "Get a quote", "href": "/quote"},
				},
			},
		},
		"sharedSectionRefs": []any{"spring-promo"},
	}

	result, err := module.Validator().ValidatePage(payload, sitekit.ValidateOptions{ResolveShared: true})
	if err != nil {
		return err
	}
	if err := module.Pages().Register(result.Page); err != nil {
		return err
	}
	fmt.Printf("registered %s with %d sections (%d shared)\n",
		result.Page.Slug, len(result.Page.Sections), len(result.Resolution.Resolved))
	return nil
}

func instantiateCityHero(ctx context.Context, module *sitekit.Module) error {
	err := module.Templates().Register(sitekit.Template{
		ID:   "city-hero",
		Name: "City hero",
		Section: sitekit.Section{
			Type: content.SectionHero,
			Fields: map[string]sitekit.Field{
				"headline": {ID: "headline", Variant: content.TextField{Value: "Cleaning services in ${city}"}},
			},
		},
		Variables: []sitekit.TemplateVariable{
			{Key: "city", Label: "City", Type: "text"},
		},
	})
	if err != nil {
		return err
	}

	section, err := module.Instantiator().Instantiate(ctx, "city-hero", map[string]string{"city": "Sydney"})
	if err != nil {
		return err
	}
	fmt.Printf("instantiated %s section from template city-hero\n", section.Type)
	return nil
}

func generateProgrammaticPages(ctx context.Context, module *sitekit.Module) error {
	report, err := module.SEO().Apply(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("programmatic run: %d created, %d skipped\n", len(report.Created), len(report.Skipped))
	return nil
}

func listPages(module *sitekit.Module) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for _, page := range module.Pages().List() {
		fmt.Printf("%s (%s)\n", page.Slug, page.Type)
	}
	if page, err := module.Pages().Get("/sydney/house-cleaning"); err == nil {
		_ = encoder.Encode(page)
	}
}
