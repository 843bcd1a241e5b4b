package templates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/templates"
	"github.com/tidynest/sitekit/internal/validation"
)

func cityHeroTemplate() templates.Template {
	return templates.Template{
		ID:   "city-hero",
		Name: "City hero",
		Section: content.Section{
			Type: content.SectionHero,
			Fields: map[string]content.Field{
				"headline": {ID: "headline", Variant: content.TextField{Value: "Hello ${city}"}},
				"cta":      {ID: "cta", Variant: content.CTAField{Label: "Book in ${city}", Href: "/booking"}},
			},
		},
		Variables: []templates.Variable{
			{Key: "city", Label: "City", Type: templates.VariableText},
		},
	}
}

func newRegistryWith(t *testing.T, tpl templates.Template) *templates.MemoryTemplateRegistry {
	t.Helper()
	registry := templates.NewMemoryTemplateRegistry()
	if err := registry.Register(tpl); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return registry
}

func TestInstantiateSubstitutesVariables(t *testing.T) {
	registry := newRegistryWith(t, cityHeroTemplate())
	inst := templates.NewInstantiator(registry)

	section, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{"city": "Sydney"})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	headline := section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Hello Sydney" {
		t.Errorf("headline = %q, want %q", headline.Value, "Hello Sydney")
	}
	cta := section.Fields["cta"].Variant.(content.CTAField)
	if cta.Label != "Book in Sydney" {
		t.Errorf("cta label = %q", cta.Label)
	}
}

func TestInstantiateMissingVariableSubstitutesEmpty(t *testing.T) {
	registry := newRegistryWith(t, cityHeroTemplate())
	inst := templates.NewInstantiator(registry)

	section, err := inst.Instantiate(context.Background(), "city-hero", nil)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	headline := section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Hello " {
		t.Errorf("headline = %q, want %q", headline.Value, "Hello ")
	}
}

func TestInstantiateEscapesSubstitutedValues(t *testing.T) {
	registry := newRegistryWith(t, cityHeroTemplate())
	inst := templates.NewInstantiator(registry)

	section, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{
		"city": `Syd"ney \ Extra`,
	})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	headline := section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != `Hello Syd"ney \ Extra` {
		t.Errorf("headline = %q", headline.Value)
	}
}

func TestInstantiateDoesNotMutateTemplate(t *testing.T) {
	registry := newRegistryWith(t, cityHeroTemplate())
	inst := templates.NewInstantiator(registry)

	if _, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{"city": "Sydney"}); err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	stored, err := registry.Get("city-hero")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	headline := stored.Section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Hello ${city}" {
		t.Errorf("template mutated: %q", headline.Value)
	}
}

func TestInstantiateUnknownTemplate(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()
	inst := templates.NewInstantiator(registry)

	_, err := inst.Instantiate(context.Background(), "ghost", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := validation.CodeOf(err); got != templates.CodeTemplateNotFound {
		t.Errorf("code = %q, want %q", got, templates.CodeTemplateNotFound)
	}
}

type stubGenerator struct {
	sections []content.Section
	err      error
	calls    int
}

func (s *stubGenerator) Generate(context.Context, string, map[string]string) ([]content.Section, error) {
	s.calls++
	return s.sections, s.err
}

func TestInstantiateMergesGeneratedFields(t *testing.T) {
	tpl := cityHeroTemplate()
	tpl.AIPrompt = "Write a hero for ${city}"
	registry := newRegistryWith(t, tpl)

	gen := &stubGenerator{
		sections: []content.Section{
			{
				Type: content.SectionHero,
				Fields: map[string]content.Field{
					"headline": {ID: "headline", Variant: content.TextField{Value: "Generated hello"}},
					"subtitle": {Variant: content.TextField{Value: "Generated subtitle"}},
				},
			},
		},
	}
	inst := templates.NewInstantiator(registry, templates.WithAIGenerator(gen))

	section, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{"city": "Sydney"})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d", gen.calls)
	}

	headline := section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Generated hello" {
		t.Errorf("generated content should win: %q", headline.Value)
	}
	subtitle, ok := section.Fields["subtitle"]
	if !ok {
		t.Fatal("generated field not merged")
	}
	if subtitle.ID != "subtitle" {
		t.Errorf("merged field id = %q", subtitle.ID)
	}
	cta := section.Fields["cta"].Variant.(content.CTAField)
	if cta.Label != "Book in Sydney" {
		t.Errorf("template field lost: %q", cta.Label)
	}
}

func TestInstantiateToleratesGeneratorFailure(t *testing.T) {
	tpl := cityHeroTemplate()
	tpl.AIPrompt = "Write a hero"
	registry := newRegistryWith(t, tpl)

	inst := templates.NewInstantiator(registry, templates.WithAIGenerator(&stubGenerator{err: errors.New("offline")}))

	section, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{"city": "Sydney"})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	headline := section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Hello Sydney" {
		t.Errorf("fallback content lost: %q", headline.Value)
	}
}

func TestInstantiateEmptyGenerationKeepsTemplateContent(t *testing.T) {
	tpl := cityHeroTemplate()
	tpl.AIPrompt = "Write a hero"
	registry := newRegistryWith(t, tpl)

	inst := templates.NewInstantiator(registry, templates.WithAIGenerator(&stubGenerator{}))

	section, err := inst.Instantiate(context.Background(), "city-hero", map[string]string{"city": "Sydney"})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	if len(section.Fields) != 2 {
		t.Errorf("fields = %d, want 2", len(section.Fields))
	}
}
