package templates_test

import (
	"errors"
	"testing"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/templates"
)

func TestRegistryAppendOnce(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()
	tpl := cityHeroTemplate()

	if err := registry.Register(tpl); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := registry.Register(tpl)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	var dup *templates.AlreadyRegisteredError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %T", err)
	}
}

func TestRegistryRejectsInvalidTemplate(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()

	tpl := cityHeroTemplate()
	tpl.Name = ""

	err := registry.Register(tpl)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, templates.ErrTemplateInvalid) {
		t.Errorf("error = %v, want ErrTemplateInvalid", err)
	}
}

func TestRegistryRejectsDuplicateVariableKeys(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()

	tpl := cityHeroTemplate()
	tpl.Variables = append(tpl.Variables, templates.Variable{Key: "city", Label: "City again"})

	if err := registry.Register(tpl); err == nil {
		t.Fatal("expected duplicate variable key to fail validation")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()

	_, err := registry.Get("ghost")
	if err == nil {
		t.Fatal("expected not found error")
	}
	var notFound *templates.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %T", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()

	for _, id := range []string{"zeta", "alpha", "mid"} {
		tpl := cityHeroTemplate()
		tpl.ID = id
		if err := registry.Register(tpl); err != nil {
			t.Fatalf("Register(%q) error = %v", id, err)
		}
	}

	listed := registry.List()
	want := []string{"alpha", "mid", "zeta"}
	for i, id := range want {
		if listed[i].ID != id {
			t.Errorf("listed[%d] = %q, want %q", i, listed[i].ID, id)
		}
	}
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	registry := templates.NewMemoryTemplateRegistry()
	if err := registry.Register(cityHeroTemplate()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	loaded, err := registry.Get("city-hero")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	loaded.Section.Fields["headline"] = content.Field{ID: "headline", Variant: content.TextField{Value: "Mutated"}}

	again, err := registry.Get("city-hero")
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}
	headline := again.Section.Fields["headline"].Variant.(content.TextField)
	if headline.Value != "Hello ${city}" {
		t.Errorf("stored template mutated: %q", headline.Value)
	}
}
