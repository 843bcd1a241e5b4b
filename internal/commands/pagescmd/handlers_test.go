package pagescmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/tidynest/sitekit/internal/commands/pagescmd"
	"github.com/tidynest/sitekit/internal/pages"
)

func servicePayload() map[string]any {
	return map[string]any{
		"type": "service",
		"slug": "/services/house-cleaning",
		"sections": []any{
			map[string]any{
				"type": "hero",
				"fields": map[string]any{
					"headline": map[string]any{"id": "headline", "type": "text", "value": "House Cleaning"},
				},
			},
		},
	}
}

func TestRegisterPageCommandExecute(t *testing.T) {
	registry := pages.NewMemoryPageRegistry()
	handler := pagescmd.NewRegisterPageHandler(pages.NewValidator(nil), registry, nil)

	err := handler.Execute(context.Background(), pagescmd.RegisterPageCommand{
		Payload: servicePayload(),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !registry.Has("/services/house-cleaning") {
		t.Error("page missing from registry after command")
	}
}

func TestRegisterPageCommandRequiresPayload(t *testing.T) {
	registry := pages.NewMemoryPageRegistry()
	handler := pagescmd.NewRegisterPageHandler(pages.NewValidator(nil), registry, nil)

	err := handler.Execute(context.Background(), pagescmd.RegisterPageCommand{})
	if err == nil {
		t.Fatal("Execute() accepted empty payload")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v", err)
	}
	if registry.Len() != 0 {
		t.Error("registry modified by rejected command")
	}
}

func TestRegisterPageCommandRejectsInvalidPage(t *testing.T) {
	registry := pages.NewMemoryPageRegistry()
	handler := pagescmd.NewRegisterPageHandler(pages.NewValidator(nil), registry, nil)

	payload := servicePayload()
	payload["type"] = "brochure"
	err := handler.Execute(context.Background(), pagescmd.RegisterPageCommand{Payload: payload})
	if err == nil {
		t.Fatal("Execute() accepted unknown page type")
	}
	if registry.Len() != 0 {
		t.Error("registry modified by rejected command")
	}
}

func TestRegisterPageCommandDuplicateSlug(t *testing.T) {
	registry := pages.NewMemoryPageRegistry()
	handler := pagescmd.NewRegisterPageHandler(pages.NewValidator(nil), registry, nil)

	if err := handler.Execute(context.Background(), pagescmd.RegisterPageCommand{Payload: servicePayload()}); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if err := handler.Execute(context.Background(), pagescmd.RegisterPageCommand{Payload: servicePayload()}); err == nil {
		t.Fatal("second Execute() accepted duplicate slug")
	}
	if registry.Len() != 1 {
		t.Errorf("Len() = %d, want 1", registry.Len())
	}
}
