package content_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tidynest/sitekit/internal/content"
)

func TestFieldMarshalRoundTrip(t *testing.T) {
	original := content.Field{
		ID: "headline",
		Variant: content.TextField{
			Value: "Sparkling Homes",
			Label: "Headline",
		},
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded content.Field
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.ID != "headline" {
		t.Errorf("id = %q, want %q", decoded.ID, "headline")
	}
	text, ok := decoded.Variant.(content.TextField)
	if !ok {
		t.Fatalf("variant = %T, want TextField", decoded.Variant)
	}
	if text.Value != "Sparkling Homes" || text.Label != "Headline" {
		t.Errorf("text = %+v", text)
	}
}

func TestFieldUnmarshalDispatchesOnType(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    content.FieldType
	}{
		{"image", `{"id":"photo","type":"image","src":"/img/team.jpg","alt":"Our team"}`, content.FieldImage},
		{"cta", `{"id":"book","type":"cta","label":"Book now","href":"/booking"}`, content.FieldCTA},
		{"form", `{"id":"quote","type":"form","formId":"quote-form"}`, content.FieldForm},
		{"service", `{"id":"svc","type":"service","name":"Deep clean"}`, content.FieldService},
		{"richtext", `{"id":"body","type":"richText","markdown":"# Hi"}`, content.FieldRichText},
		{"aiprompt", `{"id":"gen","type":"aiPrompt","prompt":"Write a blurb for ${city}"}`, content.FieldAIPrompt},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var field content.Field
			if err := json.Unmarshal([]byte(tc.payload), &field); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := field.Type(); got != tc.want {
				t.Errorf("type = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFieldUnmarshalUnknownType(t *testing.T) {
	var field content.Field
	err := json.Unmarshal([]byte(`{"id":"x","type":"hologram"}`), &field)
	if err == nil {
		t.Fatal("expected error for unknown field type")
	}
	if !errors.Is(err, content.ErrUnrecognizedFieldType) {
		t.Errorf("error = %v, want ErrUnrecognizedFieldType", err)
	}
}

func TestImageFieldValidateRejectsBadSrc(t *testing.T) {
	field := content.ImageField{Src: "not a url", Alt: "broken"}
	if err := field.Validate(); err == nil {
		t.Fatal("expected validation error for non-URL src")
	}

	for _, src := range []string{"/img/hero.jpg", "https://cdn.example.com/hero.jpg"} {
		field := content.ImageField{Src: src, Alt: "hero"}
		if err := field.Validate(); err != nil {
			t.Errorf("Validate(%q) error = %v", src, err)
		}
	}
}

func TestCTAFieldValidateRequiresLabelAndHref(t *testing.T) {
	if err := (content.CTAField{Href: "/booking"}).Validate(); err == nil {
		t.Error("expected error for missing label")
	}
	if err := (content.CTAField{Label: "Book"}).Validate(); err == nil {
		t.Error("expected error for missing href")
	}
	if err := (content.CTAField{Label: "Book", Href: "/booking"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFieldTypesCoversAllVariants(t *testing.T) {
	types := content.FieldTypes()
	if len(types) != 7 {
		t.Fatalf("FieldTypes() = %d entries, want 7", len(types))
	}
	seen := map[content.FieldType]bool{}
	for _, ft := range types {
		if seen[ft] {
			t.Errorf("duplicate field type %q", ft)
		}
		seen[ft] = true
	}
}

func TestAIPromptFieldKeepsDefaults(t *testing.T) {
	payload := `{"id":"gen","type":"aiPrompt","prompt":"Describe ${service}","defaults":{"service":"house cleaning"},"fallback":"We clean houses."}`

	var field content.Field
	if err := json.Unmarshal([]byte(payload), &field); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	prompt, ok := field.Variant.(content.AIPromptField)
	if !ok {
		t.Fatalf("variant = %T", field.Variant)
	}
	if prompt.Defaults["service"] != "house cleaning" {
		t.Errorf("defaults = %v", prompt.Defaults)
	}
	if !strings.Contains(prompt.Prompt, "${service}") {
		t.Errorf("prompt = %q", prompt.Prompt)
	}
}
