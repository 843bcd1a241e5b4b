package pages

import (
	"encoding/json"
	"fmt"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/google/uuid"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/identity"
	"github.com/tidynest/sitekit/internal/validation"
)

// Stable error codes surfaced to the request boundary.
const (
	CodeInvalidPageStructure = "INVALID_PAGE_STRUCTURE"
	CodeInvalidPageType      = "INVALID_PAGE_TYPE"
	CodeInvalidSlug          = "INVALID_SLUG"
	CodeInvalidSharedSection = "INVALID_SHARED_SECTION"
)

// SectionCode names the per-index code attached to section failures, so a
// failure on section 2 surfaces as INVALID_SECTION_2.
func SectionCode(index int) string {
	return fmt.Sprintf("INVALID_SECTION_%d", index)
}

// PageSchemaDoc returns the JSON schema for the page envelope. The type enum
// is deliberately NOT enforced here: an unknown page type is reported through
// the dedicated INVALID_PAGE_TYPE code instead of a generic structure error.
// Section payloads are validated per-index in the second validation step.
func PageSchemaDoc() map[string]any {
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"type", "slug", "sections"},
		"properties": map[string]any{
			"id":   map[string]any{"type": "string"},
			"type": map[string]any{"type": "string", "minLength": 1},
			"slug": map[string]any{"type": "string", "minLength": 1},
			"status": map[string]any{
				"enum":    []any{"draft", "published", "archived"},
				"default": "draft",
			},
			"priority": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
				"default": 0.5,
			},
			"meta": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"default":              map[string]any{},
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"keywords":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"canonical":   map[string]any{"type": "string"},
					"robots":      map[string]any{"type": "string"},
					"ogImage":     map[string]any{"type": "string"},
				},
			},
			"sections": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
			"clusterRefs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"sharedSectionRefs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"version": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"default": 1,
			},
			"lastModified":   map[string]any{"type": "string"},
			"lastModifiedBy": map[string]any{"type": "string"},
			"publishedAt":    map[string]any{"type": "string"},
			"publishedBy":    map[string]any{"type": "string"},
		},
	}
}

var compiledPageSchema *jsonschema.Schema = validation.MustCompile(PageSchemaDoc())

// pageEnvelope defers section decoding so per-section failures can carry
// their index instead of aborting the whole envelope decode.
type pageEnvelope struct {
	ID                string            `json:"id"`
	Type              PageType          `json:"type"`
	Slug              string            `json:"slug"`
	Status            Status            `json:"status"`
	Priority          float64           `json:"priority"`
	Meta              Meta              `json:"meta"`
	Sections          []json.RawMessage `json:"sections"`
	ClusterRefs       []string          `json:"clusterRefs"`
	SharedSectionRefs []string          `json:"sharedSectionRefs"`
	Version           int               `json:"version"`
	LastModified      *time.Time        `json:"lastModified"`
	LastModifiedBy    string            `json:"lastModifiedBy"`
	PublishedAt       *time.Time        `json:"publishedAt"`
	PublishedBy       string            `json:"publishedBy"`
}

// parseEnvelope runs the first validation step: the page's own top-level
// structure. It fails with INVALID_PAGE_STRUCTURE (or INVALID_PAGE_TYPE for
// an unknown type enum) before any section is looked at.
func parseEnvelope(payload any, now func() time.Time) (pageEnvelope, error) {
	normalized, err := validation.ValidateSafely(compiledPageSchema, PageSchemaDoc(), payload, CodeInvalidPageStructure)
	if err != nil {
		return pageEnvelope{}, err
	}

	var envelope pageEnvelope
	if err := validation.Decode(normalized, &envelope); err != nil {
		return pageEnvelope{}, &validation.Error{
			Code:   CodeInvalidPageStructure,
			Issues: []validation.Issue{{Message: err.Error()}},
			Cause:  err,
		}
	}

	if !KnownPageType(envelope.Type) {
		return pageEnvelope{}, validation.NewError(CodeInvalidPageType, validation.Issue{
			Location: "/type",
			Message:  fmt.Sprintf("%q is not a known page type", envelope.Type),
		})
	}
	if !content.IsValidPath(envelope.Slug) {
		return pageEnvelope{}, validation.NewError(CodeInvalidSlug, validation.Issue{
			Location: "/slug",
			Message:  fmt.Sprintf("%q is not a normalized path", envelope.Slug),
		})
	}
	if envelope.LastModified == nil {
		stamped := now()
		envelope.LastModified = &stamped
	}
	return envelope, nil
}

// assemble converts a validated envelope plus decoded sections into a Page.
func (e pageEnvelope) assemble(sections []content.Section) (Page, error) {
	id := identity.PageUUID(e.Slug)
	if e.ID != "" {
		parsed, err := uuid.Parse(e.ID)
		if err != nil {
			return Page{}, validation.NewError(CodeInvalidPageStructure, validation.Issue{
				Location: "/id",
				Message:  "id must be a UUID",
			})
		}
		id = parsed
	}

	return Page{
		ID:                id,
		Type:              e.Type,
		Slug:              e.Slug,
		Status:            e.Status,
		Priority:          e.Priority,
		Meta:              e.Meta,
		Sections:          sections,
		ClusterRefs:       e.ClusterRefs,
		SharedSectionRefs: e.SharedSectionRefs,
		Version:           e.Version,
		LastModified:      *e.LastModified,
		LastModifiedBy:    e.LastModifiedBy,
		PublishedAt:       e.PublishedAt,
		PublishedBy:       e.PublishedBy,
	}, nil
}
