package pages

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/identity"
	"github.com/tidynest/sitekit/internal/validation"
)

// IDGenerator derives a page identity from its slug.
type IDGenerator func(slug string) uuid.UUID

// BuilderOption configures a page builder.
type BuilderOption func(*Builder)

// WithClock overrides the time source used to stamp new pages.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator overrides the identity derivation.
func WithIDGenerator(generator IDGenerator) BuilderOption {
	return func(b *Builder) {
		if generator != nil {
			b.id = generator
		}
	}
}

// NewPageInput carries the caller-supplied parts of a fresh page; everything
// else is defaulted by the builder.
type NewPageInput struct {
	Type              PageType
	Slug              string
	Title             string
	Description       string
	Sections          []content.Section
	ClusterRefs       []string
	SharedSectionRefs []string
	CreatedBy         string
}

// Builder constructs pages with fresh identity and default metadata. Pages
// leave the builder structurally valid; nothing else hands out version-1
// draft pages.
type Builder struct {
	now func() time.Time
	id  IDGenerator
}

// NewBuilder constructs a page builder with deterministic slug-derived IDs.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		now: time.Now,
		id:  identity.PageUUID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewPage builds a draft page at version 1. An unknown page type fails with
// INVALID_PAGE_TYPE (schema misuse); a slug that cannot be normalized fails
// with INVALID_SLUG.
func (b *Builder) NewPage(input NewPageInput) (Page, error) {
	if !KnownPageType(input.Type) {
		return Page{}, validation.NewError(CodeInvalidPageType, validation.Issue{
			Location: "/type",
			Message:  string(input.Type) + " is not a known page type",
		})
	}

	slug, err := content.NormalizePath(input.Slug)
	if err != nil || slug == "/" && input.Type != PageHome {
		return Page{}, validation.NewError(CodeInvalidSlug, validation.Issue{
			Location: "/slug",
			Message:  "slug cannot be normalized into a routable path",
		})
	}

	sections := input.Sections
	if sections == nil {
		sections = []content.Section{}
	}

	page := Page{
		ID:       b.id(slug),
		Type:     input.Type,
		Slug:     slug,
		Status:   StatusDraft,
		Priority: 0.5,
		Meta: Meta{
			Title:       input.Title,
			Description: input.Description,
		},
		Sections:          sections,
		ClusterRefs:       input.ClusterRefs,
		SharedSectionRefs: input.SharedSectionRefs,
		Version:           1,
		LastModified:      b.now(),
		LastModifiedBy:    input.CreatedBy,
	}

	if err := page.Validate(); err != nil {
		return Page{}, &validation.Error{
			Code:   CodeInvalidPageStructure,
			Issues: content.IssuesFromRules(err),
			Cause:  err,
		}
	}
	return page, nil
}
