package pages

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tidynest/sitekit/internal/content"
)

// PageType enumerates the routable page categories.
type PageType string

const (
	PageService PageType = "service"
	PageHome    PageType = "home"
	PageCity    PageType = "city"
	PageAbout   PageType = "about"
	PageContact PageType = "contact"
	PageBlog    PageType = "blog"
	PageSuburb  PageType = "suburb"
	PageCluster PageType = "cluster"
	PageLanding PageType = "landing"
)

// PageTypes lists the page-type enumeration in declaration order.
func PageTypes() []PageType {
	return []PageType{
		PageService,
		PageHome,
		PageCity,
		PageAbout,
		PageContact,
		PageBlog,
		PageSuburb,
		PageCluster,
		PageLanding,
	}
}

// KnownPageType reports membership in the page-type enumeration.
func KnownPageType(t PageType) bool {
	for _, known := range PageTypes() {
		if known == t {
			return true
		}
	}
	return false
}

// Status tracks a page's publication lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Meta carries the SEO metadata rendered into a page's head.
type Meta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Canonical   string   `json:"canonical,omitempty"`
	Robots      string   `json:"robots,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// Page is a routable, versioned collection of sections plus SEO metadata.
// Pages are append-only at the section level: shared-section resolution adds
// sections, nothing removes them in-process.
type Page struct {
	ID                uuid.UUID         `json:"id"`
	Type              PageType          `json:"type"`
	Slug              string            `json:"slug"`
	Status            Status            `json:"status"`
	Priority          float64           `json:"priority"`
	Meta              Meta              `json:"meta"`
	Sections          []content.Section `json:"sections"`
	ClusterRefs       []string          `json:"clusterRefs,omitempty"`
	SharedSectionRefs []string          `json:"sharedSectionRefs,omitempty"`
	Version           int               `json:"version"`
	LastModified      time.Time         `json:"lastModified"`
	LastModifiedBy    string            `json:"lastModifiedBy,omitempty"`
	PublishedAt       *time.Time        `json:"publishedAt,omitempty"`
	PublishedBy       string            `json:"publishedBy,omitempty"`
}

// Validate checks the page's own top-level invariants. Section payloads are
// validated separately so per-section failures can carry their index.
func (p Page) Validate() error {
	errs := validation.Errors{}
	if p.ID == uuid.Nil {
		errs["id"] = validation.NewError("sitekit.pages.id_required", "id is required")
	}
	if !KnownPageType(p.Type) {
		errs["type"] = validation.NewError("sitekit.pages.type_invalid", "type is not a known page type")
	}
	if !content.IsValidPath(p.Slug) {
		errs["slug"] = validation.NewError("sitekit.pages.slug_invalid", "slug must be a normalized path")
	}
	switch p.Status {
	case StatusDraft, StatusPublished, StatusArchived:
	default:
		errs["status"] = validation.NewError("sitekit.pages.status_invalid", "status is not a known status")
	}
	if p.Priority < 0 || p.Priority > 1 {
		errs["priority"] = validation.NewError("sitekit.pages.priority_range", "priority must be between 0 and 1")
	}
	if p.Version < 1 {
		errs["version"] = validation.NewError("sitekit.pages.version_invalid", "version must be a positive integer")
	}
	if p.Sections == nil {
		errs["sections"] = validation.NewError("sitekit.pages.sections_required", "sections sequence is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ContentCluster groups section references for internal-linking purposes.
// It is descriptive only; refs are not resolved against any registry.
type ContentCluster struct {
	ClusterID   string   `json:"clusterId"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	SectionRefs []string `json:"sectionRefs"`
}

// Validate checks the structural shape of a cluster.
func (c ContentCluster) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(c.ClusterID) == "" {
		errs["clusterId"] = validation.NewError("sitekit.pages.cluster_id_required", "clusterId is required")
	}
	if strings.TrimSpace(c.Label) == "" {
		errs["label"] = validation.NewError("sitekit.pages.cluster_label_required", "label is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SharedSection is a pool entry referenced by id from pages. The section
// payload stays raw until resolution time, when it is validated against the
// section schema before a copy is appended to the referencing page.
type SharedSection struct {
	ID      string         `json:"id"`
	Section map[string]any `json:"section"`
}
