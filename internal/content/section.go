package content

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SectionType enumerates the fixed catalog of section layouts the front end
// knows how to render.
type SectionType string

const (
	SectionHero              SectionType = "hero"
	SectionText              SectionType = "text"
	SectionForm              SectionType = "form"
	SectionGallery           SectionType = "gallery"
	SectionServices          SectionType = "services"
	SectionAIGenerated       SectionType = "aiGenerated"
	SectionClusteredContent  SectionType = "clusteredContent"
	SectionReviewsMarquee    SectionType = "reviewsMarquee"
	SectionHowItWorks        SectionType = "howItWorks"
	SectionOurServices       SectionType = "ourServices"
	SectionServiceLocations  SectionType = "serviceLocations"
	SectionPricingComparison SectionType = "pricingComparison"
	SectionFAQ               SectionType = "faq"
	SectionBestRatedCleaners SectionType = "bestRatedCleaners"
	SectionLeadCapture       SectionType = "leadCapture"
)

// SectionTypes lists the full section catalog in declaration order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionHero,
		SectionText,
		SectionForm,
		SectionGallery,
		SectionServices,
		SectionAIGenerated,
		SectionClusteredContent,
		SectionReviewsMarquee,
		SectionHowItWorks,
		SectionOurServices,
		SectionServiceLocations,
		SectionPricingComparison,
		SectionFAQ,
		SectionBestRatedCleaners,
		SectionLeadCapture,
	}
}

// KnownSectionType reports membership in the fixed catalog.
func KnownSectionType(t SectionType) bool {
	for _, known := range SectionTypes() {
		if known == t {
			return true
		}
	}
	return false
}

// Style carries presentation hints attached to a section.
type Style struct {
	Background string `json:"background,omitempty"`
	Padding    string `json:"padding,omitempty"`
	Variant    string `json:"variant,omitempty"`
}

// Tracking configures analytics events emitted when a section renders.
type Tracking struct {
	Event  string            `json:"event,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}

// SectionMeta carries per-section SEO hints.
type SectionMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Section is the unit of page composition: a typed collection of fields keyed
// by field id, so field-id uniqueness is structural rather than validated.
type Section struct {
	Type     SectionType      `json:"type"`
	Fields   map[string]Field `json:"fields"`
	Style    *Style           `json:"style,omitempty"`
	Tracking *Tracking        `json:"tracking,omitempty"`
	Meta     *SectionMeta     `json:"meta,omitempty"`
}

// Validate checks the section envelope and every contained field.
func (s Section) Validate() error {
	errs := validation.Errors{}
	if !KnownSectionType(s.Type) {
		errs["type"] = validation.NewError("sitekit.content.section.type_invalid", "type is not in the section catalog")
	}
	if s.Fields == nil {
		errs["fields"] = validation.NewError("sitekit.content.section.fields_required", "fields mapping is required")
	}
	for key, field := range s.Fields {
		if strings.TrimSpace(key) == "" {
			errs["fields"] = validation.NewError("sitekit.content.section.field_key_empty", "field keys must be non-empty")
			continue
		}
		if field.ID != "" && field.ID != key {
			errs["fields."+key] = validation.NewError("sitekit.content.section.field_id_mismatch", "field id must match its mapping key")
			continue
		}
		if err := field.Validate(); err != nil {
			errs["fields."+key] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Clone returns an independent deep copy of the section via a JSON
// round-trip, which is safe because sections are fully JSON-representable.
func (s Section) Clone() (Section, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return Section{}, err
	}
	var copied Section
	if err := json.Unmarshal(encoded, &copied); err != nil {
		return Section{}, err
	}
	return copied, nil
}

// Normalize stamps each field's id from its mapping key so sections built
// from sparse literals satisfy the id/key invariant.
func (s *Section) Normalize() {
	if s == nil || s.Fields == nil {
		return
	}
	for key, field := range s.Fields {
		if field.ID == "" {
			field.ID = key
			s.Fields[key] = field
		}
	}
}
