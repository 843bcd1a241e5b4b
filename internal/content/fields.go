package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldType discriminates the fixed set of field variants.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldRichText FieldType = "richText"
	FieldImage    FieldType = "image"
	FieldCTA      FieldType = "cta"
	FieldForm     FieldType = "form"
	FieldService  FieldType = "service"
	FieldAIPrompt FieldType = "aiPrompt"
)

// ErrUnrecognizedFieldType rejects payloads whose type tag matches no variant.
// The tag is inspected before any structural matching so callers get a single
// actionable message instead of partial matches against every variant.
var ErrUnrecognizedFieldType = errors.New("content: unrecognized field type")

// FieldVariant is implemented by the fixed set of field payloads. Adding a
// variant requires extending the dispatch in decodeVariant and every exhaustive
// switch over the set, which keeps new variants compile-time visible.
type FieldVariant interface {
	FieldType() FieldType
	Validate() error
}

// TextField holds a short plain-text value.
type TextField struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

func (TextField) FieldType() FieldType { return FieldText }

func (f TextField) Validate() error {
	if f.Value == "" {
		return validation.Errors{
			"value": validation.NewError("sitekit.content.field.text_value_required", "value is required"),
		}
	}
	return nil
}

// RichTextField holds markdown content rendered by the presentation layer.
type RichTextField struct {
	Markdown string `json:"markdown"`
}

func (RichTextField) FieldType() FieldType { return FieldRichText }

func (f RichTextField) Validate() error {
	if strings.TrimSpace(f.Markdown) == "" {
		return validation.Errors{
			"markdown": validation.NewError("sitekit.content.field.richtext_required", "markdown is required"),
		}
	}
	return nil
}

// ImageField references a displayable asset.
type ImageField struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

func (ImageField) FieldType() FieldType { return FieldImage }

func (f ImageField) Validate() error {
	errs := validation.Errors{}
	if !isURLLike(f.Src) {
		errs["src"] = validation.NewError("sitekit.content.field.image_src_invalid", "src must be a valid URL")
	}
	if strings.TrimSpace(f.Alt) == "" {
		errs["alt"] = validation.NewError("sitekit.content.field.image_alt_required", "alt is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CTAField is a call-to-action link.
type CTAField struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Style string `json:"style,omitempty"`
}

func (CTAField) FieldType() FieldType { return FieldCTA }

func (f CTAField) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(f.Label) == "" {
		errs["label"] = validation.NewError("sitekit.content.field.cta_label_required", "label is required")
	}
	if strings.TrimSpace(f.Href) == "" {
		errs["href"] = validation.NewError("sitekit.content.field.cta_href_required", "href is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FormField binds a lead-capture form by identifier.
type FormField struct {
	FormID      string `json:"formId"`
	SubmitLabel string `json:"submitLabel,omitempty"`
}

func (FormField) FieldType() FieldType { return FieldForm }

func (f FormField) Validate() error {
	if strings.TrimSpace(f.FormID) == "" {
		return validation.Errors{
			"formId": validation.NewError("sitekit.content.field.form_id_required", "formId is required"),
		}
	}
	return nil
}

// ServiceField describes a single offered service.
type ServiceField struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceFrom   string `json:"priceFrom,omitempty"`
}

func (ServiceField) FieldType() FieldType { return FieldService }

func (f ServiceField) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return validation.Errors{
			"name": validation.NewError("sitekit.content.field.service_name_required", "name is required"),
		}
	}
	return nil
}

// AIPromptField carries a generation prompt with per-variable defaults and a
// fallback strategy applied when generation yields nothing.
type AIPromptField struct {
	Prompt   string            `json:"prompt"`
	Defaults map[string]string `json:"defaults,omitempty"`
	Fallback string            `json:"fallback,omitempty"`
}

func (AIPromptField) FieldType() FieldType { return FieldAIPrompt }

func (f AIPromptField) Validate() error {
	if strings.TrimSpace(f.Prompt) == "" {
		return validation.Errors{
			"prompt": validation.NewError("sitekit.content.field.prompt_required", "prompt is required"),
		}
	}
	return nil
}

// Field is the atomic content unit inside a section. The id is unique within
// the owning section because the section stores fields keyed by id.
type Field struct {
	ID      string
	Variant FieldVariant
}

// Type returns the discriminator tag of the wrapped variant.
func (f Field) Type() FieldType {
	if f.Variant == nil {
		return ""
	}
	return f.Variant.FieldType()
}

// Validate checks the field envelope and delegates to the variant rules.
func (f Field) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(f.ID) == "" {
		errs["id"] = validation.NewError("sitekit.content.field.id_required", "id is required")
	}
	if f.Variant == nil {
		errs["type"] = validation.NewError("sitekit.content.field.variant_required", "field variant is required")
		return errs
	}
	if err := f.Variant.Validate(); err != nil {
		var nested validation.Errors
		if errors.As(err, &nested) {
			for key, value := range nested {
				errs[key] = value
			}
		} else {
			errs["value"] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type fieldEnvelope struct {
	ID   string    `json:"id"`
	Type FieldType `json:"type"`
}

// MarshalJSON flattens the variant payload next to the id and type tag.
func (f Field) MarshalJSON() ([]byte, error) {
	if f.Variant == nil {
		return nil, fmt.Errorf("%w: field %q has no variant", ErrUnrecognizedFieldType, f.ID)
	}
	payload, err := json.Marshal(f.Variant)
	if err != nil {
		return nil, err
	}
	merged := map[string]any{}
	if err := json.Unmarshal(payload, &merged); err != nil {
		return nil, err
	}
	merged["id"] = f.ID
	merged["type"] = string(f.Variant.FieldType())
	return json.Marshal(merged)
}

// UnmarshalJSON inspects the type tag first and decodes the matching variant.
func (f *Field) UnmarshalJSON(data []byte) error {
	var envelope fieldEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	variant, err := decodeVariant(envelope.Type, data)
	if err != nil {
		return err
	}
	f.ID = envelope.ID
	f.Variant = variant
	return nil
}

func decodeVariant(kind FieldType, data []byte) (FieldVariant, error) {
	switch kind {
	case FieldText:
		var v TextField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldRichText:
		var v RichTextField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldImage:
		var v ImageField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldCTA:
		var v CTAField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldForm:
		var v FormField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldService:
		var v ServiceField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldAIPrompt:
		var v AIPromptField
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFieldType, string(kind))
	}
}

// FieldTypes lists every registered field variant tag.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldText,
		FieldRichText,
		FieldImage,
		FieldCTA,
		FieldForm,
		FieldService,
		FieldAIPrompt,
	}
}

func isURLLike(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "/") {
		return true
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
