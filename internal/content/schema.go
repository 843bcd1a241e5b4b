package content

import (
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tidynest/sitekit/internal/validation"
)

// SectionSchemaDoc returns the JSON schema document describing the section
// envelope. Object shapes are strict: unknown keys are a validation failure so
// caller typos surface instead of being silently dropped. Field variant
// payloads are validated after decoding, once the type tag has been
// dispatched.
func SectionSchemaDoc() map[string]any {
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"type", "fields"},
		"properties": map[string]any{
			"type": map[string]any{
				"enum": enumValues(SectionTypes()),
			},
			"fields": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":     "object",
					"required": []any{"id", "type"},
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "minLength": 1},
						"type": map[string]any{"enum": enumValues(FieldTypes())},
					},
				},
			},
			"style": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"background": map[string]any{"type": "string"},
					"padding":    map[string]any{"type": "string"},
					"variant":    map[string]any{"type": "string"},
				},
			},
			"tracking": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"event": map[string]any{"type": "string"},
					"params": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
				},
			},
			"meta": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
			},
		},
	}
}

var compiledSectionSchema *jsonschema.Schema = validation.MustCompile(SectionSchemaDoc())

// ParseSection runs an untrusted payload through the section schema, decodes
// it, and applies variant-level validation. Failures carry the supplied code.
func ParseSection(payload any, code string) (Section, error) {
	normalized, err := validation.ValidateSafely(compiledSectionSchema, SectionSchemaDoc(), payload, code)
	if err != nil {
		return Section{}, err
	}

	var section Section
	if err := validation.Decode(normalized, &section); err != nil {
		if errors.Is(err, ErrUnrecognizedFieldType) {
			return Section{}, &validation.Error{
				Code:   code,
				Issues: []validation.Issue{{Location: "/fields", Message: err.Error()}},
				Cause:  err,
			}
		}
		return Section{}, &validation.Error{
			Code:   code,
			Issues: []validation.Issue{{Message: err.Error()}},
			Cause:  err,
		}
	}

	section.Normalize()
	if err := section.Validate(); err != nil {
		return Section{}, &validation.Error{
			Code:   code,
			Issues: IssuesFromRules(err),
			Cause:  err,
		}
	}
	return section, nil
}

// IssuesFromRules flattens ozzo-validation error maps into schema-style
// issues with slash-separated locations.
func IssuesFromRules(err error) []validation.Issue {
	if err == nil {
		return nil
	}
	var ruleErrs ozzo.Errors
	if !errors.As(err, &ruleErrs) {
		return []validation.Issue{{Message: err.Error()}}
	}
	issues := make([]validation.Issue, 0, len(ruleErrs))
	var walk func(prefix string, errs ozzo.Errors)
	walk = func(prefix string, errs ozzo.Errors) {
		for key, nested := range errs {
			location := prefix + "/" + key
			var deeper ozzo.Errors
			if errors.As(nested, &deeper) {
				walk(location, deeper)
				continue
			}
			issues = append(issues, validation.Issue{Location: location, Message: nested.Error()})
		}
	}
	walk("", ruleErrs)
	return issues
}

func enumValues[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = string(value)
	}
	return out
}
