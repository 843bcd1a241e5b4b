package templates

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tidynest/sitekit/internal/content"
)

// VariableType enumerates the input widgets a template variable can render.
type VariableType string

const (
	VariableText   VariableType = "text"
	VariableSelect VariableType = "select"
	VariableNumber VariableType = "number"
)

// Variable declares a named substitution slot in a template skeleton.
type Variable struct {
	Key          string       `json:"key"`
	Label        string       `json:"label"`
	Description  string       `json:"description,omitempty"`
	Type         VariableType `json:"type"`
	Options      []string     `json:"options,omitempty"`
	DefaultValue string       `json:"defaultValue,omitempty"`
}

// Template is a reusable section skeleton whose string values may contain
// ${variable} placeholders. The template itself is never mutated by
// instantiation.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Section     content.Section `json:"section"`
	Variables   []Variable      `json:"variables,omitempty"`
	AIPrompt    string          `json:"aiPrompt,omitempty"`
	Category    string          `json:"category,omitempty"`
	Tags        []string        `json:"tags"`
}

// Validate checks template invariants including the embedded skeleton.
func (t Template) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(t.ID) == "" {
		errs["id"] = validation.NewError("sitekit.templates.id_required", "id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		errs["name"] = validation.NewError("sitekit.templates.name_required", "name is required")
	}
	if err := t.Section.Validate(); err != nil {
		errs["section"] = err
	}
	seen := map[string]struct{}{}
	for i, variable := range t.Variables {
		key := strings.TrimSpace(variable.Key)
		if key == "" {
			errs[fmt.Sprintf("variables.%d", i)] = validation.NewError("sitekit.templates.variable_key_required", "variable key is required")
			continue
		}
		if _, dup := seen[key]; dup {
			errs[fmt.Sprintf("variables.%d", i)] = validation.NewError("sitekit.templates.variable_key_duplicate", "variable key is duplicated")
		}
		seen[key] = struct{}{}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NotFoundError represents missing templates from registry lookups.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Key)
}

// AlreadyRegisteredError rejects duplicate template ids.
type AlreadyRegisteredError struct {
	Key string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("template %q already registered", e.Key)
}

// ErrTemplateInvalid is wrapped around validation failures at registration.
var ErrTemplateInvalid = errors.New("templates: template invalid")
