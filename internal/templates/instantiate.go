package templates

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/validation"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// CodeTemplateNotFound is the stable code surfaced when instantiating an
// unregistered template.
const CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"

// AIGenerator produces ready-to-embed sections from free-form instructions.
// An empty result is the defined signal for "nothing generated"; it is never
// an error.
type AIGenerator interface {
	Generate(ctx context.Context, instructions string, vars map[string]string) ([]content.Section, error)
}

// InstantiatorOption configures an Instantiator.
type InstantiatorOption func(*Instantiator)

// WithAIGenerator enables AI augmentation for templates that declare a prompt.
func WithAIGenerator(generator AIGenerator) InstantiatorOption {
	return func(i *Instantiator) {
		i.ai = generator
	}
}

// WithLogger injects the logger used for instantiation diagnostics.
func WithLogger(logger interfaces.Logger) InstantiatorOption {
	return func(i *Instantiator) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// Instantiator turns registered templates into fresh, independent sections.
type Instantiator struct {
	templates *MemoryTemplateRegistry
	ai        AIGenerator
	logger    interfaces.Logger
}

// NewInstantiator wires an instantiator to its template registry.
func NewInstantiator(templates *MemoryTemplateRegistry, opts ...InstantiatorOption) *Instantiator {
	inst := &Instantiator{
		templates: templates,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_./-]+)\}`)

// Instantiate deep-copies the template's skeleton, substitutes every ${key}
// placeholder across the serialized form, and optionally merges AI-generated
// fields on top. Missing variable keys substitute to the empty string so
// partial variable sets remain usable for previews. The registered template
// is never modified.
func (i *Instantiator) Instantiate(ctx context.Context, templateID string, vars map[string]string) (content.Section, error) {
	template, err := i.templates.Get(templateID)
	if err != nil {
		return content.Section{}, validation.NewError(CodeTemplateNotFound, validation.Issue{
			Message: err.Error(),
		})
	}

	section, err := substitute(template.Section, template.Variables, vars)
	if err != nil {
		return content.Section{}, err
	}

	if template.AIPrompt == "" || i.ai == nil {
		return section, nil
	}

	generated, err := i.ai.Generate(ctx, template.AIPrompt, vars)
	if err != nil {
		// Generation is best-effort; a failing collaborator must not fail
		// the instantiation.
		i.logger.Warn("ai generation failed during template instantiation",
			"template_id", templateID,
			"error", err,
		)
		return section, nil
	}
	if len(generated) == 0 {
		return section, nil
	}

	// Generated content takes precedence over template-default values.
	first := generated[0]
	for key, field := range first.Fields {
		if field.ID == "" {
			field.ID = key
		}
		section.Fields[key] = field
	}
	return section, nil
}

// substitute performs textual substitution over the section's serialized
// form, only for templates that declare variables.
func substitute(skeleton content.Section, declared []Variable, vars map[string]string) (content.Section, error) {
	copied, err := skeleton.Clone()
	if err != nil {
		return content.Section{}, err
	}
	if len(declared) == 0 {
		return copied, nil
	}

	encoded, err := json.Marshal(copied)
	if err != nil {
		return content.Section{}, err
	}

	replaced := placeholderPattern.ReplaceAllFunc(encoded, func(match []byte) []byte {
		key := placeholderPattern.FindSubmatch(match)[1]
		return encodeJSONFragment(vars[string(key)])
	})

	var result content.Section
	if err := json.Unmarshal(replaced, &result); err != nil {
		return content.Section{}, err
	}
	return result, nil
}

// encodeJSONFragment escapes a substitution value for use inside an existing
// JSON string literal.
func encodeJSONFragment(value string) []byte {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	// Strip the surrounding quotes; the placeholder sits inside a string.
	return encoded[1 : len(encoded)-1]
}
