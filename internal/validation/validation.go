package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid = errors.New("schema invalid")
	ErrValidation    = errors.New("validation failed")
)

// Issue captures a single validation failure with its instance location.
type Issue struct {
	Location string
	Message  string
}

// Error surfaces validation failures with a stable machine-readable code plus
// the structured per-field issues collected from the schema engine. It is the
// only error type a request boundary should translate into a client error.
type Error struct {
	Code   string
	Issues []Issue
	Cause  error
}

func (e *Error) Error() string {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		code = "VALIDATION_FAILED"
	}
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", code, e.Cause.Error())
		}
		return code
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", code, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// NewError builds a validation error with the supplied code and issues.
func NewError(code string, issues ...Issue) *Error {
	return &Error{Code: code, Issues: issues}
}

// CodeOf extracts the machine-readable code from a validation error, or ""
// when the error is not a validation failure.
func CodeOf(err error) string {
	var verr *Error
	if errors.As(err, &verr) && verr != nil {
		return verr.Code
	}
	return ""
}

// IssuesOf extracts validation issues from an error.
func IssuesOf(err error) []Issue {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) && verr != nil {
		return verr.Issues
	}
	var schemaErr *jsonschema.ValidationError
	if errors.As(err, &schemaErr) && schemaErr != nil {
		return collectIssues(schemaErr)
	}
	return []Issue{{Message: err.Error()}}
}

// Compile turns a JSON schema document into its compiled draft 2020-12 form.
func Compile(doc map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return compiled, nil
}

// MustCompile compiles a schema document and panics on failure. Reserved for
// package-level schema literals whose validity is covered by tests.
func MustCompile(doc map[string]any) *jsonschema.Schema {
	compiled, err := Compile(doc)
	if err != nil {
		panic(err)
	}
	return compiled
}

// ValidateSafely runs the supplied payload through the compiled schema after
// filling declared defaults. On failure it returns an *Error carrying the
// caller-supplied code; on success it returns the normalized payload. This is
// the single chokepoint through which untrusted input must pass.
func ValidateSafely(schema *jsonschema.Schema, doc map[string]any, payload any, code string) (map[string]any, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: schema required", ErrSchemaInvalid)
	}

	normalized, err := toJSONValue(payload)
	if err != nil {
		return nil, &Error{Code: code, Issues: []Issue{{Message: err.Error()}}, Cause: err}
	}
	asMap, ok := normalized.(map[string]any)
	if !ok {
		issue := Issue{Message: fmt.Sprintf("expected object, got %T", payload)}
		return nil, &Error{Code: code, Issues: []Issue{issue}}
	}

	applyDefaults(doc, asMap)

	if err := schema.Validate(any(asMap)); err != nil {
		return nil, &Error{Code: code, Issues: IssuesOf(err), Cause: err}
	}
	return asMap, nil
}

// Decode maps a normalized payload onto a typed value via a JSON round-trip.
// It assumes the payload already passed ValidateSafely.
func Decode(payload map[string]any, target any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, target)
}

// toJSONValue coerces arbitrary input into the generic JSON representation the
// schema engine operates on. A round-trip keeps the engine from seeing typed
// structs or json.RawMessage values.
func toJSONValue(payload any) (any, error) {
	switch typed := payload.(type) {
	case nil:
		return map[string]any{}, nil
	case []byte:
		var out any
		if err := json.Unmarshal(typed, &out); err != nil {
			return nil, fmt.Errorf("malformed JSON payload: %v", err)
		}
		return out, nil
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("payload not serializable: %v", err)
		}
		var out any
		if err := json.Unmarshal(encoded, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// applyDefaults fills missing top-level properties that declare a "default" in
// the schema document, so downstream code can assume presence after a
// successful parse. Nested objects are defaulted one level deep, matching the
// shapes the section and page schemas declare.
func applyDefaults(doc map[string]any, payload map[string]any) {
	if doc == nil || payload == nil {
		return
	}
	properties, ok := doc["properties"].(map[string]any)
	if !ok {
		return
	}
	for name, raw := range properties {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if _, present := payload[name]; !present {
			if def, has := prop["default"]; has {
				payload[name] = cloneValue(def)
			}
			continue
		}
		if nested, ok := payload[name].(map[string]any); ok {
			applyDefaults(prop, nested)
		}
	}
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneSlice(input []any) []any {
	if input == nil {
		return nil
	}
	out := make([]any, len(input))
	for i, value := range input {
		out[i] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		return cloneSlice(typed)
	default:
		return value
	}
}
