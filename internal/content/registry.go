package content

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NotFoundError represents missing entries from registry lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// AlreadyRegisteredError rejects duplicate registrations. Registries have no
// update-in-place operation, so a duplicate key is a caller bug rather than a
// benign overwrite.
type AlreadyRegisteredError struct {
	Resource string
	Key      string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Resource, e.Key)
}

// TypeDefinition describes a renderable section type: the component metadata
// the front end needs plus an optional payload schema for its fields.
type TypeDefinition struct {
	Type        SectionType
	Label       string
	Description string
	Category    string
	Schema      map[string]any
}

// TypeRegistry is the append-once store of renderable section types. A
// section type must be registered here before any section of that type can be
// constructed.
type TypeRegistry struct {
	mu          sync.RWMutex
	definitions map[SectionType]TypeDefinition
}

// NewTypeRegistry creates an empty section-type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{definitions: make(map[SectionType]TypeDefinition)}
}

// Register inserts a definition, failing when the type is already present.
func (r *TypeRegistry) Register(def TypeDefinition) error {
	if strings.TrimSpace(string(def.Type)) == "" {
		return fmt.Errorf("content: section type required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Type]; exists {
		return &AlreadyRegisteredError{Resource: "section_type", Key: string(def.Type)}
	}
	r.definitions[def.Type] = def
	return nil
}

// Get retrieves a definition, returning NotFoundError when absent.
func (r *TypeRegistry) Get(t SectionType) (TypeDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[t]
	if !ok {
		return TypeDefinition{}, &NotFoundError{Resource: "section_type", Key: string(t)}
	}
	return def, nil
}

// Has reports presence without erroring.
func (r *TypeRegistry) Has(t SectionType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.definitions[t]
	return ok
}

// List returns a snapshot of all definitions sorted by type.
func (r *TypeRegistry) List() []TypeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TypeDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// RegisterCatalog registers default definitions for the full section catalog.
// Intended for hosts that render every stock section type.
func RegisterCatalog(registry *TypeRegistry) error {
	for _, t := range SectionTypes() {
		err := registry.Register(TypeDefinition{
			Type:  t,
			Label: string(t),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
