package templates

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryTemplateRegistry is the in-memory id-keyed template store. Templates
// are registered once and read many times; instantiation never writes back.
// Entries are cloned on read and write so no caller holds a reference into
// the stored skeleton.
type MemoryTemplateRegistry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewMemoryTemplateRegistry creates an empty template registry.
func NewMemoryTemplateRegistry() *MemoryTemplateRegistry {
	return &MemoryTemplateRegistry{templates: make(map[string]Template)}
}

// Register inserts a validated template, failing when the id exists.
func (m *MemoryTemplateRegistry) Register(template Template) error {
	id := strings.TrimSpace(template.ID)
	if id == "" {
		return fmt.Errorf("templates: id required")
	}
	if err := template.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	copied, err := cloneTemplate(template)
	if err != nil {
		return fmt.Errorf("templates: template not storable: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.templates[id]; exists {
		return &AlreadyRegisteredError{Key: id}
	}
	m.templates[id] = copied
	return nil
}

// Get retrieves a template by id, returning NotFoundError when absent.
func (m *MemoryTemplateRegistry) Get(id string) (Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	template, ok := m.templates[id]
	if !ok {
		return Template{}, &NotFoundError{Key: id}
	}
	return cloneTemplate(template)
}

// Has reports id presence without erroring.
func (m *MemoryTemplateRegistry) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.templates[id]
	return ok
}

// List returns a snapshot of all templates sorted by id.
func (m *MemoryTemplateRegistry) List() []Template {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Template, 0, len(m.templates))
	for _, template := range m.templates {
		copied, err := cloneTemplate(template)
		if err != nil {
			continue
		}
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// cloneTemplate deep-copies a template via a JSON round-trip. Templates are
// fully JSON-representable, skeleton included.
func cloneTemplate(template Template) (Template, error) {
	encoded, err := json.Marshal(template)
	if err != nil {
		return Template{}, err
	}
	var copied Template
	if err := json.Unmarshal(encoded, &copied); err != nil {
		return Template{}, err
	}
	return copied, nil
}
