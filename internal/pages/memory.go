package pages

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NotFoundError represents missing pages from registry lookups. It is a
// legitimate not-yet-created state, unlike AlreadyRegisteredError which is
// typically a caller bug.
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

// AlreadyRegisteredError rejects duplicate slugs. Registration is
// append-once: changing a live page must be modelled explicitly, never as a
// silent overwrite.
type AlreadyRegisteredError struct {
	Resource string
	Key      string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Resource, e.Key)
}

// MemoryPageRegistry is the in-memory slug-keyed page store. Pages are cloned
// on read and write so callers can never corrupt registered content through a
// retained reference.
type MemoryPageRegistry struct {
	mu    sync.RWMutex
	pages map[string]Page
}

// NewMemoryPageRegistry creates an empty page registry.
func NewMemoryPageRegistry() *MemoryPageRegistry {
	return &MemoryPageRegistry{pages: make(map[string]Page)}
}

// Register inserts a page keyed by slug, failing when the slug exists.
func (m *MemoryPageRegistry) Register(page Page) error {
	slug := strings.TrimSpace(page.Slug)
	if slug == "" {
		return fmt.Errorf("pages: slug required")
	}

	copied, err := clonePage(page)
	if err != nil {
		return fmt.Errorf("pages: page not storable: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.pages[slug]; exists {
		return &AlreadyRegisteredError{Resource: "page", Key: slug}
	}
	m.pages[slug] = copied
	return nil
}

// Get retrieves a page by slug, returning NotFoundError when absent.
func (m *MemoryPageRegistry) Get(slug string) (Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page, ok := m.pages[slug]
	if !ok {
		return Page{}, &NotFoundError{Resource: "page", Key: slug}
	}
	return clonePage(page)
}

// Has reports slug presence without erroring.
func (m *MemoryPageRegistry) Has(slug string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pages[slug]
	return ok
}

// List returns a snapshot of all pages sorted by slug.
func (m *MemoryPageRegistry) List() []Page {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Page, 0, len(m.pages))
	for _, page := range m.pages {
		copied, err := clonePage(page)
		if err != nil {
			continue
		}
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Len reports the number of registered pages.
func (m *MemoryPageRegistry) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}

// clonePage deep-copies a page via a JSON round-trip. Pages are fully
// JSON-representable, so this preserves every field including section maps.
func clonePage(page Page) (Page, error) {
	encoded, err := json.Marshal(page)
	if err != nil {
		return Page{}, err
	}
	var copied Page
	if err := json.Unmarshal(encoded, &copied); err != nil {
		return Page{}, err
	}
	return copied, nil
}
