package themes

import (
	"errors"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
	"github.com/google/uuid"

	"github.com/tidynest/sitekit/internal/identity"
)

var (
	ErrThemeNameRequired = errors.New("themes: name required")
	ErrThemeExists       = errors.New("themes: theme already exists")
	ErrTokensInvalid     = errors.New("themes: token set invalid")
)

// RegisterThemeInput describes a theme made available for selection.
type RegisterThemeInput struct {
	Name    string
	Version string
	Tokens  TokenSet
}

// Theme pairs a registered manifest with its validated token set.
type Theme struct {
	ID      uuid.UUID
	Name    string
	Version string
	Tokens  TokenSet
}

// Service registers themes and resolves theme/variant selections through
// go-theme's registry. Token sets are validated before a theme becomes
// selectable.
type Service struct {
	registry       *gotheme.MemoryRegistry
	defaultTheme   string
	defaultVariant string

	mu     sync.RWMutex
	themes map[string]Theme
}

// ServiceOption configures the theme service.
type ServiceOption func(*Service)

// WithDefaults sets the fallback theme and variant for selection.
func WithDefaults(theme, variant string) ServiceOption {
	return func(s *Service) {
		s.defaultTheme = strings.TrimSpace(theme)
		s.defaultVariant = strings.TrimSpace(variant)
	}
}

// NewService constructs an empty theme service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		registry: gotheme.NewRegistry(),
		themes:   map[string]Theme{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the token set and makes the theme selectable.
func (s *Service) Register(input RegisterThemeInput) (Theme, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Theme{}, ErrThemeNameRequired
	}
	if err := input.Tokens.Validate(); err != nil {
		return Theme{}, errors.Join(ErrTokensInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.themes[name]; exists {
		return Theme{}, ErrThemeExists
	}

	version := strings.TrimSpace(input.Version)
	if version == "" {
		// Manifest validation requires a version; config-driven themes
		// rarely carry one.
		version = "1.0.0"
	}
	manifest := &gotheme.Manifest{
		Name:    name,
		Version: version,
	}
	if err := s.registry.Register(manifest); err != nil {
		return Theme{}, err
	}

	theme := Theme{
		ID:      identity.ThemeUUID(name),
		Name:    name,
		Version: manifest.Version,
		Tokens:  input.Tokens,
	}
	s.themes[name] = theme
	return theme, nil
}

// Get returns a registered theme by name.
func (s *Service) Get(name string) (Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	theme, ok := s.themes[strings.TrimSpace(name)]
	return theme, ok
}

// Select resolves a theme/variant pair, falling back to the configured
// defaults when either is empty.
func (s *Service) Select(name, variant string) (*gotheme.Selection, error) {
	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.defaultVariant
	}
	return selector.Select(strings.TrimSpace(name), variant)
}
