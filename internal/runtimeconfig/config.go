package runtimeconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidynest/sitekit/internal/pages"
	"github.com/tidynest/sitekit/internal/themes"
)

var ErrAdvancedConfigRequiresFeature = errors.New("sitekit config: advanced config requires enableAdvancedSEO or enableAIContent")
var ErrThemesFeatureRequired = errors.New("sitekit config: themes feature must be enabled to configure a theme")
var ErrRouteRulePatternRequired = errors.New("sitekit config: route rule pattern is required")
var ErrRouteRuleTypeInvalid = errors.New("sitekit config: route rule type is invalid")
var ErrRouteRuleSourceRequired = errors.New("sitekit config: dynamic route rules require a generateFrom source")
var ErrSharedSectionIDRequired = errors.New("sitekit config: shared section id is required")
var ErrLoggingProviderUnknown = errors.New("sitekit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("sitekit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("sitekit config: logging format is invalid")

// Features toggles subsystem behaviour. Flags default to off; hosts opt in.
type Features struct {
	EnableAdvancedSEO     bool `json:"enableAdvancedSEO"`
	EnableAIContent       bool `json:"enableAIContent"`
	EnableProgrammaticSEO bool `json:"enableProgrammaticSEO"`
	EnableSharedSections  bool `json:"enableSharedSections"`
	EnableThemes          bool `json:"enableThemes"`
}

// RouteRuleType distinguishes literal routes from generated ones.
type RouteRuleType string

const (
	RouteStatic  RouteRuleType = "static"
	RouteDynamic RouteRuleType = "dynamic"
)

// GenerateFrom names the data source a dynamic rule expands over.
type GenerateFrom string

const (
	FromLocations   GenerateFrom = "locations"
	FromServices    GenerateFrom = "services"
	FromClusters    GenerateFrom = "clusters"
	FromAIGenerated GenerateFrom = "aiGenerated"
)

// RouteRule drives programmatic page generation.
type RouteRule struct {
	Pattern        string        `json:"pattern"`
	Type           RouteRuleType `json:"type"`
	GenerateFrom   GenerateFrom  `json:"generateFrom,omitempty"`
	AIInstructions string        `json:"aiInstructions,omitempty"`
}

// Validate checks a single rule.
func (r RouteRule) Validate() error {
	if strings.TrimSpace(r.Pattern) == "" {
		return ErrRouteRulePatternRequired
	}
	switch r.Type {
	case RouteStatic:
		return nil
	case RouteDynamic:
		switch r.GenerateFrom {
		case FromLocations, FromServices, FromClusters, FromAIGenerated:
			return nil
		default:
			return fmt.Errorf("%w: pattern %s", ErrRouteRuleSourceRequired, r.Pattern)
		}
	default:
		return fmt.Errorf("%w: %q", ErrRouteRuleTypeInvalid, r.Type)
	}
}

// ProgrammaticSEO gates and configures batch page generation. The Enabled
// flag is a second, independent kill switch next to the feature flag.
type ProgrammaticSEO struct {
	Enabled    bool        `json:"enabled"`
	RouteRules []RouteRule `json:"routeRules,omitempty"`
}

// AIContent gates AI-driven content generation.
type AIContent struct {
	Enabled     bool `json:"enabled"`
	MaxSections int  `json:"maxSections,omitempty"`
}

// Advanced aggregates the SEO/AI configuration surface. Its presence is only
// legal when at least one of the advanced feature flags is on.
type Advanced struct {
	ProgrammaticSEO ProgrammaticSEO        `json:"programmaticSEO"`
	AIContent       AIContent              `json:"aiContent"`
	SharedSections  []pages.SharedSection  `json:"sharedSections,omitempty"`
	Clusters        []pages.ContentCluster `json:"clusters,omitempty"`
}

func (a Advanced) isZero() bool {
	return !a.ProgrammaticSEO.Enabled &&
		len(a.ProgrammaticSEO.RouteRules) == 0 &&
		!a.AIContent.Enabled &&
		a.AIContent.MaxSections == 0 &&
		len(a.SharedSections) == 0 &&
		len(a.Clusters) == 0
}

// ThemeSettings names the active theme and carries its validated tokens.
type ThemeSettings struct {
	Name    string          `json:"name"`
	Version string          `json:"version,omitempty"`
	Variant string          `json:"variant,omitempty"`
	Tokens  themes.TokenSet `json:"tokens"`
}

// Logging configures the logger provider wired by the composition root.
type Logging struct {
	Provider string `json:"provider,omitempty"`
	Level    string `json:"level,omitempty"`
	Format   string `json:"format,omitempty"`
}

// Config is the application configuration assembled once at process start.
type Config struct {
	Features Features       `json:"featureFlags"`
	Theme    *ThemeSettings `json:"theme,omitempty"`
	Advanced *Advanced      `json:"advancedConfig,omitempty"`
	Logging  Logging        `json:"logging,omitempty"`
}

// DefaultConfig returns a conservative baseline with every gate closed.
func DefaultConfig() Config {
	return Config{
		Features: Features{},
		Logging: Logging{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks, including the cross-field
// refinement over the whole object: advanced configuration may be present
// only when an advanced feature flag justifies it.
func (cfg Config) Validate() error {
	if cfg.Advanced != nil && !cfg.Advanced.isZero() {
		if !cfg.Features.EnableAdvancedSEO && !cfg.Features.EnableAIContent {
			return ErrAdvancedConfigRequiresFeature
		}
	}
	if cfg.Theme != nil && !cfg.Features.EnableThemes {
		return ErrThemesFeatureRequired
	}
	if cfg.Theme != nil {
		if err := cfg.Theme.Tokens.Validate(); err != nil {
			return err
		}
	}
	if cfg.Advanced != nil {
		for _, rule := range cfg.Advanced.ProgrammaticSEO.RouteRules {
			if err := rule.Validate(); err != nil {
				return err
			}
		}
		for _, shared := range cfg.Advanced.SharedSections {
			if strings.TrimSpace(shared.ID) == "" {
				return ErrSharedSectionIDRequired
			}
		}
		for _, cluster := range cfg.Advanced.Clusters {
			if err := cluster.Validate(); err != nil {
				return err
			}
		}
	}
	if provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)); provider != "" {
		switch provider {
		case "console", "gologger", "noop":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
	}
	if level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level)); level != "" {
		switch level {
		case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
	}
	if format := strings.ToLower(strings.TrimSpace(cfg.Logging.Format)); format != "" {
		switch format {
		case "json", "console", "pretty":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Snapshot is the frozen, process-wide view of a validated Config. All
// accessors return copies, so no code path can mutate the configuration
// after construction.
type Snapshot struct {
	cfg Config
}

// NewSnapshot validates the configuration and freezes it. This is the only
// constructor; a Snapshot is built exactly once per composition root.
func NewSnapshot(cfg Config) (*Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	frozen, err := cloneConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Snapshot{cfg: frozen}, nil
}

// Features returns the feature flags by value.
func (s *Snapshot) Features() Features {
	return s.cfg.Features
}

// Logging returns the logging configuration by value.
func (s *Snapshot) Logging() Logging {
	return s.cfg.Logging
}

// Theme returns a copy of the theme settings, or false when unset.
func (s *Snapshot) Theme() (ThemeSettings, bool) {
	if s.cfg.Theme == nil {
		return ThemeSettings{}, false
	}
	copied, err := cloneConfig(s.cfg)
	if err != nil || copied.Theme == nil {
		return ThemeSettings{}, false
	}
	return *copied.Theme, true
}

// Advanced returns a deep copy of the advanced configuration. Absent
// configuration yields a zero value whose gates are all closed.
func (s *Snapshot) Advanced() Advanced {
	if s.cfg.Advanced == nil {
		return Advanced{}
	}
	copied, err := cloneConfig(s.cfg)
	if err != nil || copied.Advanced == nil {
		return Advanced{}
	}
	return *copied.Advanced
}

// SharedSections returns a copy of the shared-section pool.
func (s *Snapshot) SharedSections() []pages.SharedSection {
	return s.Advanced().SharedSections
}

// RouteRules returns a copy of the configured route rules.
func (s *Snapshot) RouteRules() []RouteRule {
	return s.Advanced().ProgrammaticSEO.RouteRules
}

// cloneConfig deep-copies a config via a JSON round-trip; every config field
// is JSON-representable by construction.
func cloneConfig(cfg Config) (Config, error) {
	encoded, err := json.Marshal(cfg)
	if err != nil {
		return Config{}, err
	}
	var copied Config
	if err := json.Unmarshal(encoded, &copied); err != nil {
		return Config{}, err
	}
	return copied, nil
}
