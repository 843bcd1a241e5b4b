package pages

import (
	"time"

	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// ValidateOptions controls the optional third validation step.
type ValidateOptions struct {
	ResolveShared bool
}

// ValidationResult carries the validated (and optionally resolved) page plus
// the resolution report when shared-section resolution ran.
type ValidationResult struct {
	Page       Page
	Resolution *ResolutionReport
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorClock overrides the timestamp source (primarily for tests).
func WithValidatorClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithValidatorLogger injects the logger used for validation diagnostics.
func WithValidatorLogger(logger interfaces.Logger) ValidatorOption {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator is the page-level entry point of the validation engine. Every
// untrusted page payload must pass through ValidatePage before it may be
// registered; a failed validation never mutates any registry.
type Validator struct {
	resolver *Resolver
	now      func() time.Time
	logger   interfaces.Logger
}

// NewValidator builds a validator. The resolver may be nil when the host
// never requests shared-section resolution.
func NewValidator(resolver *Resolver, opts ...ValidatorOption) *Validator {
	v := &Validator{
		resolver: resolver,
		now:      time.Now,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidatePage runs the three-step validation process:
//
//  1. top-level structure, failing with INVALID_PAGE_STRUCTURE (or the
//     dedicated INVALID_PAGE_TYPE / INVALID_SLUG codes) before any section
//     is considered;
//  2. every section independently, failing with INVALID_SECTION_{i} so
//     multi-section pages get actionable diagnostics;
//  3. optionally, shared-section resolution via the configured resolver.
//
// Each step is a hard gate: there is no partial success and no auto-repair.
func (v *Validator) ValidatePage(payload any, opts ValidateOptions) (*ValidationResult, error) {
	envelope, err := parseEnvelope(payload, v.now)
	if err != nil {
		return nil, err
	}

	sections := make([]content.Section, 0, len(envelope.Sections))
	for i, raw := range envelope.Sections {
		section, err := content.ParseSection([]byte(raw), SectionCode(i))
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	page, err := envelope.assemble(sections)
	if err != nil {
		return nil, err
	}

	if !opts.ResolveShared || v.resolver == nil {
		return &ValidationResult{Page: page}, nil
	}

	resolved, report, err := v.resolver.Resolve(page)
	if err != nil {
		return nil, err
	}
	if len(report.Skipped) > 0 {
		v.logger.Warn("page validated with degraded resolution",
			"page_slug", page.Slug,
			"skipped_refs", len(report.Skipped),
		)
	}
	return &ValidationResult{Page: resolved, Resolution: report}, nil
}
