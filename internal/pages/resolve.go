package pages

import (
	"github.com/tidynest/sitekit/internal/content"
	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/internal/validation"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

// SkipReason classifies why a shared-section ref was not resolved.
type SkipReason string

const (
	SkipNotFound       SkipReason = "not_found"
	SkipInvalidPayload SkipReason = "invalid_payload"
	SkipDuplicateRef   SkipReason = "duplicate_ref"
)

// SkippedRef records one degraded resolution, including the schema issues
// when the pool entry's payload was malformed.
type SkippedRef struct {
	Ref    string
	Reason SkipReason
	Issues []validation.Issue
}

// ResolutionReport is the structured account of a resolution pass. Callers
// and tests can assert on degraded resolutions instead of scraping logs; the
// operational escalation policy for skips is deliberately left to the host.
type ResolutionReport struct {
	Resolved []string
	Skipped  []SkippedRef
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger injects the logger used for skip diagnostics.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver expands shared-section references into page section sequences.
// The pool and the feature gate are read through functions because both live
// in host configuration that is assembled after the resolver.
type Resolver struct {
	enabled func() bool
	pool    func() []SharedSection
	logger  interfaces.Logger
}

// NewResolver wires a resolver to its feature gate and shared pool.
func NewResolver(enabled func() bool, pool func() []SharedSection, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		enabled: enabled,
		pool:    pool,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve appends a validated copy of each referenced shared section to the
// page, in ref-list order. Resolution is a pure transform: the input page is
// never mutated and the returned page is an independent value.
//
// Degraded inputs do not abort the pass. A dangling ref, a malformed pool
// payload, and a duplicate ref are each skipped with a report entry, because
// the shared pool is process-wide mutable state and a single bad entry must
// not take an entire page offline.
func (r *Resolver) Resolve(page Page) (Page, *ResolutionReport, error) {
	report := &ResolutionReport{}

	resolved, err := clonePage(page)
	if err != nil {
		return Page{}, nil, err
	}

	if r == nil || r.enabled == nil || !r.enabled() {
		return resolved, report, nil
	}
	pool := []SharedSection{}
	if r.pool != nil {
		pool = r.pool()
	}
	if len(pool) == 0 || len(resolved.SharedSectionRefs) == 0 {
		return resolved, report, nil
	}

	byID := make(map[string]SharedSection, len(pool))
	for _, shared := range pool {
		if _, exists := byID[shared.ID]; exists {
			continue
		}
		byID[shared.ID] = shared
	}

	seen := map[string]struct{}{}
	for _, ref := range resolved.SharedSectionRefs {
		logger := logging.WithResolutionContext(r.logger, resolved.Slug, ref)

		if _, dup := seen[ref]; dup {
			logger.Warn("duplicate shared-section ref skipped")
			report.Skipped = append(report.Skipped, SkippedRef{Ref: ref, Reason: SkipDuplicateRef})
			continue
		}
		seen[ref] = struct{}{}

		shared, ok := byID[ref]
		if !ok {
			logger.Warn("shared-section ref not found in pool")
			report.Skipped = append(report.Skipped, SkippedRef{Ref: ref, Reason: SkipNotFound})
			continue
		}

		section, err := content.ParseSection(shared.Section, CodeInvalidSharedSection)
		if err != nil {
			logger.Error("shared section failed schema validation", "error", err)
			report.Skipped = append(report.Skipped, SkippedRef{
				Ref:    ref,
				Reason: SkipInvalidPayload,
				Issues: validation.IssuesOf(err),
			})
			continue
		}

		resolved.Sections = append(resolved.Sections, section)
		report.Resolved = append(report.Resolved, ref)
	}

	return resolved, report, nil
}
