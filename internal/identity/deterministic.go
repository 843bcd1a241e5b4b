package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the identity for a page from its slug. Generated pages get
// the same identity on every run, which keeps repeated generation idempotent.
func PageUUID(slug string) uuid.UUID {
	return UUID("sitekit:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SharedSectionUUID derives the identity for a shared-section pool entry.
func SharedSectionUUID(ref string) uuid.UUID {
	return UUID("sitekit:shared_section:" + strings.TrimSpace(ref))
}

// TemplateUUID derives the identity for a registered template.
func TemplateUUID(templateID string) uuid.UUID {
	return UUID("sitekit:template:" + strings.ToLower(strings.TrimSpace(templateID)))
}

// ThemeUUID derives the identity for a theme manifest path.
func ThemeUUID(themePath string) uuid.UUID {
	return UUID("sitekit:theme:" + strings.TrimSpace(themePath))
}
