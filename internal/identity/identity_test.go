package identity_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tidynest/sitekit/internal/identity"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := identity.UUID("sitekit:test:alpha")
	second := identity.UUID("sitekit:test:alpha")
	if first != second {
		t.Errorf("ids differ: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Error("expected non-nil id")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := identity.UUID("   "); got != uuid.Nil {
		t.Errorf("UUID(blank) = %s, want Nil", got)
	}
}

func TestPageUUIDNormalizesCase(t *testing.T) {
	lower := identity.PageUUID("/sydney/house-cleaning")
	upper := identity.PageUUID("/SYDNEY/HOUSE-CLEANING")
	if lower != upper {
		t.Errorf("case-variant slugs diverge: %s vs %s", lower, upper)
	}
}

func TestDomainsDoNotCollide(t *testing.T) {
	page := identity.PageUUID("promo")
	shared := identity.SharedSectionUUID("promo")
	template := identity.TemplateUUID("promo")
	theme := identity.ThemeUUID("promo")

	ids := map[uuid.UUID]string{}
	for id, name := range map[uuid.UUID]string{page: "page", shared: "shared", template: "template", theme: "theme"} {
		if prior, dup := ids[id]; dup {
			t.Errorf("%s collides with %s: %s", name, prior, id)
		}
		ids[id] = name
	}
}
