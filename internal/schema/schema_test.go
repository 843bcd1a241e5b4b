package schema_test

import (
	"errors"
	"testing"

	"github.com/tidynest/sitekit/internal/schema"
)

func TestParseVersion(t *testing.T) {
	version, err := schema.ParseVersion("hero-section@v1.2.3")
	if err != nil {
		t.Fatalf("ParseVersion() error = %v", err)
	}
	if version.Slug != "hero-section" || version.SemVer != "v1.2.3" {
		t.Errorf("version = %+v", version)
	}
	if version.String() != "hero-section@v1.2.3" {
		t.Errorf("String() = %q", version.String())
	}
}

func TestParseVersionToleratesMissingPrefix(t *testing.T) {
	version, err := schema.ParseVersion("faq@2.0.0")
	if err != nil {
		t.Fatalf("ParseVersion() error = %v", err)
	}
	if version.SemVer != "v2.0.0" {
		t.Errorf("semver = %q", version.SemVer)
	}
}

func TestParseVersionRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "hero", "hero@", "@v1.0.0", "hero@v1.0", "hero@vx.y.z"} {
		_, err := schema.ParseVersion(bad)
		if err == nil {
			t.Errorf("ParseVersion(%q) accepted", bad)
			continue
		}
		if !errors.Is(err, schema.ErrInvalidSchemaVersion) {
			t.Errorf("ParseVersion(%q) error = %v", bad, err)
		}
	}
}

func TestMigratorAppliesChain(t *testing.T) {
	migrator := schema.NewMigrator()

	if err := migrator.Register("hero", "v1.0.0", "v1.1.0", func(payload map[string]any) (map[string]any, error) {
		payload["subtitle"] = ""
		return payload, nil
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := migrator.Register("hero", "v1.1.0", "v2.0.0", func(payload map[string]any) (map[string]any, error) {
		payload["layout"] = "wide"
		return payload, nil
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	input := map[string]any{"headline": "Hi"}
	out, err := migrator.Migrate("hero", "v1.0.0", "v2.0.0", input)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if out["subtitle"] != "" || out["layout"] != "wide" {
		t.Errorf("migrated = %v", out)
	}
	if _, touched := input["layout"]; touched {
		t.Error("input payload mutated")
	}
}

func TestMigratorMissingHop(t *testing.T) {
	migrator := schema.NewMigrator()

	_, err := migrator.Migrate("hero", "v1.0.0", "v2.0.0", map[string]any{})
	if !errors.Is(err, schema.ErrMigrationMissing) {
		t.Errorf("error = %v, want ErrMigrationMissing", err)
	}
}

func TestMigratorDetectsCycle(t *testing.T) {
	migrator := schema.NewMigrator()

	identityFn := func(payload map[string]any) (map[string]any, error) { return payload, nil }
	if err := migrator.Register("hero", "v1.0.0", "v1.1.0", identityFn); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := migrator.Register("hero", "v1.1.0", "v1.0.0", identityFn); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := migrator.Migrate("hero", "v1.0.0", "v2.0.0", map[string]any{})
	if !errors.Is(err, schema.ErrMigrationCycle) {
		t.Errorf("error = %v, want ErrMigrationCycle", err)
	}
}

func TestMigrateSameVersionIsNoOp(t *testing.T) {
	migrator := schema.NewMigrator()

	payload := map[string]any{"headline": "Hi"}
	out, err := migrator.Migrate("hero", "v1.0.0", "v1.0.0", payload)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if out["headline"] != "Hi" {
		t.Errorf("out = %v", out)
	}
}
