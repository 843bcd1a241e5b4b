package schema

// MigrationFunc transforms a payload between schema versions.
type MigrationFunc func(map[string]any) (map[string]any, error)

// MigrationStep describes a single migration hop.
type MigrationStep struct {
	From  string
	To    string
	Apply MigrationFunc
}

// Migrator manages ordered migration steps per schema slug.
type Migrator struct {
	steps map[string]map[string]MigrationStep
}

// NewMigrator constructs an empty migrator registry.
func NewMigrator() *Migrator {
	return &Migrator{steps: map[string]map[string]MigrationStep{}}
}

// Register adds a migration step for a slug.
func (m *Migrator) Register(slug, from, to string, fn MigrationFunc) error {
	if m == nil {
		return &Error{Details: "migrator not configured"}
	}
	if slug == "" || from == "" || to == "" || fn == nil {
		return &Error{Details: "migration registration invalid"}
	}
	if m.steps == nil {
		m.steps = map[string]map[string]MigrationStep{}
	}
	if m.steps[slug] == nil {
		m.steps[slug] = map[string]MigrationStep{}
	}
	m.steps[slug][from] = MigrationStep{From: from, To: to, Apply: fn}
	return nil
}

// Migrate applies registered steps until the target version is reached.
// A missing hop for the current version fails with ErrMigrationMissing.
func (m *Migrator) Migrate(slug, from, to string, payload map[string]any) (map[string]any, error) {
	if m == nil || m.steps == nil {
		return nil, &Error{Details: "migrator not configured"}
	}
	if from == to {
		return payload, nil
	}
	seen := map[string]struct{}{}
	current := from
	out := clonePayload(payload)
	for current != to {
		if _, ok := seen[current]; ok {
			return nil, &Error{Version: current, Details: "migration cycle detected", Cause: ErrMigrationCycle}
		}
		seen[current] = struct{}{}
		step, ok := m.steps[slug][current]
		if !ok || step.Apply == nil {
			return nil, &Error{Version: current, Details: "no migration registered for " + slug, Cause: ErrMigrationMissing}
		}
		migrated, err := step.Apply(out)
		if err != nil {
			return nil, err
		}
		out = migrated
		current = step.To
	}
	return out, nil
}

func clonePayload(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = clonePayload(typed)
		case []any:
			cloned := make([]any, len(typed))
			for i, item := range typed {
				if nested, ok := item.(map[string]any); ok {
					cloned[i] = clonePayload(nested)
					continue
				}
				cloned[i] = item
			}
			out[key] = cloned
		default:
			out[key] = value
		}
	}
	return out
}
