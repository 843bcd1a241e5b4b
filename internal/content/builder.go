package content

// Builder constructs sections gated by the section-type registry. Sections of
// unregistered types cannot be built, which keeps "forgot to register a
// plugin" failures distinct from schema-enum violations.
type Builder struct {
	types *TypeRegistry
}

// NewBuilder wires a builder to its registry.
func NewBuilder(types *TypeRegistry) *Builder {
	return &Builder{types: types}
}

// NewSection builds and validates a section of the given type. An
// unregistered type fails with the registry's NotFoundError; a structurally
// invalid field set fails with the field's validation errors.
func (b *Builder) NewSection(t SectionType, fields map[string]Field) (Section, error) {
	if b == nil || b.types == nil {
		return Section{}, &NotFoundError{Resource: "section_type", Key: string(t)}
	}
	if _, err := b.types.Get(t); err != nil {
		return Section{}, err
	}

	if fields == nil {
		fields = map[string]Field{}
	}
	section := Section{
		Type:   t,
		Fields: fields,
	}
	section.Normalize()
	if err := section.Validate(); err != nil {
		return Section{}, err
	}
	return section, nil
}
