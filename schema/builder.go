package schema

import (
	"sort"

	"github.com/botwire/botwire/errors"
)

// Builder accumulates definitions and compiles them into a Registry.
// Declaration order does not matter; references are resolved at Build.
type Builder struct {
	entities []*EntityDef
	variants []*rawVariant
	enums    []*EnumDef
}

type rawVariant struct {
	name    string
	members []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Entity declares a named record type.
func (b *Builder) Entity(name string, fields ...Field) *Builder {
	b.entities = append(b.entities, &EntityDef{Name: name, Fields: fields})
	return b
}

// Variant declares a variant group over previously or later declared
// entities.
func (b *Builder) Variant(name string, members ...string) *Builder {
	b.variants = append(b.variants, &rawVariant{name: name, members: members})
	return b
}

// Enum declares a closed string enum: values outside the set fail decoding.
func (b *Builder) Enum(name string, values ...string) *Builder {
	b.enums = append(b.enums, &EnumDef{Name: name, Values: values})
	return b
}

// OpenEnum declares an enum that tolerates unknown values, preserving them
// verbatim.
func (b *Builder) OpenEnum(name string, values ...string) *Builder {
	b.enums = append(b.enums, &EnumDef{Name: name, Values: values, Open: true})
	return b
}

// Build validates the accumulated definitions and returns the immutable
// Registry. The returned registry shares no mutable state with the builder.
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{
		entities: make(map[string]*EntityDef, len(b.entities)),
		variants: make(map[string]*VariantDef, len(b.variants)),
		enums:    make(map[string]*EnumDef, len(b.enums)),
	}

	for _, e := range b.entities {
		if e.Name == "" {
			return nil, errors.Registration(e.Name, "entity name is empty")
		}
		if reg.Has(e.Name) {
			return nil, errors.Registration(e.Name, "duplicate definition name")
		}
		if err := indexEntity(e); err != nil {
			return nil, err
		}
		reg.entities[e.Name] = e
	}

	for _, en := range b.enums {
		if en.Name == "" {
			return nil, errors.Registration(en.Name, "enum name is empty")
		}
		if reg.Has(en.Name) {
			return nil, errors.Registration(en.Name, "duplicate definition name")
		}
		en.valueSet = make(map[string]struct{}, len(en.Values))
		for _, v := range en.Values {
			if _, dup := en.valueSet[v]; dup {
				return nil, errors.Registration(en.Name, "duplicate enum value "+v)
			}
			en.valueSet[v] = struct{}{}
		}
		reg.enums[en.Name] = en
	}

	for _, rv := range b.variants {
		if rv.name == "" {
			return nil, errors.Registration(rv.name, "variant name is empty")
		}
		if reg.Has(rv.name) {
			return nil, errors.Registration(rv.name, "duplicate definition name")
		}
		v := &VariantDef{Name: rv.name}
		if len(rv.members) == 0 {
			return nil, errors.Registration(rv.name, "variant has no members")
		}
		for _, m := range rv.members {
			member, ok := reg.entities[m]
			if !ok {
				return nil, errors.Registration(rv.name, "member "+m+" is not a declared entity")
			}
			// A member with no required fields matches every object, so
			// resolution could never be deterministic alongside siblings.
			if len(member.required) == 0 && len(rv.members) > 1 {
				return nil, errors.Registration(rv.name, "member "+m+" has no required fields")
			}
			v.Members = append(v.Members, member)
		}
		reg.variants[rv.name] = v
	}

	// All refs must resolve, including seq element refs at any depth.
	for _, e := range reg.entities {
		for i := range e.Fields {
			if err := checkRefs(reg, e.Name, e.Fields[i].Type); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func indexEntity(e *EntityDef) error {
	e.byName = make(map[string]int, len(e.Fields))
	e.consts = map[string]string{}
	for i := range e.Fields {
		f := &e.Fields[i]
		if f.Name == "" {
			return errors.Registration(e.Name, "field name is empty")
		}
		if _, dup := e.byName[f.Name]; dup {
			return errors.Registration(e.Name, "duplicate field "+f.Name)
		}
		e.byName[f.Name] = i
		if f.Const != "" {
			if f.Type.Kind != KindString {
				return errors.Registration(e.Name, "const field "+f.Name+" must be a string")
			}
			if !f.Required {
				return errors.Registration(e.Name, "const field "+f.Name+" must be required")
			}
			e.consts[f.Name] = f.Const
		}
		if f.Required {
			e.required = append(e.required, f.Name)
		}
	}
	sort.Strings(e.required)
	return nil
}

func checkRefs(reg *Registry, owner string, t Type) error {
	switch t.Kind {
	case KindSeq:
		return checkRefs(reg, owner, *t.Elem)
	case KindRef:
		if !reg.Has(t.Name) {
			return errors.Registration(owner, "unresolved reference "+t.Name)
		}
	}
	return nil
}
