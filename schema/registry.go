package schema

import "sort"

// EntityDef is a named record type with a fixed field schema.
type EntityDef struct {
	Name   string
	Fields []Field

	byName   map[string]int
	required []string
	consts   map[string]string
}

// Field returns the declared field with the given name.
func (e *EntityDef) Field(name string) (*Field, bool) {
	i, ok := e.byName[name]
	if !ok {
		return nil, false
	}
	return &e.Fields[i], true
}

// Required returns the names of required fields, sorted.
func (e *EntityDef) Required() []string {
	return e.required
}

// Consts returns the const-pinned fields as name to value.
func (e *EntityDef) Consts() map[string]string {
	return e.consts
}

// VariantDef is a set of entities occupying one structural slot,
// disambiguated by field shape rather than an explicit discriminator.
type VariantDef struct {
	Name    string
	Members []*EntityDef
}

// EnumDef is a closed or open set of string values. Open enums admit
// values the registry does not know yet, which the upstream API adds
// without notice.
type EnumDef struct {
	Name   string
	Values []string
	Open   bool

	valueSet map[string]struct{}
}

// Has reports whether value is a declared enum value.
func (e *EnumDef) Has(value string) bool {
	_, ok := e.valueSet[value]
	return ok
}

// Registry is the process-wide, read-only catalog of all known entity,
// variant group, and enum definitions. It is immutable after Build and safe
// for concurrent use; no mutation API exists.
type Registry struct {
	entities map[string]*EntityDef
	variants map[string]*VariantDef
	enums    map[string]*EnumDef
}

func (r *Registry) Entity(name string) (*EntityDef, bool) {
	e, ok := r.entities[name]
	return e, ok
}

func (r *Registry) Variant(name string) (*VariantDef, bool) {
	v, ok := r.variants[name]
	return v, ok
}

func (r *Registry) Enum(name string) (*EnumDef, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// Has reports whether any definition carries the given name.
func (r *Registry) Has(name string) bool {
	if _, ok := r.entities[name]; ok {
		return true
	}
	if _, ok := r.variants[name]; ok {
		return true
	}
	_, ok := r.enums[name]
	return ok
}

// Names returns every registered definition name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entities)+len(r.variants)+len(r.enums))
	for n := range r.entities {
		names = append(names, n)
	}
	for n := range r.variants {
		names = append(names, n)
	}
	for n := range r.enums {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
