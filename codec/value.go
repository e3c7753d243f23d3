package codec

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

type ValueKind uint8

const (
	ValBool ValueKind = iota
	ValInt
	ValFloat
	ValString
	ValSeq
	ValEntity
	ValVariant
	ValEnum
)

var valueKindNames = [...]string{
	ValBool:    "bool",
	ValInt:     "int",
	ValFloat:   "float",
	ValString:  "string",
	ValSeq:     "seq",
	ValEntity:  "entity",
	ValVariant: "variant",
	ValEnum:    "enum",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is the immutable output tree of one decode pass. It owns all
// nested values; the source format is tree-shaped, so there is no sharing
// and no cycles. Callers must not modify the maps and slices it exposes.
type Value struct {
	typ     string
	member  string
	s       string
	fields  map[string]*Value
	unknown map[string]any
	seq     []*Value
	inner   *Value
	i       int64
	f       float64
	b       bool
	kind    ValueKind
}

func (v *Value) Kind() ValueKind { return v.kind }

// TypeName returns the registry name for entity, variant, and enum values,
// empty for scalars and sequences.
func (v *Value) TypeName() string { return v.typ }

func (v *Value) Bool() bool     { return v.b }
func (v *Value) Int() int64     { return v.i }
func (v *Value) Float() float64 { return v.f }

// Str returns the string payload of string and enum values.
func (v *Value) Str() string { return v.s }

func (v *Value) Len() int {
	return len(v.seq)
}

func (v *Value) At(i int) *Value {
	return v.seq[i]
}

// Field returns the decoded field with the given name. The second result
// is false for fields that were absent in the input; absence is distinct
// from any decoded value. On variant values Field reads through to the
// resolved member.
func (v *Value) Field(name string) (*Value, bool) {
	if v.kind == ValVariant {
		return v.inner.Field(name)
	}
	f, ok := v.fields[name]
	return f, ok
}

// FieldNames returns the names of present fields, sorted.
func (v *Value) FieldNames() []string {
	if v.kind == ValVariant {
		return v.inner.FieldNames()
	}
	names := make([]string, 0, len(v.fields))
	for n := range v.fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Unknown returns fields present in the input but not declared in the
// schema, preserved for forward compatibility. Nil when there were none.
// The returned map must not be modified.
func (v *Value) Unknown() map[string]any {
	if v.kind == ValVariant {
		return v.inner.Unknown()
	}
	return v.unknown
}

// Member returns the resolved member entity name of a variant value.
func (v *Value) Member() string { return v.member }

// MemberValue returns the resolved member entity value of a variant value.
func (v *Value) MemberValue() *Value { return v.inner }

// Equal reports deep equality of two value trees.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind || v.typ != o.typ || v.member != o.member {
		return false
	}
	switch v.kind {
	case ValBool:
		return v.b == o.b
	case ValInt:
		return v.i == o.i
	case ValFloat:
		return v.f == o.f
	case ValString, ValEnum:
		return v.s == o.s
	case ValSeq:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case ValEntity:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for n, f := range v.fields {
			of, ok := o.fields[n]
			if !ok || !f.Equal(of) {
				return false
			}
		}
		return equalUnknown(v.unknown, o.unknown)
	case ValVariant:
		return v.inner.Equal(o.inner)
	}
	return false
}

func equalUnknown(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// String renders a compact single-line form, for logs and tests.
func (v *Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v *Value) writeTo(b *strings.Builder) {
	switch v.kind {
	case ValBool:
		b.WriteString(strconv.FormatBool(v.b))
	case ValInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case ValFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case ValString, ValEnum:
		b.WriteString(strconv.Quote(v.s))
	case ValSeq:
		b.WriteByte('[')
		for i, e := range v.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			e.writeTo(b)
		}
		b.WriteByte(']')
	case ValEntity:
		b.WriteString(v.typ)
		b.WriteByte('{')
		for i, n := range v.FieldNames() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteString(": ")
			v.fields[n].writeTo(b)
		}
		if len(v.unknown) > 0 {
			fmt.Fprintf(b, ", +%d unknown", len(v.unknown))
		}
		b.WriteByte('}')
	case ValVariant:
		b.WriteString(v.typ)
		b.WriteByte('/')
		v.inner.writeTo(b)
	}
}
