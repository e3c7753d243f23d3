package schema

// Type describes the semantic type of a field value. Scalar kinds stand
// alone; KindSeq carries the element type; KindRef points at a named
// entity, variant group, or enum resolved when the registry is built.
type Type struct {
	Elem *Type
	Name string
	Kind Kind
}

func Bool() Type   { return Type{Kind: KindBool} }
func Int() Type    { return Type{Kind: KindInt} }
func Float() Type  { return Type{Kind: KindFloat} }
func String() Type { return Type{Kind: KindString} }

// Seq is an ordered sequence of elem values.
func Seq(elem Type) Type {
	e := elem
	return Type{Kind: KindSeq, Elem: &e}
}

// Ref names an entity, variant group, or enum declared in the same registry.
func Ref(name string) Type {
	return Type{Kind: KindRef, Name: name}
}

func (t Type) String() string {
	switch t.Kind {
	case KindSeq:
		return "seq<" + t.Elem.String() + ">"
	case KindRef:
		return t.Name
	default:
		return t.Kind.String()
	}
}

// Field is one declared field of an entity. Required fields must be present
// in the input document; optional fields decode to the absent state when
// missing. A non-empty Const pins the field to one exact string value,
// which is how wire tags ("type": "private") participate in structural
// variant resolution.
type Field struct {
	Name     string
	Type     Type
	Const    string
	Required bool
}

// F declares a required field.
func F(name string, t Type) Field {
	return Field{Name: name, Type: t, Required: true}
}

// Opt declares an optional field.
func Opt(name string, t Type) Field {
	return Field{Name: name, Type: t}
}

// Const declares a required string field that must equal value.
func Const(name, value string) Field {
	return Field{Name: name, Type: String(), Const: value, Required: true}
}
