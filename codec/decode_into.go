package codec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/botwire/botwire/errors"
)

// DecodeInto decodes doc against the named definition and assigns the
// result into target, which must be a non-nil pointer to a struct (for
// entities and variant groups) or to a scalar (for enums). Struct fields
// are matched by `tg` tag first, then by snake_case of the Go name, then
// case-insensitively. Fields absent in the input keep their zero value;
// pointer-typed struct fields are allocated only when the input field is
// present.
func (d *Decoder) DecodeInto(doc any, typeName string, target any) error {
	v, err := d.Decode(doc, typeName)
	if err != nil {
		return err
	}
	return AssignInto(v, target)
}

// AssignInto copies a decoded value into a Go target. See DecodeInto for
// the matching rules.
func AssignInto(v *Value, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("target must be a non-nil pointer, got %T", target).
			Build()
	}
	return assignValue(v, rv.Elem(), nil)
}

func assignValue(v *Value, dst reflect.Value, path []string) error {
	// Allocate through pointers so optional struct fields come back non-nil
	// exactly when the input carried them.
	for dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		dst.Set(reflect.ValueOf(nativeValue(v)))
		return nil
	}

	switch v.kind {
	case ValBool:
		if dst.Kind() != reflect.Bool {
			return assignMismatch(path, "bool", dst.Type())
		}
		dst.SetBool(v.b)
		return nil

	case ValInt:
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if dst.OverflowInt(v.i) {
				return errors.IntegerOutOfRange(errors.PhaseDecode, path, v.i)
			}
			dst.SetInt(v.i)
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.i < 0 || dst.OverflowUint(uint64(v.i)) {
				return errors.IntegerOutOfRange(errors.PhaseDecode, path, v.i)
			}
			dst.SetUint(uint64(v.i))
			return nil
		case reflect.Float32, reflect.Float64:
			dst.SetFloat(float64(v.i))
			return nil
		}
		return assignMismatch(path, "integer", dst.Type())

	case ValFloat:
		switch dst.Kind() {
		case reflect.Float32, reflect.Float64:
			dst.SetFloat(v.f)
			return nil
		}
		return assignMismatch(path, "number", dst.Type())

	case ValString, ValEnum:
		if dst.Kind() != reflect.String {
			return assignMismatch(path, "string", dst.Type())
		}
		dst.SetString(v.s)
		return nil

	case ValSeq:
		if dst.Kind() != reflect.Slice {
			return assignMismatch(path, "array", dst.Type())
		}
		out := reflect.MakeSlice(dst.Type(), len(v.seq), len(v.seq))
		for i, item := range v.seq {
			if err := assignValue(item, out.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil

	case ValEntity:
		if dst.Kind() != reflect.Struct {
			return assignMismatch(path, "object", dst.Type())
		}
		return assignEntity(v, dst, path)

	case ValVariant:
		return assignValue(v.inner, dst, path)
	}

	return errors.Unsupported(errors.PhaseDecode, "assign value kind: "+v.kind.String())
}

func assignEntity(v *Value, dst reflect.Value, path []string) error {
	for name, f := range v.fields {
		field, ok := findGoField(dst, name)
		if !ok {
			continue
		}
		if err := assignValue(f, field, childPath(path, name)); err != nil {
			return err
		}
	}
	if len(v.unknown) > 0 {
		if field, ok := findUnknownSink(dst); ok {
			field.Set(reflect.ValueOf(v.unknown))
		}
	}
	return nil
}

// findGoField locates the struct field for a document field name: exact
// `tg` tag match, then snake_case of the Go field name, then a
// case-insensitive fallback.
func findGoField(structVal reflect.Value, name string) (reflect.Value, bool) {
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tagName(sf) == name {
			return structVal.Field(i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("tg") != "" {
			continue
		}
		if toSnakeCase(sf.Name) == name {
			return structVal.Field(i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("tg") != "" {
			continue
		}
		if strings.EqualFold(sf.Name, strings.ReplaceAll(name, "_", "")) {
			return structVal.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// findUnknownSink locates a map[string]any field tagged `tg:"-,unknown"`,
// the opt-in sink for undeclared input fields.
func findUnknownSink(structVal reflect.Value) (reflect.Value, bool) {
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get("tg") != "-,unknown" {
			continue
		}
		if sf.Type == reflect.TypeOf(map[string]any(nil)) {
			return structVal.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func tagName(sf reflect.StructField) string {
	tag := sf.Tag.Get("tg")
	if tag == "" || tag == "-" {
		return ""
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// toSnakeCase converts a Go field name to its wire form. Runs of capitals
// stay together, so MessageID becomes message_id and HTMLText becomes
// html_text.
func toSnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (!isUpper(runes[i-1]) || (i+1 < len(runes) && !isUpper(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// nativeValue renders a decoded value as plain Go data, for interface{}
// targets.
func nativeValue(v *Value) any {
	switch v.kind {
	case ValBool:
		return v.b
	case ValInt:
		return v.i
	case ValFloat:
		return v.f
	case ValString, ValEnum:
		return v.s
	case ValSeq:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = nativeValue(item)
		}
		return out
	case ValEntity:
		out := make(map[string]any, len(v.fields)+len(v.unknown))
		for name, f := range v.fields {
			out[name] = nativeValue(f)
		}
		for name, raw := range v.unknown {
			out[name] = raw
		}
		return out
	case ValVariant:
		return nativeValue(v.inner)
	}
	return nil
}

func assignMismatch(path []string, want string, got reflect.Type) *errors.Error {
	return errors.TypeMismatch(errors.PhaseDecode, path, want, fmt.Sprintf("target %s", got))
}
