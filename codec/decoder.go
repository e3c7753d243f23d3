package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/botwire/botwire/errors"
	"github.com/botwire/botwire/schema"
)

// Decoder maps untyped document trees onto registry definitions. It is a
// pure function over its inputs: the registry is read-only and each call
// produces an independently owned Value, so concurrent use needs no
// coordination.
type Decoder struct {
	reg    *schema.Registry
	logger *zap.Logger
	strict bool
}

type Option func(*Decoder)

// WithStrictFields makes undeclared input fields a decode error instead of
// preserving them on the value.
func WithStrictFields() Option {
	return func(d *Decoder) { d.strict = true }
}

// WithLogger routes schema-drift events (unknown fields in lenient mode)
// to l instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) { d.logger = l }
}

func NewDecoder(reg *schema.Registry, opts ...Option) *Decoder {
	d := &Decoder{reg: reg}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = Logger()
	}
	return d
}

// Decode checks doc against the named entity, variant group, or enum and
// returns the typed value tree, or an error carrying the full field path
// of the first offending field.
func (d *Decoder) Decode(doc any, typeName string) (*Value, error) {
	return d.decodeNamed(typeName, doc, nil)
}

func (d *Decoder) decodeNamed(name string, doc any, path []string) (*Value, error) {
	if e, ok := d.reg.Entity(name); ok {
		return d.decodeEntity(e, doc, path)
	}
	if v, ok := d.reg.Variant(name); ok {
		return d.decodeVariant(v, doc, path)
	}
	if e, ok := d.reg.Enum(name); ok {
		return d.decodeEnum(e, doc, path)
	}
	return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Path(path...).
		Detail("type %q is not registered", name).
		Build()
}

func (d *Decoder) decodeValue(t schema.Type, doc any, path []string) (*Value, error) {
	switch t.Kind {
	case schema.KindBool:
		b, ok := doc.(bool)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "bool", docShape(doc))
		}
		return &Value{kind: ValBool, b: b}, nil

	case schema.KindInt:
		return d.decodeInt(doc, path)

	case schema.KindFloat:
		return d.decodeFloat(doc, path)

	case schema.KindString:
		s, ok := doc.(string)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "string", docShape(doc))
		}
		return &Value{kind: ValString, s: s}, nil

	case schema.KindSeq:
		items, ok := doc.([]any)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "array", docShape(doc))
		}
		seq := make([]*Value, len(items))
		for i, item := range items {
			v, err := d.decodeValue(*t.Elem, item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			seq[i] = v
		}
		return &Value{kind: ValSeq, seq: seq}, nil

	case schema.KindRef:
		return d.decodeNamed(t.Name, doc, path)

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "type kind: "+t.Kind.String())
	}
}

// decodeInt accepts any representation an upstream JSON parser may hand
// over. Values are widened to int64; anything that would truncate fails.
func (d *Decoder) decodeInt(doc any, path []string) (*Value, error) {
	switch n := doc.(type) {
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return &Value{kind: ValInt, i: i}, nil
		}
		if strings.ContainsAny(n.String(), ".eE") {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "integer", "number "+n.String())
		}
		return nil, errors.IntegerOutOfRange(errors.PhaseDecode, path, n.String())
	case int64:
		return &Value{kind: ValInt, i: n}, nil
	case int:
		return &Value{kind: ValInt, i: int64(n)}, nil
	case float64:
		if n != math.Trunc(n) {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "integer", "number "+strconv.FormatFloat(n, 'g', -1, 64))
		}
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return nil, errors.IntegerOutOfRange(errors.PhaseDecode, path, n)
		}
		return &Value{kind: ValInt, i: int64(n)}, nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, "integer", docShape(doc))
	}
}

func (d *Decoder) decodeFloat(doc any, path []string) (*Value, error) {
	switch n := doc.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, "number", n.String())
		}
		return &Value{kind: ValFloat, f: f}, nil
	case float64:
		return &Value{kind: ValFloat, f: n}, nil
	case int64:
		return &Value{kind: ValFloat, f: float64(n)}, nil
	case int:
		return &Value{kind: ValFloat, f: float64(n)}, nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, "number", docShape(doc))
	}
}

func (d *Decoder) decodeEntity(def *schema.EntityDef, doc any, path []string) (*Value, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, "object", docShape(doc))
	}

	fields := make(map[string]*Value, len(def.Fields))
	for i := range def.Fields {
		f := &def.Fields[i]
		raw, present := m[f.Name]
		fieldPath := childPath(path, f.Name)

		if !present {
			if f.Required {
				return nil, errors.MissingField(errors.PhaseDecode, fieldPath, f.Name)
			}
			// Absent optional field: no entry at all, distinct from null.
			continue
		}

		if f.Const != "" {
			s, ok := raw.(string)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode, fieldPath, strconv.Quote(f.Const), docShape(raw))
			}
			if s != f.Const {
				return nil, errors.TypeMismatch(errors.PhaseDecode, fieldPath, strconv.Quote(f.Const), strconv.Quote(s))
			}
			fields[f.Name] = &Value{kind: ValString, s: s}
			continue
		}

		v, err := d.decodeValue(f.Type, raw, fieldPath)
		if err != nil {
			return nil, err
		}
		fields[f.Name] = v
	}

	var unknown map[string]any
	for k, raw := range m {
		if _, declared := def.Field(k); declared {
			continue
		}
		if d.strict {
			return nil, errors.UnknownField(errors.PhaseDecode, childPath(path, k), k)
		}
		if unknown == nil {
			unknown = make(map[string]any)
		}
		unknown[k] = raw
		d.logger.Debug("unknown field preserved",
			zap.String("entity", def.Name),
			zap.String("path", strings.Join(childPath(path, k), ".")))
	}

	return &Value{kind: ValEntity, typ: def.Name, fields: fields, unknown: unknown}, nil
}

func (d *Decoder) decodeVariant(def *schema.VariantDef, doc any, path []string) (*Value, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, "object", docShape(doc))
	}

	var candidates []*schema.EntityDef
	for _, member := range def.Members {
		if d.memberMatches(member, m) {
			candidates = append(candidates, member)
		}
	}

	var chosen *schema.EntityDef
	switch len(candidates) {
	case 0:
		present := make([]string, 0, len(m))
		for k := range m {
			present = append(present, k)
		}
		sort.Strings(present)
		return nil, errors.NoMatchingVariant(errors.PhaseDecode, path, present)
	case 1:
		chosen = candidates[0]
	default:
		chosen = mostSpecific(candidates)
		if chosen == nil {
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = c.Name
			}
			sort.Strings(names)
			return nil, errors.AmbiguousVariant(errors.PhaseDecode, path, names)
		}
	}

	inner, err := d.decodeEntity(chosen, doc, path)
	if err != nil {
		return nil, err
	}
	return &Value{kind: ValVariant, typ: def.Name, member: chosen.Name, inner: inner}, nil
}

// memberMatches implements the candidate test: every required field of the
// member is present, and no present declared field is shape-incompatible.
// Fields the member does not declare never disqualify it.
func (d *Decoder) memberMatches(member *schema.EntityDef, m map[string]any) bool {
	for _, name := range member.Required() {
		if _, ok := m[name]; !ok {
			return false
		}
	}
	for k, raw := range m {
		f, declared := member.Field(k)
		if !declared {
			continue
		}
		if !d.shapeCompatible(f, raw) {
			return false
		}
	}
	return true
}

func (d *Decoder) shapeCompatible(f *schema.Field, raw any) bool {
	if f.Const != "" {
		s, ok := raw.(string)
		return ok && s == f.Const
	}
	return d.typeAdmits(f.Type, raw)
}

// typeAdmits is the shallow shape check used during candidate selection.
// Full decoding happens only after a member is chosen, so this looks one
// level deep: enough to keep resolution deterministic without decoding
// every candidate.
func (d *Decoder) typeAdmits(t schema.Type, raw any) bool {
	switch t.Kind {
	case schema.KindBool:
		_, ok := raw.(bool)
		return ok
	case schema.KindInt, schema.KindFloat:
		switch raw.(type) {
		case json.Number, float64, int64, int:
			return true
		}
		return false
	case schema.KindString:
		_, ok := raw.(string)
		return ok
	case schema.KindSeq:
		_, ok := raw.([]any)
		return ok
	case schema.KindRef:
		if _, ok := d.reg.Enum(t.Name); ok {
			_, isStr := raw.(string)
			return isStr
		}
		_, isObj := raw.(map[string]any)
		return isObj
	}
	return false
}

// mostSpecific returns the candidate whose required-field set is a strict
// superset of every other candidate's, or nil when no such member exists.
func mostSpecific(candidates []*schema.EntityDef) *schema.EntityDef {
	for _, c := range candidates {
		wins := true
		for _, o := range candidates {
			if o == c {
				continue
			}
			if !isStrictSuperset(c.Required(), o.Required()) {
				wins = false
				break
			}
		}
		if wins {
			return c
		}
	}
	return nil
}

// isStrictSuperset reports whether sorted set a strictly contains sorted
// set b.
func isStrictSuperset(a, b []string) bool {
	if len(a) <= len(b) {
		return false
	}
	i := 0
	for _, want := range b {
		for i < len(a) && a[i] < want {
			i++
		}
		if i >= len(a) || a[i] != want {
			return false
		}
		i++
	}
	return true
}

func (d *Decoder) decodeEnum(def *schema.EnumDef, doc any, path []string) (*Value, error) {
	s, ok := doc.(string)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, "string", docShape(doc))
	}
	if !def.Open && !def.Has(s) {
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, def.Name+" value", strconv.Quote(s))
	}
	if def.Open && !def.Has(s) {
		d.logger.Debug("unknown enum value preserved",
			zap.String("enum", def.Name),
			zap.String("value", s))
	}
	return &Value{kind: ValEnum, typ: def.Name, s: s}, nil
}

// docShape names the shape of a generic document node for error messages.
func docShape(doc any) string {
	switch doc.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number, float64, int64, int:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", doc)
	}
}

func childPath(path []string, key string) []string {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	return append(p, key)
}

func indexPath(path []string, i int) []string {
	if len(path) == 0 {
		return []string{"[" + strconv.Itoa(i) + "]"}
	}
	p := make([]string, len(path))
	copy(p, path)
	p[len(p)-1] += "[" + strconv.Itoa(i) + "]"
	return p
}
