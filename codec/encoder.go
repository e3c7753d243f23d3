package codec

import (
	"github.com/botwire/botwire/errors"
	"github.com/botwire/botwire/schema"
)

// Encoder turns decoded values back into generic document trees. Encoding
// a value produced by a Decoder over the same registry yields a document
// equivalent to the original input, including fields the schema did not
// declare.
type Encoder struct {
	reg *schema.Registry
}

func NewEncoder(reg *schema.Registry) *Encoder {
	return &Encoder{reg: reg}
}

// Encode converts v into a tree of map[string]any, []any, and scalars,
// ready for JSON serialization.
func (e *Encoder) Encode(v *Value) (any, error) {
	if v == nil {
		return nil, errors.InvalidData(errors.PhaseEncode, nil, "nil value")
	}
	return e.encode(v)
}

func (e *Encoder) encode(v *Value) (any, error) {
	switch v.kind {
	case ValBool:
		return v.b, nil
	case ValInt:
		return v.i, nil
	case ValFloat:
		return v.f, nil
	case ValString, ValEnum:
		return v.s, nil

	case ValSeq:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			enc, err := e.encode(item)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil

	case ValEntity:
		out := make(map[string]any, len(v.fields)+len(v.unknown))
		for name, f := range v.fields {
			enc, err := e.encode(f)
			if err != nil {
				return nil, err
			}
			out[name] = enc
		}
		// Undeclared fields ride along untouched.
		for name, raw := range v.unknown {
			out[name] = raw
		}
		return out, nil

	case ValVariant:
		return e.encode(v.inner)

	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "value kind: "+v.kind.String())
	}
}
