package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTypeMismatch,
				Path:     []string{"chat", "pinned_message", "from", "id"},
				Expected: "integer",
				Actual:   "string",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "type_mismatch", "chat.pinned_message.from.id", "integer", "string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindFieldMissing,
			},
			contains: []string{"[decode]", "field_missing"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindMalformedInput,
				Detail: "bad payload",
				Cause:  errors.New("unexpected end of JSON input"),
			},
			contains: []string{"[parse]", "malformed_input", "bad payload", "caused by", "unexpected end of JSON input"},
		},
		{
			name: "error with candidates",
			err: &Error{
				Phase:      PhaseDecode,
				Kind:       KindAmbiguousVariant,
				Path:       []string{"content"},
				Detail:     "shape matches several members",
				Candidates: []string{"input_location", "input_venue"},
			},
			contains: []string{"ambiguous_variant", "at content", "input_location", "input_venue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindMalformedInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindFieldMissing}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTypeMismatch).
		Path("user", "name").
		Expected("string").
		Actual("number").
		Value(42).
		Cause(cause).
		Detail("field %q is mistyped", "name").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.Expected != "string" {
		t.Errorf("Expected = %v, want 'string'", err.Expected)
	}
	if err.Actual != "number" {
		t.Errorf("Actual = %v, want 'number'", err.Actual)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != `field "name" is mistyped` {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MissingField", func(t *testing.T) {
		err := MissingField(PhaseDecode, []string{"message", "chat", "id"}, "id")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
		if !strings.Contains(err.Error(), "message.chat.id") {
			t.Errorf("Error = %q, should contain full path", err.Error())
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseDecode, []string{"field"}, "integer", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Expected != "integer" || err.Actual != "string" {
			t.Errorf("Expected=%v Actual=%v", err.Expected, err.Actual)
		}
	})

	t.Run("IntegerOutOfRange", func(t *testing.T) {
		err := IntegerOutOfRange(PhaseDecode, []string{"id"}, "9223372036854775808")
		if err.Kind != KindIntegerRange {
			t.Errorf("Kind = %v, want %v", err.Kind, KindIntegerRange)
		}
		if !strings.Contains(err.Detail, "9223372036854775808") {
			t.Errorf("Detail = %v, should contain value", err.Detail)
		}
	})

	t.Run("NoMatchingVariant", func(t *testing.T) {
		err := NoMatchingVariant(PhaseDecode, []string{"content"}, []string{"z"})
		if err.Kind != KindNoMatchingVariant {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNoMatchingVariant)
		}
		if !strings.Contains(err.Detail, "{z}") {
			t.Errorf("Detail = %v, should name present fields", err.Detail)
		}
	})

	t.Run("AmbiguousVariant", func(t *testing.T) {
		err := AmbiguousVariant(PhaseDecode, []string{"content"}, []string{"a", "b"})
		if err.Kind != KindAmbiguousVariant {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAmbiguousVariant)
		}
		if len(err.Candidates) != 2 {
			t.Errorf("Candidates = %v, want 2 entries", err.Candidates)
		}
	})

	t.Run("UnknownField", func(t *testing.T) {
		err := UnknownField(PhaseDecode, []string{"user", "extra"}, "extra")
		if err.Kind != KindFieldUnknown {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldUnknown)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		cause := errors.New("invalid character '}'")
		err := Malformed(cause)
		if err.Kind != KindMalformedInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedInput)
		}
		if !errors.Is(err, Malformed(nil)) {
			t.Error("errors.Is should match malformed prototype")
		}
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("cause should pass through unchanged")
		}
	})

	t.Run("Registration", func(t *testing.T) {
		err := Registration("chat", "duplicate name")
		if err.Phase != PhaseBuild || err.Kind != KindRegistration {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseDecode, "cyclic documents")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})
}
