package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncoder_RoundTrip(t *testing.T) {
	reg := testRegistry(t)
	d := NewDecoder(reg)
	e := NewEncoder(reg)

	tests := []struct {
		name     string
		typeName string
		raw      string
	}{
		{
			"entity with nesting and seq",
			"message",
			`{
				"message_id": 42, "date": 1723900000,
				"from": {"id": 7, "is_bot": false, "first_name": "Ada"},
				"photo": [
					{"file_id": "a", "width": 90, "height": 90},
					{"file_id": "b", "width": 320, "height": 320}
				],
				"status": "member"
			}`,
		},
		{
			"unknown fields survive",
			"user",
			`{"id": 1, "is_bot": false, "first_name": "A", "is_premium": true, "language_code": "en"}`,
		},
		{
			"variant keeps wire shape",
			"chat",
			`{"id": 99, "type": "group", "title": "Team"}`,
		},
		{
			"open enum value",
			"member_status",
			`"restricted"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.raw)
			v, err := d.Decode(doc, tt.typeName)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			enc, err := e.Encode(v)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			// Re-decoding the encoded document must produce an equal value.
			// Comparing value trees rather than raw documents sidesteps the
			// json.Number vs int64 representation difference.
			v2, err := d.Decode(enc, tt.typeName)
			if err != nil {
				t.Fatalf("re-Decode failed: %v", err)
			}
			if !v.Equal(v2) {
				t.Errorf("round trip drifted:\n  first:  %s\n  second: %s", v, v2)
			}
		})
	}
}

func TestEncoder_Shapes(t *testing.T) {
	reg := testRegistry(t)
	d := NewDecoder(reg)
	e := NewEncoder(reg)

	v, err := d.Decode(parseDoc(t, `{"id": 1, "is_bot": true, "first_name": "A", "custom": [1, 2]}`), "user")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	enc, err := e.Encode(v)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, ok := enc.(map[string]any)
	if !ok {
		t.Fatalf("Encode returned %T, want map", enc)
	}
	want := map[string]any{
		"id":         int64(1),
		"is_bot":     true,
		"first_name": "A",
		"custom":     parseDoc(t, `[1, 2]`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestEncoder_NilValue(t *testing.T) {
	e := NewEncoder(testRegistry(t))
	if _, err := e.Encode(nil); err == nil {
		t.Fatal("expected error for nil value")
	}
}
