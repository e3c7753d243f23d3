package botwire

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	boterrors "github.com/botwire/botwire/errors"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`{"update_id": 9223372036854775807, "ok": true}`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("doc is %T, want map", doc)
	}

	// Large identifiers must arrive as json.Number, not a rounded float64.
	n, ok := m["update_id"].(json.Number)
	if !ok {
		t.Fatalf("update_id is %T, want json.Number", m["update_id"])
	}
	i, err := n.Int64()
	if err != nil || i != 9223372036854775807 {
		t.Errorf("update_id = %v, want MaxInt64", n)
	}
	if m["ok"] != true {
		t.Errorf("ok = %v, want true", m["ok"])
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated", `{"a": `},
		{"bare garbage", `not json`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"trailing garbage", `[1, 2] x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocumentBytes([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !errors.Is(err, &boterrors.Error{Phase: boterrors.PhaseParse, Kind: boterrors.KindMalformedInput}) {
				t.Errorf("wrong error: %v", err)
			}
		})
	}
}

func TestParseDocument_Scalars(t *testing.T) {
	doc, err := ParseDocumentBytes([]byte(`"restricted"`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc != "restricted" {
		t.Errorf("doc = %v, want restricted", doc)
	}

	doc, err = ParseDocumentBytes([]byte(`null`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc != nil {
		t.Errorf("doc = %v, want nil", doc)
	}
}
