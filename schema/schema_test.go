package schema

import (
	"errors"
	"testing"

	boterrors "github.com/botwire/botwire/errors"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()
	b.Entity("user",
		F("id", Int()),
		F("is_bot", Bool()),
		F("first_name", String()),
		Opt("last_name", String()),
	)
	b.Entity("photo_size",
		F("file_id", String()),
		F("width", Int()),
		F("height", Int()),
		Opt("file_size", Int()),
	)
	b.Entity("profile_photos",
		F("total_count", Int()),
		F("photos", Seq(Ref("photo_size"))),
	)
	b.OpenEnum("status", "member", "left")

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	user, ok := reg.Entity("user")
	if !ok {
		t.Fatal("entity user not found")
	}
	if got := user.Required(); len(got) != 3 {
		t.Errorf("Required() = %v, want 3 names", got)
	}
	if _, ok := user.Field("last_name"); !ok {
		t.Error("optional field last_name not declared")
	}
	if f, _ := user.Field("last_name"); f.Required {
		t.Error("last_name should be optional")
	}

	st, ok := reg.Enum("status")
	if !ok {
		t.Fatal("enum status not found")
	}
	if !st.Has("member") || st.Has("creator") {
		t.Errorf("enum value set wrong: %v", st.Values)
	}
	if !st.Open {
		t.Error("status should be open")
	}
}

func TestBuilder_VariantValidation(t *testing.T) {
	t.Run("member must be entity", func(t *testing.T) {
		b := NewBuilder()
		b.Entity("a", F("x", Int()))
		b.Variant("group", "a", "missing")
		_, err := b.Build()
		if err == nil {
			t.Fatal("expected error for unknown member")
		}
		if !errors.Is(err, &boterrors.Error{Phase: boterrors.PhaseBuild, Kind: boterrors.KindRegistration}) {
			t.Errorf("wrong error: %v", err)
		}
	})

	t.Run("member without required fields rejected", func(t *testing.T) {
		b := NewBuilder()
		b.Entity("a", F("x", Int()))
		b.Entity("b", Opt("y", Int()))
		b.Variant("group", "a", "b")
		if _, err := b.Build(); err == nil {
			t.Fatal("expected error: member b can never be told apart")
		}
	})

	t.Run("sole member without required fields allowed", func(t *testing.T) {
		b := NewBuilder()
		b.Entity("b", Opt("y", Int()))
		b.Variant("group", "b")
		if _, err := b.Build(); err != nil {
			t.Fatalf("Build failed: %v", err)
		}
	})

	t.Run("empty variant rejected", func(t *testing.T) {
		b := NewBuilder()
		b.Variant("group")
		if _, err := b.Build(); err == nil {
			t.Fatal("expected error for empty variant")
		}
	})
}

func TestBuilder_RefValidation(t *testing.T) {
	b := NewBuilder()
	b.Entity("msg", F("chat", Ref("chat")))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for unresolved ref")
	}

	b = NewBuilder()
	b.Entity("msg", F("tags", Seq(Seq(Ref("nope")))))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for unresolved seq element ref")
	}
}

func TestBuilder_DuplicateNames(t *testing.T) {
	b := NewBuilder()
	b.Entity("x", F("a", Int()))
	b.Entity("x", F("b", Int()))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected duplicate name error")
	}

	b = NewBuilder()
	b.Entity("x", F("a", Int()), F("a", Bool()))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected duplicate field error")
	}

	b = NewBuilder()
	b.Entity("x", F("a", Int()))
	b.Enum("x", "v")
	if _, err := b.Build(); err == nil {
		t.Fatal("expected cross-namespace duplicate error")
	}
}

func TestBuilder_ConstFields(t *testing.T) {
	b := NewBuilder()
	b.Entity("chat_private",
		F("id", Int()),
		Const("type", "private"),
		F("first_name", String()),
	)
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	e, _ := reg.Entity("chat_private")
	if e.Consts()["type"] != "private" {
		t.Errorf("Consts() = %v, want type=private", e.Consts())
	}

	// const must be string typed
	b = NewBuilder()
	b.Entity("bad", Field{Name: "type", Type: Int(), Const: "private", Required: true})
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for non-string const")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{Int(), "int"},
		{Seq(Ref("user")), "seq<user>"},
		{Seq(Seq(String())), "seq<seq<string>>"},
		{Ref("chat"), "chat"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRegistry_Names(t *testing.T) {
	b := NewBuilder()
	b.Entity("b_entity", F("x", Int()))
	b.Entity("a_entity", F("x", Int()))
	b.Variant("c_variant", "a_entity")
	b.Enum("d_enum", "v")
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	names := reg.Names()
	want := []string{"a_entity", "b_entity", "c_variant", "d_enum"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
