// Package botwire provides a schema-driven decoder for Telegram Bot API
// wire objects.
//
// The Bot API ships large, evolving JSON objects whose union types carry no
// usable discriminator on the wire. This library checks parsed documents
// against a compiled, immutable schema registry and produces typed value
// trees, resolving untagged unions by field shape.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	botwire/             Root package with the generic document surface
//	├── schema/          Type definitions, builder, and compiled registry
//	├── codec/           Decoder, encoder, and reflection-based DecodeInto
//	├── telegram/        The concrete Bot API catalog and response envelope
//	├── errors/          Structured error types for diagnosis
//	└── cmd/tgdecode/    CLI and interactive TUI for decoding documents
//
// # Quick Start
//
// Decode an incoming update:
//
//	doc, err := botwire.ParseDocument(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	upd, err := telegram.DecodeUpdate(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if upd.Message != nil {
//	    fmt.Println(upd.Message.Text)
//	}
//
// Or define your own schema:
//
//	b := schema.NewBuilder()
//	b.Entity("user",
//	    schema.F("id", schema.Int()),
//	    schema.F("is_bot", schema.Bool()),
//	    schema.F("first_name", schema.String()),
//	    schema.Opt("username", schema.String()),
//	)
//	reg, err := b.Build()
//
//	dec := codec.NewDecoder(reg)
//	v, err := dec.Decode(doc, "user")
//
// # Variant Resolution
//
// Variant groups are sets of entities occupying one structural slot. A
// member matches a document when all of its required fields are present and
// no present field is typed incompatibly. When several members match, the
// one whose required-field set strictly contains every other match wins;
// remaining ties are reported as ambiguity errors, never resolved by
// declaration order.
//
// # Forward Compatibility
//
// Unrecognized fields do not fail a decode by default. They are preserved
// on the decoded value and can be inspected via Unknown, so callers can log
// schema drift. Strict validation is available per decoder.
//
// # Numeric Semantics
//
// Integer fields decode into int64. Values that exceed the signed 64-bit
// range, or carry a fractional part, fail the decode rather than being
// truncated. ParseDocument keeps numbers as json.Number so large chat and
// user identifiers survive parsing intact.
//
// # Thread Safety
//
// A Registry is immutable after Build and safe for concurrent use. Decoders
// hold no per-call state; concurrent decodes of independent documents need
// no coordination.
package botwire
