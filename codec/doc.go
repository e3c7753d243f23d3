// Package codec decodes generic document trees against a schema.Registry
// and encodes decoded values back into documents.
//
// # Decoding Flow
//
//  1. schema.Builder.Build() -> *schema.Registry (once, at startup)
//  2. NewDecoder(registry, opts...) -> *Decoder
//  3. Decoder.Decode(doc, "message") -> *Value
//
// The decoder consumes an already-parsed value tree (map[string]any,
// []any, json.Number, string, bool, nil); it never reads bytes. Parsing
// and its failures belong to the caller, see botwire.ParseDocument.
//
// # Error Handling
//
// Decoding fails fast on the first offending field and reports the full
// path from the document root:
//
//	[decode] field_missing at chat.pinned_message.from.id: required field "id" not found
//	[decode] integer_range at migrate_to_chat_id: expected signed 64-bit integer
//
// # Variant Resolution
//
// Members of a variant group are matched structurally: a member is a
// candidate when all of its required fields are present and no present
// declared field is shape-incompatible. One candidate wins outright; among
// several, the member whose required-field set strictly contains every
// other candidate's wins; anything still tied is an ambiguous_variant
// error.
//
// # Thread Safety
//
// Decoder and Encoder hold no per-call state and are safe for concurrent
// use. Each Decode produces an independently owned, immutable Value tree.
package codec
