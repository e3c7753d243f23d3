// Package errors provides structured error types for schema building and
// document decoding.
//
// Every error carries a processing phase, an error kind, and the full field
// path from the document root, rendered as:
//
//	[decode] field_missing at chat.pinned_message.from.id: required field "id" not found
//	[decode] ambiguous_variant at content: shape matches [input_location, input_venue]
//
// Errors are always returned to the caller, never fatal. Use errors.Is with
// a prototype (&Error{Phase: ..., Kind: ...}) to match by phase and kind.
package errors
