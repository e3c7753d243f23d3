// Package telegram carries the Bot API type catalog and the helpers to
// decode wire documents against it.
//
// The catalog is compiled once on first use and shared process-wide:
//
//	doc, err := botwire.ParseDocument(r)
//	upd, err := telegram.DecodeUpdate(doc)
//
// Untagged unions from the API surface (update payloads, pressed inline
// keyboard buttons, input message content) are registered as variant
// groups and resolved purely by field shape. Tagged unions (chat, input
// media) use const-pinned fields, so both go through the same resolution
// path.
//
// Responses from API method calls arrive wrapped in the standard
// envelope; UnwrapResponse strips it and converts failures into
// *APIError values.
package telegram
