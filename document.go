package botwire

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/botwire/botwire/errors"
)

// ParseDocument reads one JSON document from r into a generic value tree:
// objects become map[string]any, arrays []any, numbers json.Number, and
// strings, bools and nulls their Go counterparts.
//
// Numbers are kept as json.Number so 64-bit identifiers are not rounded
// through float64 before the decoder sees them. Syntax failures are
// reported as malformed_input with the underlying error attached.
func ParseDocument(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Malformed(err)
	}

	// Trailing non-whitespace after the document is a malformed payload,
	// not a second document.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, errors.New(errors.PhaseParse, errors.KindMalformedInput).
			Detail("trailing data after document").
			Build()
	}

	return doc, nil
}

// ParseDocumentBytes is ParseDocument over an in-memory payload.
func ParseDocumentBytes(data []byte) (any, error) {
	return ParseDocument(bytes.NewReader(data))
}
