// Package schema defines entity, variant group, and enum metadata and
// compiles it into an immutable Registry.
//
// A Registry is built once, validated eagerly, and never mutated afterwards;
// it is safe to share across any number of concurrent decodes. Validation at
// Build time catches dangling references, duplicate names, and variant
// groups whose members could never be told apart, so decode time only deals
// with document-shaped failures.
package schema
