// Package attrs contains the public attribute types and functions for
// declaring, casting, defaulting, and round-tripping record attributes.
package attrs

import (
	"github.com/chetna1726/attribute-type-casting/internal/casting"
	"github.com/chetna1726/attribute-type-casting/internal/records"
	"github.com/chetna1726/attribute-type-casting/internal/structs/assign"
	"github.com/chetna1726/attribute-type-casting/internal/structs/scan"
	"github.com/chetna1726/attribute-type-casting/internal/types"
)

// Ident is a globally unique identifier for attributes and value types.
type Ident = types.Ident

// Attr describes a registered attribute.
type Attr = types.Attr

// Type converts raw assignment values to canonical values.
type Type = types.Type

// Deserializer is implemented by types whose storage form differs from their
// raw assignment form.
type Deserializer = types.Deserializer

// Serializer is implemented by types whose storage form differs from their
// canonical value representation.
type Serializer = types.Serializer

// DefaultSpec is the source of an attribute's default value.
type DefaultSpec = types.DefaultSpec

// Literal is a fixed default value.
type Literal = types.Literal

// Producer is a niladic default generator invoked anew for each record.
type Producer = types.Producer

// These are the sentinels callers may branch on with errors.Is.

var (
	ErrUnknownAttribute = types.ErrUnknownAttribute
	ErrUnknownType      = types.ErrUnknownType
	ErrCannotCoerce     = types.ErrCannotCoerce
	ErrVirtualAttribute = types.ErrVirtualAttribute
)

// RegisterType associates a type name with a type instance for use in
// attribute declarations, replacing any prior association with that name,
// built-in names included. Registration is intended to happen once at
// startup, before attributes naming the type register.
func RegisterType(name Ident, typ Type) (err error) {
	err = casting.Register(name, typ)
	return
}

// LookupType resolves a type name to its type instance.
func LookupType(name Ident) (typ Type, err error) {
	typ, err = casting.Lookup(name)
	return
}

// Registry is a mutable mapping of attribute idents to their types and
// defaults. Registries are safe for concurrent use.
type Registry interface {
	// Register records the given attribute declarations, resolving symbolic
	// type names. A declaration for an extant ident replaces its descriptor.
	// Registration applies instantly: records built afterwards see it,
	// records built before do not.
	Register(attrs ...Attr) (err error)
	// Declare registers the attribute declarations implied by the attr tags
	// of the given struct values, a terser Register for schema-shaped types.
	Declare(xs ...any) (err error)
	// Attrs returns the registered descriptors in ident order.
	Attrs() (attrs []Attr)
	// Len returns the number of registered attributes.
	Len() (n int)
	// NewRecord returns an empty record bound to a snapshot of the current
	// registrations.
	NewRecord() (rec *Record)
}

// Record is a per-record attribute container: the mapping of attribute
// idents to current values, all coerced canonical by their attribute's type.
// Records belong to a single writer and are not safe for concurrent use.
type Record struct {
	rec      *records.Record
	assigner assign.Assigner
	scanner  scan.Scanner
}

// Set casts the raw value and stores the result as the attribute's current
// value.
func (rec *Record) Set(ident Ident, raw any) (err error) {
	err = rec.rec.Set(ident, raw)
	return
}

// Get returns the attribute's current value, materializing and caching its
// default if it was never set. An attribute with no default reads as nil.
func (rec *Record) Get(ident Ident) (value any, err error) {
	value, err = rec.rec.Get(ident)
	return
}

// Load deserializes a value arriving from storage and stores the result as
// the attribute's current value.
func (rec *Record) Load(ident Ident, stored any) (err error) {
	err = rec.rec.Load(ident, stored)
	return
}

// Export serializes the attribute's current value for storage, materializing
// its default if it was never set. Virtual attributes refuse to export.
func (rec *Record) Export(ident Ident) (stored any, err error) {
	stored, err = rec.rec.Export(ident)
	return
}

// LoadAll loads a row of stored values, deserializing each.
func (rec *Record) LoadAll(row map[Ident]any) (err error) {
	err = rec.rec.LoadAll(row)
	return
}

// ExportAll serializes every non-virtual attribute in the record's schema,
// defaults included, into a row keyed by ident.
func (rec *Record) ExportAll() (row map[Ident]any, err error) {
	row, err = rec.rec.ExportAll()
	return
}

// Assign writes the tagged fields of the given struct into the record, each
// cast by its attribute's type. Nil pointer fields are skipped.
func (rec *Record) Assign(x any) (err error) {
	err = rec.assigner.Assign(rec.rec, x)
	return
}

// Scan reads the record's values into the tagged fields of the given struct
// pointer, materializing defaults for attributes never set.
func (rec *Record) Scan(dest any) (err error) {
	err = rec.scanner.Scan(rec.rec, dest)
	return
}
