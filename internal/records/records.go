// Package records contains the per-record attribute containers.
package records

import (
	"github.com/chetna1726/attribute-type-casting/internal/casting"
	"github.com/chetna1726/attribute-type-casting/internal/registry"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Record is a per-record attribute container: the mapping of attribute
// idents to current canonical values. A record binds to the registry
// snapshot current at its construction, so later registrations never change
// a record already built.
//
// Records belong to a single writer and are not safe for concurrent use.
type Record struct {
	schema *registry.Snapshot
	values map[Ident]any
}

// NewRecord returns an empty record bound to the given snapshot, with room
// for the given number of values before its map grows.
func NewRecord(schema *registry.Snapshot, size int) (rec *Record) {
	rec = &Record{schema: schema, values: make(map[Ident]any, size)}
	return
}

// Set casts the raw value with the attribute's type and stores the result as
// the current value. Values assigned from user input cast exactly once.
func (rec *Record) Set(ident Ident, raw any) (err error) {
	attr, err := rec.schema.Lookup(ident)
	if err != nil {
		return
	}
	value, err := attr.Type.Cast(raw)
	if err != nil {
		return
	}
	rec.values[ident] = value
	return
}

// Load deserializes the stored value with the attribute's type and stores
// the result as the current value. Values arriving from storage deserialize
// exactly once and are never re-cast.
func (rec *Record) Load(ident Ident, stored any) (err error) {
	attr, err := rec.schema.Lookup(ident)
	if err != nil {
		return
	}
	value, err := casting.Deserialize(attr.Type, stored)
	if err != nil {
		return
	}
	rec.values[ident] = value
	return
}

// Get returns the attribute's current value. An attribute never set
// materializes its default first: a literal as given, a producer invoked
// anew for this record, either coerced by origin and cached as the current
// value. An attribute with no default reads as nil, uncached.
func (rec *Record) Get(ident Ident) (value any, err error) {
	attr, err := rec.schema.Lookup(ident)
	if err != nil {
		return
	}
	value, err = rec.get(attr)
	return
}

func (rec *Record) get(attr Attr) (value any, err error) {
	value, found := rec.values[attr.Ident]
	if found || attr.Default == nil {
		return
	}
	var raw any
	switch def := attr.Default.(type) {
	case Literal:
		raw = def.Value
	case Producer:
		raw, err = def()
		if err != nil {
			return
		}
	default:
		err = NewError("records.invalidDefault", "ident", attr.Ident, "default", attr.Default)
		return
	}
	if attr.FromStorage {
		value, err = casting.Deserialize(attr.Type, raw)
	} else {
		value, err = attr.Type.Cast(raw)
	}
	if err != nil {
		return
	}
	rec.values[attr.Ident] = value
	return
}

// Export serializes the attribute's current value for storage, materializing
// its default if it was never set. Virtual attributes have no storage column
// and refuse to export.
func (rec *Record) Export(ident Ident) (stored any, err error) {
	attr, err := rec.schema.Lookup(ident)
	if err != nil {
		return
	}
	stored, err = rec.export(attr)
	return
}

func (rec *Record) export(attr Attr) (stored any, err error) {
	if attr.Virtual {
		err = NewError(ErrVirtualAttribute.Code, "ident", attr.Ident)
		return
	}
	value, err := rec.get(attr)
	if err != nil {
		return
	}
	stored, err = casting.Serialize(attr.Type, value)
	return
}

// LoadAll loads a row of stored values, deserializing each in ident order.
func (rec *Record) LoadAll(row map[Ident]any) (err error) {
	idents := maps.Keys(row)
	slices.Sort(idents)
	for _, ident := range idents {
		err = rec.Load(ident, row[ident])
		if err != nil {
			return
		}
	}
	return
}

// ExportAll serializes every non-virtual attribute in the record's schema,
// defaults included, into a row keyed by ident.
func (rec *Record) ExportAll() (row map[Ident]any, err error) {
	row = make(map[Ident]any, rec.schema.Len())
	iter := rec.schema.Select()
	for iter.Next() {
		attr := iter.Value()
		if attr.Virtual {
			continue
		}
		var stored any
		stored, err = rec.export(attr)
		if err != nil {
			iter.Stop()
			row = nil
			return
		}
		row[attr.Ident] = stored
	}
	return
}
