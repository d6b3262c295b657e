// Package casting provides the built-in value types and the process-wide
// table resolving type names to type instances.
package casting

import (
	"sync"

	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// builtins are the value types available under their documented names before
// any user registration.
var builtins = map[Ident]Type{
	"string":           String{},
	"immutable_string": String{},
	"integer":          Integer{},
	"big_integer":      Integer{},
	"float":            Float{},
	"decimal":          Decimal{},
	"boolean":          Boolean{},
	"date":             Date{},
	"time":             Time{},
	"datetime":         DateTime{},
	"binary":           Binary{},
	"json":             JSON{},
	"uuid":             UUID{},
}

var lock sync.RWMutex
var registered = map[Ident]Type{}

// Register associates a type name with a type instance for resolution by
// attribute declarations. A later registration replaces an earlier one,
// built-in names included. Registration is intended to happen once at
// startup; lookups may then proceed concurrently.
func Register(name Ident, typ Type) (err error) {
	if name == "" {
		err = NewError("casting.invalidTypeName")
		return
	}
	if typ == nil {
		err = NewError("casting.invalidType", "name", name)
		return
	}
	lock.Lock()
	defer lock.Unlock()
	registered[name] = typ
	return
}

// Lookup resolves a type name to its registered type instance.
func Lookup(name Ident) (typ Type, err error) {
	lock.RLock()
	typ, ok := registered[name]
	lock.RUnlock()
	if ok {
		return
	}
	typ, ok = builtins[name]
	if !ok {
		err = NewError(ErrUnknownType.Code, "name", name)
	}
	return
}

// Deserialize converts a value arriving from storage to the type's canonical
// representation, coercing with Cast for types with no distinct storage
// form.
func Deserialize(typ Type, stored any) (value any, err error) {
	d, ok := typ.(Deserializer)
	if ok {
		value, err = d.Deserialize(stored)
		return
	}
	value, err = typ.Cast(stored)
	return
}

// Serialize converts a canonical value to its storage form, emitting the
// value unchanged for types with no distinct storage form.
func Serialize(typ Type, value any) (stored any, err error) {
	s, ok := typ.(Serializer)
	if ok {
		stored, err = s.Serialize(value)
		return
	}
	stored = value
	return
}

func cannotCoerce(name Ident, raw any) (err error) {
	err = NewError(ErrCannotCoerce.Code, "type", name, "value", raw)
	return
}
