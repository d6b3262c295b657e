// Package types defines the core system types.
package types

import (
	"reflect"
	"time"
)

// Void is used for values in maps used as sets.
type Void struct{}

// Ident is a globally unique identifier, generally used for attributes and
// the names of registered value types.
type Ident string

// Type converts raw assignment values to an attribute's canonical value
// representation. Implementations must be stateless: the registry shares one
// instance across all records and all goroutines.
//
// Cast accepts a raw value and returns the canonical value, or an error if
// the raw value lies outside the type's accepted domain. How wide that
// domain is, strict or forgiving, is the type author's decision. A nil raw
// value always casts to nil. Cast should be idempotent on values already
// canonical.
type Type interface {
	Cast(raw any) (value any, err error)
}

// Deserializer is implemented by types whose storage form differs from their
// raw assignment form. Values arriving from storage pass through Deserialize
// exactly once; values for types without it are coerced with Cast.
type Deserializer interface {
	Deserialize(stored any) (value any, err error)
}

// Serializer is implemented by types whose storage form differs from their
// canonical value representation. Values leaving for storage pass through
// Serialize exactly once; types without it emit canonical values unchanged.
//
// Deserializing a serialized value must restore it: for every canonical v,
// Deserialize(Serialize(v)) and v are equal.
type Serializer interface {
	Serialize(value any) (stored any, err error)
}

// DefaultSpec is the source of an attribute's default value. A nil spec
// means the attribute has no default and reads as nil until set.
type DefaultSpec interface {
	IsDefaultSpec()
}

// Literal is a fixed default value. Literals should be immutable values;
// anything mutable belongs in a Producer so records never share state.
type Literal struct {
	Value any
}

// Producer is a niladic default generator, invoked anew for each record that
// materializes it so no two records share its result. Its error, if any,
// propagates to the reader.
type Producer func() (value any, err error)

func (Literal) IsDefaultSpec()  {}
func (Producer) IsDefaultSpec() {}

// TimeType is the type of golang's Time value.
var TimeType = reflect.TypeOf(time.Time{})
