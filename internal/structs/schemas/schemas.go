// Package schemas provides for declaring attributes from struct types.
package schemas

import (
	"reflect"

	"github.com/chetna1726/attribute-type-casting/internal/structs/models"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// Analyze builds the attribute declarations implied by the given struct
// type's tagged fields. A tag default is user input, so its descriptor
// materializes through the value type's cast.
func Analyze(typ reflect.Type) (attrs []Attr, err error) {
	model, err := models.Analyze(typ)
	if err != nil {
		return
	}
	attrs = make([]Attr, 0, len(model.AttrFields))
	for _, field := range model.AttrFields {
		attr := Attr{
			Ident:    field.Ident,
			TypeName: field.TypeName,
			Virtual:  field.Virtual,
		}
		if field.HasDefault {
			attr.Default = Literal{Value: field.Default}
		}
		attrs = append(attrs, attr)
	}
	return
}
