// Package models provides models of structs with attribute bindings.
package models

import (
	"reflect"
	"strings"
	"sync"

	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StructModel models a struct that has fields bound to attributes, whose
// instances correspond to records.
type StructModel struct {
	// Type is the struct type, whose kind must be a struct.
	Type reflect.Type
	// AttrFields are the fields bound to attributes, in field order.
	AttrFields []AttrFieldModel
}

// AttrFieldModel models a field bound to an attribute.
type AttrFieldModel struct {
	// Ident is the ident of the attr.
	Ident Ident
	// Index is the position of the field in the struct.
	Index int
	// FieldType is the field's go type.
	FieldType reflect.Type
	// TypeName is the name of the attribute's value type: the tag's type
	// directive if given, otherwise inferred from the field's go type.
	TypeName Ident
	// Default is the raw default literal from the tag. Tag defaults are user
	// input and materialize through the value type's cast.
	Default string
	// HasDefault distinguishes an empty default literal from none at all.
	HasDefault bool
	// Virtual indicates the attribute has no storage column.
	Virtual bool
	// IgnoreEmpty indicates that zero values are treated as nils.
	IgnoreEmpty bool
}

// IsPointer indicates that the field value is a pointer.
func (attr AttrFieldModel) IsPointer() bool {
	return attr.FieldType.Kind() == reflect.Pointer
}

// Analyzer converts struct types to struct models.
type Analyzer interface {
	Analyze(typ reflect.Type) (model StructModel, err error)
}

// BuildCachingAnalyzer returns an analyzer that caches models by struct
// type. Models aren't state, just terser representations of a reflected
// analysis, so the cache never invalidates.
func BuildCachingAnalyzer() (analyzer Analyzer) {
	analyzer = &cachingAnalyzer{models: map[reflect.Type]StructModel{}}
	return
}

type cachingAnalyzer struct {
	lock   sync.RWMutex
	models map[reflect.Type]StructModel
}

func (analyzer *cachingAnalyzer) Analyze(typ reflect.Type) (model StructModel, err error) {
	analyzer.lock.RLock()
	model, ok := analyzer.models[typ]
	analyzer.lock.RUnlock()
	if ok {
		return
	}
	model, err = Analyze(typ)
	if err != nil {
		return
	}
	analyzer.lock.Lock()
	analyzer.models[typ] = model
	analyzer.lock.Unlock()
	return
}

// Analyze builds a struct model for the given type. Fields without an attr
// tag are not part of the model.
func Analyze(typ reflect.Type) (model StructModel, err error) {
	if typ.Kind() != reflect.Struct {
		err = NewError("models.notStruct", "type", typ)
		return
	}
	model.Type = typ
	n := typ.NumField()
	attrFields := make([]AttrFieldModel, 0, n)
	for i := 0; i < n; i++ {
		fieldType := typ.Field(i)
		attr, fieldErr := parseAttrField(fieldType)
		if fieldErr != nil {
			err = fieldErr
			return
		}
		if attr.Ident == "" {
			continue
		}
		attr.Index = i
		attrFields = append(attrFields, attr)
	}
	model.AttrFields = attrFields
	return
}

var decimalType = reflect.TypeOf(decimal.Decimal{})
var uuidType = reflect.TypeOf(uuid.UUID{})

// TypeNameForFieldType infers the name of the value type most naturally
// representing the given go type, if any.
func TypeNameForFieldType(typ reflect.Type) (name Ident) {
	switch typ {
	case TimeType:
		name = "datetime"
		return
	case decimalType:
		name = "decimal"
		return
	case uuidType:
		name = "uuid"
		return
	}
	switch typ.Kind() {
	case reflect.Bool:
		name = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		name = "integer"
	case reflect.Float32, reflect.Float64:
		name = "float"
	case reflect.String:
		name = "string"
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			name = "binary"
		}
	case reflect.Map:
		name = "json"
	}
	return
}

func parseAttrField(field reflect.StructField) (attr AttrFieldModel, err error) {
	tag, ok := field.Tag.Lookup("attr")
	if !ok {
		return
	}
	attr, err = parseAttrTag(tag)
	if err != nil {
		return
	}
	attr.FieldType = field.Type
	if attr.TypeName != "" {
		return
	}
	typ := field.Type
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
		if typ.Kind() == reflect.Pointer {
			err = NewError("models.invalidPointerType", "tag", tag, "type", field.Type)
			return
		}
	}
	attr.TypeName = TypeNameForFieldType(typ)
	if attr.TypeName == "" {
		err = NewError("models.invalidType", "tag", tag, "type", field.Type, "kind", field.Type.Kind())
	}
	return
}

func parseAttrTag(tag string) (attr AttrFieldModel, err error) {
	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		err = NewError("models.missingIdent", "tag", tag)
		return
	}
	attr.Ident = Ident(parts[0])
	n := len(parts)
	for i := 1; i < n; i++ {
		part := parts[i]
		switch part {
		case "virtual":
			attr.Virtual = true
		case "ignoreempty":
			attr.IgnoreEmpty = true
		default:
			switch {
			case strings.HasPrefix(part, "type="):
				if attr.TypeName != "" {
					err = NewError("models.duplicateTypeDirective", "tag", tag)
					return
				}
				attr.TypeName = Ident(part[len("type="):])
			case strings.HasPrefix(part, "default="):
				if attr.HasDefault {
					err = NewError("models.duplicateDefaultDirective", "tag", tag)
					return
				}
				attr.Default = part[len("default="):]
				attr.HasDefault = true
			default:
				err = NewError("models.invalidDirective", "tag", tag)
				return
			}
		}
	}
	return
}
