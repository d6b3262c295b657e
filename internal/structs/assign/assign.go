// Package assign provides for writing struct fields into records.
package assign

import (
	"reflect"

	"github.com/chetna1726/attribute-type-casting/internal/records"
	"github.com/chetna1726/attribute-type-casting/internal/structs/models"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// Assigner writes tagged struct fields into records. Field values take the
// user input path: every one casts through its attribute's value type.
type Assigner interface {
	Assign(rec *records.Record, x any) (err error)
}

// NewAssigner returns an assigner using the given analyzer.
func NewAssigner(analyzer models.Analyzer) (assigner Assigner) {
	assigner = &structAssigner{analyzer: analyzer}
	return
}

type structAssigner struct {
	analyzer models.Analyzer
}

func (a *structAssigner) Assign(rec *records.Record, x any) (err error) {
	typ := reflect.TypeOf(x)
	var fields reflect.Value
	switch {
	case typ == nil:
		err = NewError("assign.nilStruct")
		return
	case typ.Kind() == reflect.Struct:
		fields = reflect.ValueOf(x)
	case typ.Kind() == reflect.Pointer:
		ptr := reflect.ValueOf(x)
		if ptr.IsNil() {
			err = NewError("assign.nilStruct")
			return
		}
		fields = ptr.Elem()
		typ = fields.Type()
		if typ.Kind() != reflect.Struct {
			err = NewError("assign.invalidStruct", "type", typ)
			return
		}
	default:
		err = NewError("assign.invalidStruct", "type", typ)
		return
	}
	model, modelErr := a.analyzer.Analyze(typ)
	if modelErr != nil {
		err = modelErr
		return
	}
	for _, attr := range model.AttrFields {
		fieldValue := fields.Field(attr.Index)
		if attr.IsPointer() {
			// nil pointer fields are unassigned, not nils
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if attr.IgnoreEmpty && fieldValue.IsZero() {
			continue
		}
		var raw any
		raw, err = rawFieldValue(fieldValue)
		if err != nil {
			return
		}
		err = rec.Set(attr.Ident, raw)
		if err != nil {
			return
		}
	}
	return
}

// rawFieldValue extracts the field's go value. Scalar kinds read without
// interfacing so unexported fields bind fine; richer kinds need exported
// fields.
func rawFieldValue(fieldValue reflect.Value) (raw any, err error) {
	switch fieldValue.Kind() {
	case reflect.Bool:
		raw = fieldValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		raw = fieldValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		raw = fieldValue.Uint()
	case reflect.Float32, reflect.Float64:
		raw = fieldValue.Float()
	case reflect.String:
		raw = fieldValue.String()
	default:
		if !fieldValue.CanInterface() {
			err = NewError("assign.unexportedField", "type", fieldValue.Type())
			return
		}
		raw = fieldValue.Interface()
	}
	return
}
