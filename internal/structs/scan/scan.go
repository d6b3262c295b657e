// Package scan provides for reading records into structs.
package scan

import (
	"reflect"

	"github.com/chetna1726/attribute-type-casting/internal/records"
	"github.com/chetna1726/attribute-type-casting/internal/structs/models"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// Scanner reads record values into tagged struct fields, materializing
// defaults for attributes never set. Nil values leave fields untouched.
type Scanner interface {
	Scan(rec *records.Record, dest any) (err error)
}

// NewScanner returns a scanner using the given analyzer.
func NewScanner(analyzer models.Analyzer) (scanner Scanner) {
	scanner = &structScanner{analyzer: analyzer}
	return
}

type structScanner struct {
	analyzer models.Analyzer
}

func (s *structScanner) Scan(rec *records.Record, dest any) (err error) {
	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		err = NewError("scan.destNotPointer")
		return
	}
	value := ptr.Elem()
	if value.Kind() != reflect.Struct {
		err = NewError("scan.destValueNotStruct", "type", value.Type())
		return
	}
	model, modelErr := s.analyzer.Analyze(value.Type())
	if modelErr != nil {
		err = modelErr
		return
	}
	for _, attr := range model.AttrFields {
		var v any
		v, err = rec.Get(attr.Ident)
		if err != nil {
			return
		}
		if v == nil {
			continue
		}
		field := value.Field(attr.Index)
		if !field.CanSet() {
			err = NewError("scan.fieldNotSettable", "ident", attr.Ident)
			return
		}
		if attr.IsPointer() {
			elem := reflect.New(field.Type().Elem())
			err = setFieldValue(elem.Elem(), attr, v)
			if err != nil {
				return
			}
			field.Set(elem)
		} else {
			err = setFieldValue(field, attr, v)
			if err != nil {
				return
			}
		}
	}
	return
}

func setFieldValue(field reflect.Value, attr models.AttrFieldModel, v any) (err error) {
	switch value := v.(type) {
	case string:
		if field.Kind() != reflect.String {
			err = fieldValueError(attr, v)
			return
		}
		field.SetString(value)
	case int64:
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if field.OverflowInt(value) {
				err = fieldValueError(attr, v)
				return
			}
			field.SetInt(value)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if value < 0 || field.OverflowUint(uint64(value)) {
				err = fieldValueError(attr, v)
				return
			}
			field.SetUint(uint64(value))
		default:
			err = fieldValueError(attr, v)
		}
	case float64:
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			if field.OverflowFloat(value) {
				err = fieldValueError(attr, v)
				return
			}
			field.SetFloat(value)
		default:
			err = fieldValueError(attr, v)
		}
	case bool:
		if field.Kind() != reflect.Bool {
			err = fieldValueError(attr, v)
			return
		}
		field.SetBool(value)
	default:
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(field.Type()) {
			err = fieldValueError(attr, v)
			return
		}
		field.Set(rv)
	}
	return
}

func fieldValueError(attr models.AttrFieldModel, v any) (err error) {
	err = NewError("scan.invalidFieldValue", "ident", attr.Ident, "type", attr.FieldType, "value", v)
	return
}
