package reqparse

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	ErrInvalidDecodeTarget = errors.New("decode target must be a non-nil pointer to a struct")
	ErrDecodeTypeMismatch  = errors.New("namespace value cannot be assigned to field")
)

// DecodeTagName is the struct tag naming the namespace entry of a field.
const DecodeTagName = "arg"

// Decode copies namespace entries into the fields of the struct dst points
// to. A field receives the entry named by its `arg` tag; untagged fields and
// fields tagged "-" are left alone, as are fields whose entry is missing or
// nil.
//
// Values are assigned as-is, converted between numeric kinds, or element by
// element for Append arguments decoded into a typed slice:
//
//	var q struct {
//		Type   string   `arg:"type"`
//		Limit  int64    `arg:"limit"`
//		Keys   []string `arg:"device_key"`
//	}
//	err := ns.Decode(&q)
func (ns *Namespace) Decode(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidDecodeTarget, dst)
	}
	target := rv.Elem()

	for _, field := range fieldsOf(target.Type()) {
		value, ok := ns.Get(field.name)
		if !ok || value == nil {
			continue
		}
		if err := assign(target.Field(field.index), reflect.ValueOf(value)); err != nil {
			return fmt.Errorf("%w: %s (%s): %w", ErrDecodeTypeMismatch, field.name, target.Type().Field(field.index).Name, err)
		}
	}
	return nil
}

// decodeField links a struct field to a namespace entry.
type decodeField struct {
	name  string
	index int
}

// decodeFields caches the tagged fields of each struct type.
var decodeFields sync.Map // reflect.Type -> []decodeField

func fieldsOf(t reflect.Type) []decodeField {
	if cached, ok := decodeFields.Load(t); ok {
		return cached.([]decodeField)
	}

	var fields []decodeField
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup(DecodeTagName)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, decodeField{name: name, index: i})
	}

	actual, _ := decodeFields.LoadOrStore(t, fields)
	return actual.([]decodeField)
}

func assign(field, value reflect.Value) error {
	if value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}

	switch {
	case value.Type().AssignableTo(field.Type()):
		field.Set(value)
		return nil
	case isNumeric(value.Kind()) && isNumeric(field.Kind()) && value.Type().ConvertibleTo(field.Type()):
		field.Set(value.Convert(field.Type()))
		return nil
	case value.Kind() == reflect.Slice && field.Kind() == reflect.Slice:
		out := reflect.MakeSlice(field.Type(), value.Len(), value.Len())
		for i := range value.Len() {
			if err := assign(out.Index(i), value.Index(i)); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		field.Set(out)
		return nil
	default:
		return fmt.Errorf("cannot use %s as %s", value.Type(), field.Type())
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
