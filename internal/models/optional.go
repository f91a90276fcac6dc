package models

import (
	"encoding/json"
	"reflect"
)

// Optional is a request field that remembers whether the client sent it.
// An absent key leaves Set false; an explicit null sets Set with a nil Value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a field that was sent with v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a field that was sent as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON records the key as sent. A value of the wrong type comes
// back as *json.UnmarshalTypeError so the decoder can name the field.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	if string(data) == "null" {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return typeErr
		}
		return &json.UnmarshalTypeError{Value: jsonKind(data), Type: reflect.TypeOf(v)}
	}
	o.Value = &v
	return nil
}

// ValidationValue is what validator tags see: the *T, nil when absent or null.
func (o Optional[T]) ValidationValue() interface{} {
	return o.Value
}

// Apply copies the field onto dst when it was sent, so null clears dst.
func (o Optional[T]) Apply(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "value"
	}
	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}
