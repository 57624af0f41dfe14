package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state patch value for nullable fields: absent (Set == false),
// explicit null (Set && Value == nil) or a value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked when the key is present, so any call marks the value as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// applyTo overwrites *dst when the value is set.
func (o Optional[T]) applyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

// detail returns the value for audit payloads (nil for explicit null).
func (o Optional[T]) detail() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
