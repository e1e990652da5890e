package discord

import (
	"bytes"
	"encoding/json"
)

type undefState uint8

const (
	stateUndefined undefState = iota
	stateNull
	stateValue
)

// UndefinedOr is a tri-state field used throughout partial update payloads.
// It distinguishes "Discord didn't tell us" (undefined, the zero value) from
// "Discord told us it's gone" (null) from a present value.
//
// The JSON mapping relies on the `omitzero` struct tag option: undefined
// fields are omitted on marshal and stay undefined when absent on unmarshal,
// null round-trips as null, and values as values.
type UndefinedOr[T any] struct {
	state undefState
	value T
}

// Some wraps a present value.
func Some[T any](v T) UndefinedOr[T] {
	return UndefinedOr[T]{state: stateValue, value: v}
}

// Null is the explicit-null state.
func Null[T any]() UndefinedOr[T] {
	return UndefinedOr[T]{state: stateNull}
}

// None is the undefined state. Equivalent to the zero value.
func None[T any]() UndefinedOr[T] {
	return UndefinedOr[T]{}
}

func (u UndefinedOr[T]) IsUndefined() bool { return u.state == stateUndefined }
func (u UndefinedOr[T]) IsNull() bool      { return u.state == stateNull }

// Get returns the value and whether one is present.
func (u UndefinedOr[T]) Get() (T, bool) {
	return u.value, u.state == stateValue
}

// MustGet returns the value, panicking if the field is undefined or null.
func (u UndefinedOr[T]) MustGet() T {
	if u.state != stateValue {
		panic("discord: MustGet on a field without a value")
	}
	return u.value
}

// Or returns the value if present, otherwise def.
func (u UndefinedOr[T]) Or(def T) T {
	if u.state == stateValue {
		return u.value
	}
	return def
}

// UnwrapPtr collapses the tri-state into a pointer: nil for undefined and
// null, a pointer to the value otherwise.
func (u UndefinedOr[T]) UnwrapPtr() *T {
	if u.state != stateValue {
		return nil
	}
	v := u.value
	return &v
}

// IsZero reports the undefined state so that `omitzero` drops the field.
func (u UndefinedOr[T]) IsZero() bool {
	return u.state == stateUndefined
}

var jsonNull = []byte("null")

func (u UndefinedOr[T]) MarshalJSON() ([]byte, error) {
	switch u.state {
	case stateValue:
		return json.Marshal(u.value)
	default:
		// Undefined fields should be tagged omitzero and never reach
		// this path; encoding them as null is the closest wire form.
		return jsonNull, nil
	}
}

func (u *UndefinedOr[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*u = UndefinedOr[T]{state: stateNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = UndefinedOr[T]{state: stateValue, value: v}
	return nil
}
