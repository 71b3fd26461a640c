// detail_field.go — type-safe access to error details.
//
// Overview
//   DetailField provides typed reads of a produced error's details. It
//   complements Details()/Detail(), which return untyped values.
//
// Usage
//   var FUserID = eraro.Field[int64]("user_id")
//
//   err := f.Make("no_user", eraro.KV("user_id", int64(42)))
//   id, ok := FUserID.Get(err) // id=42, ok=true
//
// Caveats
//   • The stored dynamic type must match T exactly; no conversions are made.
//   • Get looks through wrapping: the first *Error on err's chain is used.
package eraro

import (
	"errors"
	"fmt"
)

// DetailField is a typed detail key.
type DetailField[T any] struct {
	key string
}

// Field constructs a DetailField[T] for key.
func Field[T any](key string) DetailField[T] {
	return DetailField[T]{key: key}
}

// Fields for the details populated when wrapping.
var (
	OrigField    = Field[error](DetailOrig)
	MessageField = Field[string](DetailMessage)
	ErrMsgField  = Field[string](DetailErrMsg)
	ErrLineField = Field[string](DetailErrLine)
)

// Key returns the underlying detail key.
func (f DetailField[T]) Key() string { return f.key }

// Get returns the typed value stored under the key. It returns (zero, false)
// if err holds no *Error, the key is absent, or the value is not a T.
func (f DetailField[T]) Get(err error) (T, bool) {
	var zero T
	var e *Error
	if !errors.As(err, &e) {
		return zero, false
	}
	v, ok := e.details[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is like Get but panics when the value is missing or has another
// type. Intended for tests.
func (f DetailField[T]) MustGet(err error) T {
	var zero T
	var e *Error
	if !errors.As(err, &e) {
		panic(fmt.Errorf("eraro.DetailField[%T](%q): no eraro error in chain", zero, f.key))
	}
	v, ok := e.details[f.key]
	if !ok {
		panic(fmt.Errorf("eraro.DetailField[%T](%q): detail missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("eraro.DetailField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
