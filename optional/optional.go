// Package optional provides a container holding zero or one value.
//
// Finders and min/max style operations return an Optional instead of a
// nil pointer or sentinel error, so callers must handle the not-found case
// explicitly. The zero value is empty.
package optional

import (
	"fmt"

	"github.com/kbukum/streamkit/errors"
)

// Optional holds either a value or nothing.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// OfPtr returns an empty Optional for a nil pointer, otherwise one holding *p.
func OfPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsEmpty reports whether no value is held.
func (o Optional[T]) IsEmpty() bool { return !o.present }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// OrElse returns the value, or other when empty.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value, or the result of fn when empty.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// OrError returns the value, or err when empty. A nil err becomes a
// NOT_FOUND AppError.
func (o Optional[T]) OrError(err error) (T, error) {
	if o.present {
		return o.value, nil
	}
	if err == nil {
		err = errors.NotFound("value", "")
	}
	var zero T
	return zero, err
}

// IfPresent calls fn with the value when one is held.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// IfPresentOrElse calls fn with the value, or orElse when empty.
func (o Optional[T]) IfPresentOrElse(fn func(T), orElse func()) {
	if o.present {
		fn(o.value)
		return
	}
	orElse()
}

// Filter returns o when its value satisfies pred, otherwise an empty Optional.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Empty[T]()
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// Map applies fn to the held value.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(fn(o.value))
}

// FlatMap applies fn to the held value and returns its Optional directly.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return fn(o.value)
}
