package fp

import (
	"fmt"
)

// Option holds either a value or nothing. The zero Option is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some wraps v
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None is the absence marker
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }

func (o Option[T]) IsNone() bool { return !o.some }

// Val returns the wrapped value, or the zero value of T for None.
func (o Option[T]) Val() T {
	return o.val
}

// ValOr returns def when there is nothing in option
func (o Option[T]) ValOr(def T) T {
	if o.some {
		return o.val
	}
	return def
}

// Get unpacks option in comma-ok form
func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.val)
}
