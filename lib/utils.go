package lib

import (
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func Identity[T any](value T) T {
	return value
}

func Square[T Number](value T) T {
	return value * value
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Bounds returns the smallest and the largest value. ok is false for an empty slice.
func Bounds[T constraints.Ordered](values []T) (lower, upper T, ok bool) {
	if len(values) == 0 {
		return lower, upper, false
	}

	lower, upper = values[0], values[0]
	for _, value := range values[1:] {
		lower = Min(lower, value)
		upper = Max(upper, value)
	}

	return lower, upper, true
}
