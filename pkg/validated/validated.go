// Package validated provides an accumulating validation type. Where a result
// chain stops at the first failure, combining validations collects every
// independent failure before anyone looks at the outcome.
package validated

import "enroll/pkg/result"

// Validated carries either a value or the non-empty list of errors that
// prevented one. Construct through Valid and Invalid.
type Validated[E, T any] struct {
	value T
	errs  []E
}

// Valid builds a passed validation.
func Valid[E, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid builds a failed validation. At least one error is required;
// calling with none is a programming error and panics.
func Invalid[E, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		panic("validated: Invalid requires at least one error")
	}
	return Validated[E, T]{errs: errs}
}

func (v Validated[E, T]) IsValid() bool   { return v.errs == nil }
func (v Validated[E, T]) IsInvalid() bool { return v.errs != nil }

// Value returns the validated value and whether the validation passed.
func (v Validated[E, T]) Value() (T, bool) {
	return v.value, v.errs == nil
}

// Errors returns the accumulated errors, nil when valid.
func (v Validated[E, T]) Errors() []E {
	return v.errs
}

// Map transforms the value of a passed validation and passes failures through.
func Map[E, T, U any](v Validated[E, T], f func(T) U) Validated[E, U] {
	if v.errs != nil {
		return Validated[E, U]{errs: v.errs}
	}
	return Valid[E, U](f(v.value))
}

// Combine2 merges two independent validations. Errors concatenate
// left-to-right without deduplication; f runs only when both inputs passed.
func Combine2[E, A, B, C any](a Validated[E, A], b Validated[E, B], f func(A, B) C) Validated[E, C] {
	if a.errs == nil && b.errs == nil {
		return Valid[E, C](f(a.value, b.value))
	}
	errs := make([]E, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)
	return Validated[E, C]{errs: errs}
}

// Combine3 merges three independent validations by repeated pairwise
// combination, preserving declaration order in the accumulated errors.
func Combine3[E, A, B, C, D any](a Validated[E, A], b Validated[E, B], c Validated[E, C], f func(A, B, C) D) Validated[E, D] {
	ab := Combine2(a, b, func(av A, bv B) func(C) D {
		return func(cv C) D { return f(av, bv, cv) }
	})
	return Combine2(ab, c, func(g func(C) D, cv C) D { return g(cv) })
}

// ToResult collapses the accumulating type into the fail-fast type, carrying
// the full error list as the failure value. This is the seam between
// "validate all fields" and "proceed with one sequential pipeline".
func ToResult[E, T any](v Validated[E, T]) result.Result[T, []E] {
	if v.errs != nil {
		return result.Err[T, []E](v.errs)
	}
	return result.Ok[T, []E](v.value)
}
