// Package result provides a two-variant outcome type for fail-fast pipelines:
// a chain of dependent steps stops at the first failure without exceptions.
package result

// Result carries either a success value or a failure value. Construct through
// Ok and Err; the zero value behaves as Ok of T's zero value.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok builds a successful result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

// Err builds a failed result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, isErr: true}
}

func (r Result[T, E]) IsOk() bool  { return !r.isErr }
func (r Result[T, E]) IsErr() bool { return r.isErr }

// Value returns the success value and whether the result is Ok.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, !r.isErr
}

// Error returns the failure value and whether the result is Err.
func (r Result[T, E]) Error() (E, bool) {
	return r.err, r.isErr
}

// MustValue returns the success value. Calling it on an Err is a programming
// error and panics.
func (r Result[T, E]) MustValue() T {
	if r.isErr {
		panic("result: MustValue called on Err")
	}
	return r.value
}

// Map transforms the success value of an Ok and passes an Err through.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the failure value of an Err and passes an Ok through.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isErr {
		return Err[T, F](f(r.err))
	}
	return Ok[T, F](r.value)
}

// AndThen chains a dependent step. An Err short-circuits: f is never called
// and the failure is returned unchanged.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return f(r.value)
}
