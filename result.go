package restokit

// Result is a two-variant outcome wrapper: it carries either a success value
// of type T or a Failure, never both. The zero value is a success holding the
// zero value of T; code inside this package only ever builds results through
// Success and Fail.
//
// Results are immutable. Consumers branch with Fold, or use the total
// ValueOrNil/FailureOrNil accessors when a nil check is more convenient.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Success wraps a value in the success variant.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a Failure in the failure variant.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{failure: &f}
}

// IsSuccess reports whether the success variant is populated.
func (r Result[T]) IsSuccess() bool { return r.failure == nil }

// IsFailure reports whether the failure variant is populated.
func (r Result[T]) IsFailure() bool { return r.failure != nil }

// ValueOrNil returns a pointer to the success value, or nil on the failure
// variant. It never panics. The pointee is a copy, so mutating it does not
// affect the Result.
func (r Result[T]) ValueOrNil() *T {
	if r.failure != nil {
		return nil
	}
	v := r.value
	return &v
}

// FailureOrNil returns a copy of the failure, or nil on the success variant.
// It never panics.
func (r Result[T]) FailureOrNil() *Failure {
	if r.failure == nil {
		return nil
	}
	f := *r.failure
	return &f
}

// Fold consumes a Result by dispatching to exactly one of the two handlers,
// synchronously, and returns whatever the chosen handler returns. This is the
// blessed way for callers to branch on an outcome.
//
// Fold is a package-level function because Go methods cannot introduce the
// extra type parameter R.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(Failure) R) R {
	if r.failure != nil {
		return onFailure(*r.failure)
	}
	return onSuccess(r.value)
}

// Map transforms the success value and rewraps it; the failure variant passes
// through untouched and fn is never called on it.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.failure != nil {
		return Fail[U](*r.failure)
	}
	return Success(fn(r.value))
}

// FlatMap sequences two fallible steps: fn replaces the success value with a
// whole new Result, while the failure variant passes through untouched.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.failure != nil {
		return Fail[U](*r.failure)
	}
	return fn(r.value)
}
