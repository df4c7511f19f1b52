// Package outcome carries the result of an operation attempt through the
// request pipeline: either a success (optionally with a value) or a failure
// holding a structured Error. Expected failures are returned as data instead
// of propagating as Go errors, so every layer between the usecase and the
// HTTP boundary handles them uniformly.
//
// Outcomes are created once per attempt through the constructors below and
// are immutable afterwards. The success/failure duality is enforced at
// construction: there is no way to build a succeeded outcome carrying an
// error, and Failure(None) panics.
package outcome

// Outcome is the valueless operation result.
type Outcome struct {
	succeeded bool
	err       Error
}

// Success returns a succeeded marker outcome.
func Success() Outcome {
	return Outcome{succeeded: true, err: None}
}

// Failure returns a failed marker outcome carrying err.
// Passing None is a programmer error and panics: a failure without an error
// would break the duality invariant.
func Failure(err Error) Outcome {
	if err.IsNone() {
		panic("outcome: Failure called with the None error")
	}
	return Outcome{succeeded: false, err: err}
}

// Succeeded reports whether the operation succeeded.
func (o Outcome) Succeeded() bool { return o.succeeded }

// Err returns the carried error; None when the outcome succeeded.
func (o Outcome) Err() Error { return o.err }

// Match invokes onSuccess when the outcome succeeded, otherwise onFailure
// with the carried error. This is how outer layers consume an outcome.
func (o Outcome) Match(onSuccess func(), onFailure func(Error)) {
	if o.succeeded {
		onSuccess()
		return
	}
	onFailure(o.err)
}

// Value is an Outcome that carries a value of type T on success.
type Value[T any] struct {
	Outcome
	value T
}

// SuccessOf returns a succeeded outcome carrying v.
func SuccessOf[T any](v T) Value[T] {
	return Value[T]{Outcome: Success(), value: v}
}

// FailureOf returns a failed outcome typed for T. It exists so generic code
// (the validation stage in particular) can produce a correctly typed failure
// from a handler's declared return type without knowing T's concrete value.
// Like Failure, it panics on None.
func FailureOf[T any](err Error) Value[T] {
	return Value[T]{Outcome: Failure(err)}
}

// Value returns the carried value. Calling it on a failed outcome is a
// programmer error and panics.
func (v Value[T]) Value() T {
	if !v.succeeded {
		panic("outcome: Value called on a failed outcome (" + v.err.Code + ")")
	}
	return v.value
}

// Match invokes onSuccess with the carried value when the outcome succeeded,
// otherwise onFailure with its error.
func Match[T any](v Value[T], onSuccess func(T), onFailure func(Error)) {
	if v.succeeded {
		onSuccess(v.value)
		return
	}
	onFailure(v.err)
}

// FromPtr is the explicit nullable-to-outcome conversion: a nil pointer lifts
// to Failure(NullValue), anything else to a success carrying the pointee.
// It deliberately produces the generic NullValue failure, not a typed
// not-found — callers that mean "not found" should map the miss themselves.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return FailureOf[T](NullValue)
	}
	return SuccessOf(*p)
}
