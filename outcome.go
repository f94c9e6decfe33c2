// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Outcome represents the combined result of a throwing suspension: either a
// success carrying a value of type T, or a failure carrying a non-nil error.
// An Outcome with a nil error is a success, matching Go's (T, error)
// convention.
type Outcome[T any] struct {
	value T
	err   error
}

// Success creates a successful outcome.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Failure creates a failed outcome. err must be non-nil; a nil err yields a
// success carrying the zero value.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// OutcomeOf adapts Go's idiomatic (value, error) return pair to an Outcome.
// A non-nil err wins; the value is kept only on success.
//
//	k.Settle(wake.OutcomeOf(fetch(url)))
func OutcomeOf[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{err: err}
	}
	return Outcome[T]{value: v}
}

// IsSuccess returns true if this outcome carries a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// IsFailure returns true if this outcome carries an error.
func (o Outcome[T]) IsFailure() bool {
	return o.err != nil
}

// Value returns the success value and true, or zero and false.
func (o Outcome[T]) Value() (T, bool) {
	if o.err != nil {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Err returns the failure error, or nil for a success.
func (o Outcome[T]) Err() error {
	return o.err
}

// Get unpacks the outcome back into Go's (value, error) pair.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// MatchOutcome pattern matches on the outcome, calling onSuccess or onFailure.
func MatchOutcome[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func(error) R) R {
	if o.err != nil {
		return onFailure(o.err)
	}
	return onSuccess(o.value)
}

// MapOutcome applies a function to the success value. Failures pass through
// unchanged.
func MapOutcome[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	return Outcome[U]{value: f(o.value)}
}
