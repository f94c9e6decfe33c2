// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"sync/atomic"
)

// suspension is the continuation state of a task parked in [Suspend].
// The one-element buffer is what makes resuming an enqueue rather than a
// rendezvous: the send completes immediately and the resumer never waits
// for the task to run.
type suspension[T any] struct {
	used atomic.Uintptr
	ch   chan T
}

// throwingSuspension is the continuation state of a task parked in
// [SuspendThrowing]. The channel carries the combined success/failure value.
type throwingSuspension[T any] struct {
	used atomic.Uintptr
	ch   chan Outcome[T]
}

// Continuation is the one-shot capability to resume a task suspended by
// [Suspend]. It is a plain value with no thread affinity: copy it, store it
// in a callback registry, and resume from any goroutine or foreign thread.
//
// Continuation enforces affine semantics: across all copies of a handle,
// Resume may be called at most once. Calling Resume twice panics; TryResume
// is the non-panicking variant. A handle that is never resumed leaves its
// task suspended forever.
type Continuation[T any] struct {
	s *suspension[T]
}

// Resume enqueues the suspended task with a successful result and returns
// immediately; the task does not run inside this call.
// Panics if the continuation has already been resumed.
func (k Continuation[T]) Resume(v T) {
	if k.s.used.Add(1) != 1 {
		panic("wake: continuation resumed twice")
	}
	k.s.ch <- v
}

// TryResume attempts to enqueue the suspended task with a successful result.
// Returns true if this call delivered, or false if the continuation had
// already been resumed.
func (k Continuation[T]) TryResume(v T) bool {
	if k.s.used.Add(1) != 1 {
		return false
	}
	k.s.ch <- v
	return true
}

// ThrowingContinuation is the one-shot capability to resume a task suspended
// by [SuspendThrowing], with either a value or an error. Like [Continuation]
// it is a plain value with no thread affinity.
//
// Exactly one of Resume, Throw, or Settle may be called across all copies of
// a handle; a second call to any of them panics. The Try variants report
// false instead.
type ThrowingContinuation[T any] struct {
	s *throwingSuspension[T]
}

// Resume enqueues the suspended task with a successful result and returns
// immediately. Panics if the continuation has already been resumed.
func (k ThrowingContinuation[T]) Resume(v T) {
	if k.s.used.Add(1) != 1 {
		panic("wake: throwing continuation resumed twice")
	}
	k.s.ch <- Success(v)
}

// Throw enqueues the suspended task with a failure; the task observes err as
// the error return of [SuspendThrowing]. Panics if the continuation has
// already been resumed.
func (k ThrowingContinuation[T]) Throw(err error) {
	if k.s.used.Add(1) != 1 {
		panic("wake: throwing continuation resumed twice")
	}
	k.s.ch <- Failure[T](err)
}

// TryResume attempts to enqueue the suspended task with a successful result.
// Returns true if this call delivered, or false if the continuation had
// already been resumed.
func (k ThrowingContinuation[T]) TryResume(v T) bool {
	if k.s.used.Add(1) != 1 {
		return false
	}
	k.s.ch <- Success(v)
	return true
}

// TryThrow attempts to enqueue the suspended task with a failure.
// Returns true if this call delivered, or false if the continuation had
// already been resumed.
func (k ThrowingContinuation[T]) TryThrow(err error) bool {
	if k.s.used.Add(1) != 1 {
		return false
	}
	k.s.ch <- Failure[T](err)
	return true
}

// Settle dispatches the outcome to exactly one of Resume or Throw.
// Observably identical to calling the matching operation directly; provided
// so completion callbacks holding a (value, error) pair need no branch of
// their own. Panics if the continuation has already been resumed.
func (k ThrowingContinuation[T]) Settle(o Outcome[T]) {
	if o.IsFailure() {
		k.Throw(o.err)
		return
	}
	k.Resume(o.value)
}

// TrySettle attempts to dispatch the outcome to exactly one of TryResume or
// TryThrow. Returns true if this call delivered.
func (k ThrowingContinuation[T]) TrySettle(o Outcome[T]) bool {
	if o.IsFailure() {
		return k.TryThrow(o.err)
	}
	return k.TryResume(o.value)
}
