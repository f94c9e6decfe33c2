// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Unit is the value type for suspensions that deliver no payload.
// Resume a Continuation[Unit] with Resume(Unit{}), or adapt it with [Notify].
type Unit = struct{}

// Suspend parks the calling task until the continuation is resumed, then
// returns the delivered value. It cannot observe a failure; use
// [SuspendThrowing] for operations that can fail.
//
// The operation op is invoked exactly once, synchronously, with a fresh
// [Continuation] before the task parks. op must not suspend: it arranges the
// eventual single resumption — directly, or by registering the handle with a
// callback-based subsystem — and returns. The parked task occupies no worker
// thread while it waits.
func Suspend[T any](op func(Continuation[T])) T {
	s := &suspension[T]{ch: make(chan T, 1)}
	op(Continuation[T]{s: s})
	return <-s.ch
}

// SuspendThrowing parks the calling task until the continuation is resumed,
// then returns the delivered value, or the delivered error if the
// continuation was resumed via [ThrowingContinuation.Throw].
//
// The operation op follows the same contract as in [Suspend].
func SuspendThrowing[T any](op func(ThrowingContinuation[T])) (T, error) {
	s := &throwingSuspension[T]{ch: make(chan Outcome[T], 1)}
	op(ThrowingContinuation[T]{s: s})
	o := <-s.ch
	return o.value, o.err
}
