// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wake provides a suspension-bridging primitive for cooperative
// tasks in Go.
//
// A task (a goroutine multiplexed by the runtime scheduler) suspends itself
// through [Suspend] or [SuspendThrowing], hands a one-shot resumption handle
// to arbitrary callback-style code, and is later resumed — exactly once —
// with a value or an error, from any goroutine or foreign thread. The
// suspended task occupies no worker thread while parked; resuming enqueues
// the task and returns immediately without running it synchronously.
//
// This is the seam between two execution models: synchronous callback-driven
// completion (timers, I/O completion handlers, foreign APIs) and a
// suspension-based scheduler that must never block a worker while waiting.
//
// # Core API
//
// Two entry points, generic over the success type:
//
//   - [Suspend]: suspend until [Continuation.Resume] delivers a value
//   - [SuspendThrowing]: suspend until [ThrowingContinuation.Resume] delivers
//     a value or [ThrowingContinuation.Throw] delivers an error
//
// Each invokes the supplied operation function exactly once, synchronously,
// with a fresh handle. The operation must not itself suspend; it arranges the
// eventual resumption (directly, or by registering the handle with a
// callback-based subsystem) and returns. The operation always completes
// before the entry point parks, so no resumption can be lost to a race with
// handle registration.
//
// # One-Shot Semantics
//
// Each suspension must be resumed by precisely one resume call, no more, no
// fewer. Handles enforce the upper bound at the boundary: every resume
// variant transitions an atomic one-shot flag, and a second use of a
// panicking variant ([Continuation.Resume], [ThrowingContinuation.Resume],
// [ThrowingContinuation.Throw], [ThrowingContinuation.Settle]) panics
// immediately rather than corrupting the suspended task. The Try variants
// ([Continuation.TryResume], [ThrowingContinuation.TryResume],
// [ThrowingContinuation.TryThrow], [ThrowingContinuation.TrySettle]) report
// false instead of panicking, for callers that race several legitimate
// completion sources against each other.
//
// The lower bound is not checked: a handle that is never resumed leaves its
// task suspended forever. There is no built-in cancellation or timeout
// channel; an operation wanting cancelable suspension must observe
// cancellation itself and resume the handle with a suitable error.
//
// # Outcome
//
// [Outcome] is the combined success/failure value for the throwing world.
// [Success], [Failure] and [OutcomeOf] construct it; [MatchOutcome] and
// [MapOutcome] consume it. [ThrowingContinuation.Settle] dispatches an
// Outcome to exactly one of Resume/Throw, eliminating duplicated branch
// logic in completion callbacks:
//
//	k.Settle(wake.OutcomeOf(client.Do(req)))
//
// # Bridging
//
// Handles are plain values with no thread affinity, so callback-registration
// adapters can store one and resume from within their own callback. Two
// common callback shapes ship as adapters:
//
//   - [Callback]: completion-handler shape func(T, error)
//   - [Notify]: fire-and-forget signal shape func()
//
// # Example
//
//	v, err := wake.SuspendThrowing(func(k wake.ThrowingContinuation[int]) {
//		time.AfterFunc(50*time.Millisecond, func() {
//			k.Resume(42)
//		})
//	})
//	// v == 42, err == nil, ~50ms later; no thread was blocked meanwhile
package wake
