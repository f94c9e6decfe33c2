// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Adapters from the suspension world to common callback shapes.
// Each returned function inherits the one-shot semantics of the handle it
// wraps: invoking it a second time panics like the underlying resume.

// Callback adapts a throwing continuation to the completion-handler shape
// func(value, error). Registering the returned function with a
// callback-based API settles the suspension from within the callback:
//
//	v, err := wake.SuspendThrowing(func(k wake.ThrowingContinuation[Reply]) {
//		client.Fetch(req, wake.Callback(k))
//	})
func Callback[T any](k ThrowingContinuation[T]) func(T, error) {
	return func(v T, err error) {
		k.Settle(OutcomeOf(v, err))
	}
}

// Notify adapts a unit continuation to the fire-and-forget signal shape
// func(), for APIs that report completion without a payload:
//
//	wake.Suspend(func(k wake.Continuation[wake.Unit]) {
//		watcher.OnReady(wake.Notify(k))
//	})
func Notify(k Continuation[Unit]) func() {
	return func() {
		k.Resume(Unit{})
	}
}
