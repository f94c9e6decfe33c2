// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/wake"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// TestPropertySuspendIdentity: resuming with v resolves to exactly v.
func TestPropertySuspendIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		got := wake.Suspend(func(k wake.Continuation[int]) {
			k.Resume(v)
		})
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

// TestPropertySuspendStringIdentity: identity over a second value type.
func TestPropertySuspendStringIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randString(rng)
		got := wake.Suspend(func(k wake.Continuation[string]) {
			k.Resume(v)
		})
		if got != v {
			t.Fatalf("got %q, want %q", got, v)
		}
	}
}

// TestPropertyThrowingRoundTrip: a throwing suspension resolves to exactly
// the value resumed with, or raises exactly the error thrown.
func TestPropertyThrowingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	errProp := errors.New("property failure")
	for range propertyN {
		v := randInt(rng)
		fail := rng.IntN(2) == 1
		got, err := wake.SuspendThrowing(func(k wake.ThrowingContinuation[int]) {
			if fail {
				k.Throw(errProp)
				return
			}
			k.Resume(v)
		})
		if fail {
			if !errors.Is(err, errProp) {
				t.Fatalf("got err %v, want %v", err, errProp)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

// TestPropertySettleEquivalence: Settle(o) is observably identical to the
// matching primitive resume operation for every o.
func TestPropertySettleEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	errProp := errors.New("property failure")
	for range propertyN {
		v := randInt(rng)
		fail := rng.IntN(2) == 1

		o := wake.Success(v)
		if fail {
			o = wake.Failure[int](errProp)
		}

		direct, directErr := wake.SuspendThrowing(func(k wake.ThrowingContinuation[int]) {
			if fail {
				k.Throw(errProp)
				return
			}
			k.Resume(v)
		})
		settled, settledErr := wake.SuspendThrowing(func(k wake.ThrowingContinuation[int]) {
			k.Settle(o)
		})

		if direct != settled || !errors.Is(settledErr, directErr) {
			t.Fatalf("Settle: (%d, %v) != direct: (%d, %v)",
				settled, settledErr, direct, directErr)
		}
	}
}

// TestPropertyOutcomeOfAgreesWithGet: OutcomeOf then Get round-trips the
// (value, error) pair, modulo the value being dropped on failure.
func TestPropertyOutcomeOfAgreesWithGet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	errProp := errors.New("property failure")
	for range propertyN {
		v := randInt(rng)
		fail := rng.IntN(2) == 1

		var in error
		if fail {
			in = errProp
		}
		got, err := wake.OutcomeOf(v, in).Get()
		if fail {
			if !errors.Is(err, errProp) || got != 0 {
				t.Fatalf("Get() = (%d, %v), want (0, %v)", got, err, errProp)
			}
			continue
		}
		if err != nil || got != v {
			t.Fatalf("Get() = (%d, %v), want (%d, nil)", got, err, v)
		}
	}
}
