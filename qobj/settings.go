// SPDX-License-Identifier: MIT

// Package qobj: process-wide tidy-up policy.
//
// Composite results (tensor products) pass through Tidyup when the policy is
// on. The flags are atomics so concurrent readers never race with a setter.

package qobj

import (
	"math"
	"sync/atomic"
)

const (
	// DefaultAutoTidyup is the initial state of the auto-tidy policy.
	DefaultAutoTidyup = true

	// DefaultAutoTidyupAtol is the initial absolute cutoff used by auto-tidy.
	DefaultAutoTidyupAtol = 1e-12

	panicAtolInvalid = "qobj: SetAutoTidyupAtol: atol must be finite, non-negative"
)

var (
	autoTidyup     atomic.Bool
	autoTidyupAtol atomic.Uint64 // math.Float64bits
)

func init() {
	autoTidyup.Store(DefaultAutoTidyup)
	autoTidyupAtol.Store(math.Float64bits(DefaultAutoTidyupAtol))
}

// SetAutoTidyup switches the auto-tidy policy and returns the previous value.
func SetAutoTidyup(on bool) bool { return autoTidyup.Swap(on) }

// AutoTidyup reports whether freshly built composites are tidied.
func AutoTidyup() bool { return autoTidyup.Load() }

// SetAutoTidyupAtol sets the auto-tidy cutoff and returns the previous value.
// Panics on a negative or non-finite atol (programmer error).
func SetAutoTidyupAtol(atol float64) float64 {
	if atol < 0 || math.IsNaN(atol) || math.IsInf(atol, 0) {
		panic(panicAtolInvalid)
	}

	return math.Float64frombits(autoTidyupAtol.Swap(math.Float64bits(atol)))
}

// AutoTidyupAtol returns the auto-tidy cutoff.
func AutoTidyupAtol() float64 { return math.Float64frombits(autoTidyupAtol.Load()) }
