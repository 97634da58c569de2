// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ewma

import (
	"errors"
	"fmt"
	"math/bits"
	"sync/atomic"
)

// MaxPrecision is the largest number of fractional bits an Average may
// retain. With a 64-bit internal word this leaves at least 34 bits of
// headroom for the sample and the weight shift applied while blending.
const MaxPrecision = 30

var (
	ErrPrecisionTooHigh = errors.New("precision exceeds maximum fractional bits")
	ErrWeightReciprocal = errors.New("weight reciprocal must be a power of two >= 2")
)

// Average is a fixed-point exponentially weighted moving average. Each
// observed sample contributes weight 1/weightReciprocal and the prior
// estimate contributes the rest, computed entirely with integer shifts.
//
// The internal word holds the estimate scaled by 2^precision. A word of 0
// means no samples have been observed yet; the first sample is stored
// directly rather than blended, so the estimate is never biased toward
// zero by the empty state.
//
// Observe performs one atomic load and one atomic store of the internal
// word. The sequence as a whole is not atomic: concurrent writers may
// lose updates (last write wins). That is acceptable for a telemetry
// estimate; callers needing strict serialization must hold their own
// lock, as NeighborTracker does.
type Average struct {
	precision  uint64
	weightLog2 uint64
	internal   atomic.Uint64
}

// New returns an Average keeping [precision] fractional bits and
// smoothing with weight 1/[weightReciprocal] per sample.
//
// The parameters are validated here, once, so that no arithmetic path
// needs a runtime branch: precision must be in [0, MaxPrecision] and
// weightReciprocal must be a power of two. Sizing samples so that
// value << (precision + log2(weightReciprocal)) fits the 64-bit
// internal word is the caller's responsibility; it holds for any
// 32-bit sample at the maximum precision and weights up to 4.
func New(precision, weightReciprocal uint64) (*Average, error) {
	if precision > MaxPrecision {
		return nil, fmt.Errorf("%w: %d > %d", ErrPrecisionTooHigh, precision, MaxPrecision)
	}
	if weightReciprocal < 2 || bits.OnesCount64(weightReciprocal) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrWeightReciprocal, weightReciprocal)
	}
	return &Average{
		precision:  precision,
		weightLog2: uint64(bits.TrailingZeros64(weightReciprocal)),
	}, nil
}

// Must is New, panicking on invalid parameters. Intended for
// package-level declarations so a bad configuration fails at program
// start rather than skewing estimates silently.
func Must(precision, weightReciprocal uint64) *Average {
	a, err := New(precision, weightReciprocal)
	if err != nil {
		panic(err)
	}
	return a
}

// Observe blends [value] into the average:
//
//	internal = ((internal << w) - internal + (value << precision)) >> w
//
// which is the integer form of new = old + (value - old) / weightReciprocal.
// The first sample is stored directly. A zero first sample is
// indistinguishable from no samples.
func (a *Average) Observe(value uint64) {
	internal := a.internal.Load()
	if internal != 0 {
		internal = (internal<<a.weightLog2 - internal + value<<a.precision) >> a.weightLog2
	} else {
		internal = value << a.precision
	}
	a.internal.Store(internal)
}

// Read returns the current estimate with the fractional bits truncated,
// or 0 if nothing has been observed.
func (a *Average) Read() uint64 {
	return a.internal.Load() >> a.precision
}

// Reset discards all observations.
func (a *Average) Reset() {
	a.internal.Store(0)
}

// Precision returns the number of fractional bits retained.
func (a *Average) Precision() uint64 {
	return a.precision
}

// WeightReciprocal returns the configured smoothing divisor.
func (a *Average) WeightReciprocal() uint64 {
	return 1 << a.weightLog2
}
