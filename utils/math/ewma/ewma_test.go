// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ewma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBeforeObserve(t *testing.T) {
	a, err := New(10, 8)
	require.NoError(t, err)
	require.Zero(t, a.Read())
}

func TestFirstSampleStoredDirectly(t *testing.T) {
	tests := []struct {
		precision        uint64
		weightReciprocal uint64
		sample           uint64
	}{
		{precision: 10, weightReciprocal: 8, sample: 50},
		{precision: 0, weightReciprocal: 2, sample: 1},
		{precision: 30, weightReciprocal: 4, sample: 1<<32 - 1},
		{precision: 4, weightReciprocal: 256, sample: 123456},
	}
	for _, test := range tests {
		a, err := New(test.precision, test.weightReciprocal)
		require.NoError(t, err)

		a.Observe(test.sample)
		require.Equal(t, test.sample, a.Read())
	}
}

func TestSteadyState(t *testing.T) {
	a := Must(10, 8)
	for i := 0; i < 5; i++ {
		a.Observe(100)
		require.Equal(t, uint64(100), a.Read())
	}
}

func TestBlending(t *testing.T) {
	a := Must(10, 8)

	// Warm up to a steady 100.
	for i := 0; i < 10; i++ {
		a.Observe(100)
	}
	require.Equal(t, uint64(100), a.Read())

	// 100 + (108-100)/8 = 101
	a.Observe(108)
	require.Equal(t, uint64(101), a.Read())
}

func TestMonotonicConvergence(t *testing.T) {
	const target = 1000

	a := Must(10, 8)
	a.Observe(10)

	prev := a.Read()
	for i := 0; i < 200; i++ {
		a.Observe(target)
		read := a.Read()
		require.GreaterOrEqual(t, read, prev)
		require.LessOrEqual(t, read, uint64(target))
		prev = read
	}
	// Truncation stalls the scaled state one unit short of the target
	// when converging from below, so the estimate settles at target-1.
	require.Equal(t, uint64(target-1), a.Read())
}

func TestZeroFirstSample(t *testing.T) {
	a := Must(10, 8)

	// A zero sample on an empty average leaves the sentinel in place, so
	// the next sample is still treated as the first.
	a.Observe(0)
	require.Zero(t, a.Read())

	a.Observe(100)
	require.Equal(t, uint64(100), a.Read())
}

func TestReset(t *testing.T) {
	a := Must(10, 8)
	a.Observe(100)
	require.Equal(t, uint64(100), a.Read())

	a.Reset()
	require.Zero(t, a.Read())

	a.Observe(42)
	require.Equal(t, uint64(42), a.Read())
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name             string
		precision        uint64
		weightReciprocal uint64
		expectedErr      error
	}{
		{
			name:             "precision too high",
			precision:        31,
			weightReciprocal: 8,
			expectedErr:      ErrPrecisionTooHigh,
		},
		{
			name:             "weight not a power of two",
			precision:        10,
			weightReciprocal: 12,
			expectedErr:      ErrWeightReciprocal,
		},
		{
			name:             "weight of one",
			precision:        10,
			weightReciprocal: 1,
			expectedErr:      ErrWeightReciprocal,
		},
		{
			name:             "weight of zero",
			precision:        10,
			weightReciprocal: 0,
			expectedErr:      ErrWeightReciprocal,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.precision, test.weightReciprocal)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestMaxPrecisionAnyWeight(t *testing.T) {
	// Precision 30 is valid for every power-of-two weight; headroom for
	// oversized samples is the caller's responsibility, not a
	// constructor error.
	for _, weightReciprocal := range []uint64{2, 8, 1024} {
		a, err := New(MaxPrecision, weightReciprocal)
		require.NoError(t, err)

		a.Observe(50)
		require.Equal(t, uint64(50), a.Read())
		a.Observe(50)
		require.Equal(t, uint64(50), a.Read())
	}
}

func TestMustPanics(t *testing.T) {
	require.Panics(t, func() {
		Must(31, 8)
	})
}

func TestConfig(t *testing.T) {
	require.NoError(t, Config{Precision: 10, WeightReciprocal: 8}.Verify())
	require.Error(t, Config{Precision: 10, WeightReciprocal: 3}.Verify())

	a, err := Config{Precision: 10, WeightReciprocal: 8}.New()
	require.NoError(t, err)
	a.Observe(7)
	require.Equal(t, uint64(7), a.Read())
}

func TestGetters(t *testing.T) {
	a := Must(10, 8)
	require.Equal(t, uint64(10), a.Precision())
	require.Equal(t, uint64(8), a.WeightReciprocal())
}
