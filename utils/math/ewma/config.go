// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ewma

// Config carries averager parameters through component configuration.
type Config struct {
	// Precision is the number of fractional bits kept in the estimate.
	Precision uint64 `json:"precision"`
	// WeightReciprocal is the smoothing divisor; each sample carries
	// weight 1/WeightReciprocal. Must be a power of two.
	WeightReciprocal uint64 `json:"weightReciprocal"`
}

// Verify returns nil iff the config can produce an Average.
func (c Config) Verify() error {
	_, err := New(c.Precision, c.WeightReciprocal)
	return err
}

// New returns an Average configured by [c].
func (c Config) New() (*Average, error) {
	return New(c.Precision, c.WeightReciprocal)
}
