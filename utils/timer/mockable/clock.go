// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import "time"

// Clock acts as a thin wrapper around global time that allows for easy
// testing.
type Clock struct {
	faked bool
	time  time.Time
}

// Set the time on the clock.
func (c *Clock) Set(time time.Time) {
	c.faked = true
	c.time = time
}

// Advance moves a faked clock forward by [d].
func (c *Clock) Advance(d time.Duration) {
	c.Set(c.Time().Add(d))
}

// Sync this clock with global time.
func (c *Clock) Sync() {
	c.faked = false
}

// Time returns the time on this clock.
func (c *Clock) Time() time.Time {
	if c.faked {
		return c.time
	}
	return time.Now()
}
