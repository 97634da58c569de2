// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of throughput, in kilobits per second.
const (
	KilobitPerSecond uint64 = 1
	MegabitPerSecond uint64 = 1000 * KilobitPerSecond
	GigabitPerSecond uint64 = 1000 * MegabitPerSecond
)
