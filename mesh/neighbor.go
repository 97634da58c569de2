// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package mesh

import (
	"time"

	"github.com/meshnet-io/meshkit/ids"
	"github.com/meshnet-io/meshkit/utils"
	"github.com/meshnet-io/meshkit/utils/math/ewma"
)

var _ utils.Sortable[Neighbor] = Neighbor{}

// DefaultThroughputConfig is the averager configuration used for link
// throughput estimates: 10 fractional bits, each sample weighted 1/8.
var DefaultThroughputConfig = ewma.Config{
	Precision:        10,
	WeightReciprocal: 8,
}

// information we track on a given neighbor
type neighborInfo struct {
	iface      string
	lastSeen   time.Time
	throughput *ewma.Average
}

// Neighbor is a point-in-time snapshot of a tracked single-hop peer.
type Neighbor struct {
	NodeID    ids.NodeID `json:"nodeID"`
	Interface string     `json:"interface"`
	LastSeen  time.Time  `json:"lastSeen"`
	// Throughput is the smoothed link throughput estimate in kbit/s, 0
	// until the first observation.
	Throughput uint64 `json:"throughput"`
}

func (n Neighbor) Less(other Neighbor) bool {
	return n.NodeID.Less(other.NodeID)
}
