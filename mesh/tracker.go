// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package mesh

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/meshnet-io/meshkit/ids"
	"github.com/meshnet-io/meshkit/utils"
	"github.com/meshnet-io/meshkit/utils/heap"
	"github.com/meshnet-io/meshkit/utils/logging"
	"github.com/meshnet-io/meshkit/utils/math/ewma"
	"github.com/meshnet-io/meshkit/utils/set"
	"github.com/meshnet-io/meshkit/utils/timer/mockable"
)

// Tracks the estimated link throughput of single-hop neighbors,
// preferring the neighbor with the best smoothed estimate when asked to
// pick a forwarding target.
//
// Each neighbor record owns one averager, created with the record and
// dropped with it. All averager updates happen under [lock]; the
// averager itself tolerates unsynchronized use but route selection
// wants a consistent table.
type NeighborTracker struct {
	lock sync.RWMutex
	// All neighbors we have heard from
	neighbors map[ids.NodeID]*neighborInfo
	// Neighbors whose most recent throughput observation was nonzero
	responsiveNeighbors set.Set[ids.NodeID]
	// Max heap of neighbors by smoothed throughput
	throughputHeap heap.Map[ids.NodeID, *ewma.Average]
	// Mesh-wide smoothed throughput, only used for metrics
	averageThroughput *ewma.Average

	averagerConfig ewma.Config
	clock          mockable.Clock
	log            logging.Logger

	numNeighbors            prometheus.Gauge
	numResponsiveNeighbors  prometheus.Gauge
	averageThroughputMetric prometheus.Gauge
}

func NewNeighborTracker(
	log logging.Logger,
	metricsNamespace string,
	registerer prometheus.Registerer,
	averagerConfig ewma.Config,
) (*NeighborTracker, error) {
	averageThroughput, err := averagerConfig.New()
	if err != nil {
		return nil, err
	}

	t := &NeighborTracker{
		neighbors:           make(map[ids.NodeID]*neighborInfo),
		responsiveNeighbors: make(set.Set[ids.NodeID]),
		throughputHeap: heap.NewMap[ids.NodeID, *ewma.Average](func(a, b *ewma.Average) bool {
			return a.Read() > b.Read()
		}),
		averageThroughput: averageThroughput,
		averagerConfig:    averagerConfig,
		log:               log,
		numNeighbors: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "num_neighbors",
				Help:      "number of tracked neighbors",
			},
		),
		numResponsiveNeighbors: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "num_responsive_neighbors",
				Help:      "number of neighbors whose last throughput observation was nonzero",
			},
		),
		averageThroughputMetric: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "average_throughput",
				Help:      "mesh-wide smoothed link throughput (kbit/s)",
			},
		),
	}

	err = utils.Err(
		registerer.Register(t.numNeighbors),
		registerer.Register(t.numResponsiveNeighbors),
		registerer.Register(t.averageThroughputMetric),
	)
	return t, err
}

// Connected should be called when a neighbor is first heard from on
// [iface]. Re-connecting an already tracked neighbor keeps its
// throughput history so an interface flap doesn't zero the estimate.
func (t *NeighborTracker) Connected(nodeID ids.NodeID, iface string) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := t.clock.Time()
	if n, ok := t.neighbors[nodeID]; ok {
		t.log.Debug(
			"neighbor already tracked",
			zap.Stringer("nodeID", nodeID),
			zap.String("iface", iface),
		)
		n.iface = iface
		n.lastSeen = now
		return nil
	}

	throughput, err := t.averagerConfig.New()
	if err != nil {
		return err
	}
	t.neighbors[nodeID] = &neighborInfo{
		iface:      iface,
		lastSeen:   now,
		throughput: throughput,
	}
	t.numNeighbors.Set(float64(len(t.neighbors)))
	t.log.Debug(
		"tracking neighbor",
		zap.Stringer("nodeID", nodeID),
		zap.String("iface", iface),
	)
	return nil
}

// Disconnected should be called when [nodeID] is no longer a neighbor.
// The throughput history is dropped with the record.
func (t *NeighborTracker) Disconnected(nodeID ids.NodeID) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.throughputHeap.Remove(nodeID)
	t.responsiveNeighbors.Remove(nodeID)
	delete(t.neighbors, nodeID)
	t.numNeighbors.Set(float64(len(t.neighbors)))
	t.numResponsiveNeighbors.Set(float64(t.responsiveNeighbors.Len()))
}

// ObserveThroughput records that we measured [throughput] kbit/s on the
// link to [nodeID]. A zero observation marks the neighbor unresponsive
// but still decays its estimate.
func (t *NeighborTracker) ObserveThroughput(nodeID ids.NodeID, throughput uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	n := t.neighbors[nodeID]
	if n == nil {
		// we haven't heard a Connected for this neighbor, nothing to do here
		t.log.Debug("throughput observation for untracked neighbor", zap.Stringer("nodeID", nodeID))
		return
	}

	n.lastSeen = t.clock.Time()
	n.throughput.Observe(throughput)
	// Push re-heapifies the existing entry, so the ordering tracks the
	// mutated averager.
	t.throughputHeap.Push(nodeID, n.throughput)

	if throughput == 0 {
		t.responsiveNeighbors.Remove(nodeID)
	} else {
		t.responsiveNeighbors.Add(nodeID)
		t.averageThroughput.Observe(throughput)
		t.averageThroughputMetric.Set(float64(t.averageThroughput.Read()))
	}
	t.numResponsiveNeighbors.Set(float64(t.responsiveNeighbors.Len()))

	t.log.Verbo(
		"observed link throughput",
		zap.Stringer("nodeID", nodeID),
		zap.Uint64("throughput", throughput),
		zap.Uint64("smoothed", n.throughput.Read()),
	)
}

// Throughput returns the current smoothed estimate for [nodeID] in
// kbit/s. The second return value is false if the neighbor is unknown.
func (t *NeighborTracker) Throughput(nodeID ids.NodeID) (uint64, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	n, ok := t.neighbors[nodeID]
	if !ok {
		return 0, false
	}
	return n.throughput.Read(), true
}

// BestNeighbor returns the neighbor with the highest smoothed
// throughput, for route-selection scoring.
func (t *NeighborTracker) BestNeighbor() (ids.NodeID, uint64, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	nodeID, throughput, ok := t.throughputHeap.Peek()
	if !ok {
		return ids.EmptyNodeID, 0, false
	}
	return nodeID, throughput.Read(), true
}

// Neighbors returns a snapshot of the table sorted by node ID.
func (t *NeighborTracker) Neighbors() []Neighbor {
	t.lock.RLock()
	defer t.lock.RUnlock()

	neighbors := make([]Neighbor, 0, len(t.neighbors))
	for nodeID, n := range t.neighbors {
		neighbors = append(neighbors, Neighbor{
			NodeID:     nodeID,
			Interface:  n.iface,
			LastSeen:   n.lastSeen,
			Throughput: n.throughput.Read(),
		})
	}
	utils.Sort(neighbors)
	return neighbors
}

// Size returns the number of tracked neighbors.
func (t *NeighborTracker) Size() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return len(t.neighbors)
}
