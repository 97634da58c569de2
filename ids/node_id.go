// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"fmt"
	"net"

	"github.com/meshnet-io/meshkit/utils"
)

// NodeIDLen is the length of a link-layer hardware address.
const NodeIDLen = 6

var (
	EmptyNodeID = NodeID{}

	errWrongNodeIDLength = errors.New("wrong NodeID length")

	_ utils.Sortable[NodeID] = NodeID{}
)

// NodeID identifies a mesh neighbor by the hardware address it
// originates from.
type NodeID [NodeIDLen]byte

// Any modification to Bytes will be lost since id is passed-by-value.
func (id NodeID) Bytes() []byte {
	return id[:]
}

func (id NodeID) String() string {
	return net.HardwareAddr(id[:]).String()
}

func (id NodeID) Less(other NodeID) bool {
	return bytes.Compare(id[:], other[:]) < 0
}

func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := NodeIDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ToNodeID attempts to convert a byte slice into a node id.
func ToNodeID(b []byte) (NodeID, error) {
	if len(b) != NodeIDLen {
		return EmptyNodeID, fmt.Errorf("%w: expected %d bytes but got %d", errWrongNodeIDLength, NodeIDLen, len(b))
	}
	var id NodeID
	copy(id[:], b)
	return id, nil
}

// NodeIDFromString is the inverse of NodeID.String().
func NodeIDFromString(s string) (NodeID, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return EmptyNodeID, err
	}
	return ToNodeID(hw)
}
