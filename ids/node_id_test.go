// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshnet-io/meshkit/utils"
)

func TestNodeIDString(t *testing.T) {
	id := NodeID{0x02, 0x42, 0xac, 0x11, 0x00, 0x02}
	require.Equal(t, "02:42:ac:11:00:02", id.String())
}

func TestNodeIDFromString(t *testing.T) {
	require := require.New(t)

	id := NodeID{0x02, 0x42, 0xac, 0x11, 0x00, 0x02}
	parsed, err := NodeIDFromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)

	_, err = NodeIDFromString("not a hardware address")
	require.Error(err)

	// EUI-64 addresses identify an interface but not a mesh neighbor.
	_, err = NodeIDFromString("02:42:ac:11:00:02:aa:bb")
	require.ErrorIs(err, errWrongNodeIDLength)
}

func TestToNodeID(t *testing.T) {
	require := require.New(t)

	b := []byte{1, 2, 3, 4, 5, 6}
	id, err := ToNodeID(b)
	require.NoError(err)
	require.Equal(b, id.Bytes())

	_, err = ToNodeID([]byte{1, 2, 3})
	require.ErrorIs(err, errWrongNodeIDLength)
}

func TestNodeIDMarshalText(t *testing.T) {
	require := require.New(t)

	id := NodeID{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	text, err := id.MarshalText()
	require.NoError(err)

	var parsed NodeID
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(id, parsed)
}

func TestNodeIDSorting(t *testing.T) {
	ids := []NodeID{
		{0x03, 0, 0, 0, 0, 0},
		{0x01, 0, 0, 0, 0, 0},
		{0x02, 0, 0, 0, 0, 0},
	}
	utils.Sort(ids)
	require.True(t, utils.IsSortedAndUnique(ids))
	require.Equal(t, NodeID{0x01, 0, 0, 0, 0, 0}, ids[0])
}
