// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}
	for _, level := range levels {
		parsed, err := ToLevel(level.String())
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}
}

func TestToLevelCaseInsensitive(t *testing.T) {
	level, err := ToLevel("debug")
	require.NoError(t, err)
	require.Equal(t, Debug, level)
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("louder")
	require.Error(t, err)
}
