// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestConfig(t *testing.T) Config {
	config := DefaultConfig(t.TempDir())
	config.DisableWriterDisplaying = true
	return config
}

func TestFactoryMake(t *testing.T) {
	require := require.New(t)

	factory := NewFactory(newTestConfig(t))
	defer factory.Close()

	log, err := factory.Make("mesh")
	require.NoError(err)

	log.Info("link up", zap.String("iface", "mesh0"))
	log.Verbo("suppressed at the default level")

	// Names must be unique within a factory.
	_, err = factory.Make("mesh")
	require.Error(err)
}

func TestFactoryFileOutput(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	config := DefaultConfig(dir)
	config.DisableWriterDisplaying = true

	factory := NewFactory(config)
	defer factory.Close()

	log, err := factory.Make("mesh")
	require.NoError(err)

	log.Info("link up", zap.String("iface", "mesh0"))

	data, err := os.ReadFile(filepath.Join(dir, "mesh.log"))
	require.NoError(err)
	require.Contains(string(data), "INFO")
	require.Contains(string(data), "link up")
	require.Contains(string(data), "mesh0")
}

func TestFactorySetLogLevel(t *testing.T) {
	require := require.New(t)

	factory := NewFactory(newTestConfig(t))
	defer factory.Close()

	log, err := factory.Make("mesh")
	require.NoError(err)
	require.True(log.Enabled(Debug))
	require.False(log.Enabled(Verbo))

	require.NoError(factory.SetLogLevel("mesh", Verbo))
	require.True(log.Enabled(Verbo))

	require.Error(factory.SetLogLevel("unknown", Verbo))
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	n, err := NoLog.Write([]byte("dropped"))
	require.NoError(err)
	require.Equal(7, n)
	require.False(NoLog.Enabled(Fatal))
}
