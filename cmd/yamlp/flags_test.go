package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_RegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cmd.ParseFlags([]string{"-F", "-W", "80", "-f", "doc.yaml"})
	require.NoError(t, err)

	assert.True(t, cfg.ForceFlow)
	assert.False(t, cfg.Shallow)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, "doc.yaml", cfg.File)
	assert.True(t, cmd.Flags().Changed(cfg.Flags.Width))
}

func TestConfig_RegisterFlags_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cmd.ParseFlags(nil))

	assert.False(t, cfg.ForceFlow)
	assert.False(t, cfg.Shallow)
	assert.Equal(t, 0, cfg.Width)
	assert.Empty(t, cfg.File)
	assert.False(t, cmd.Flags().Changed(cfg.Flags.Width))
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	_, ok := cmd.GetFlagCompletionFunc("log-level")
	assert.True(t, ok)
}
