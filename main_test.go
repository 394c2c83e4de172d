package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"endpoint", "line"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config-dir"))
	assert.Equal(t, Version, cmd.Version)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := newRootCommand()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	require.Equal(t, "serve", serve.Name())

	for _, name := range []string{"addr", "provider", "model", "base-url", "env-file", "log-level"} {
		assert.NotNil(t, serve.Flags().Lookup(name), name)
	}
}
