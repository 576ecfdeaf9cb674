package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{"match", "import", "regions", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "atlas", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestMatchCommand_Flags(t *testing.T) {
	flag := matchCmd.Flags().Lookup("input")
	require.NotNil(t, flag, "match command should have --input flag")

	workers := matchCmd.Flags().Lookup("workers")
	require.NotNil(t, workers, "match command should have --workers flag")
	assert.Equal(t, "0", workers.DefValue)
}

func TestRegionsCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range regionsCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"resolve", "adjacent", "build"} {
		assert.True(t, names[name], "expected regions subcommand %q not found", name)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
