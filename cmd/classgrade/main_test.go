package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["merge"], "merge subcommand registered")
	assert.True(t, names["final-grades"], "final-grades subcommand registered")
}

func TestMergeCommandFlags(t *testing.T) {
	for _, name := range []string{"rubric", "output", "dump-accumulated", "keep-test-student", "no-task-check"} {
		require.NotNil(t, mergeCmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestFinalGradesCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "ceiling"} {
		require.NotNil(t, finalGradesCmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestCommandsRequireArgs(t *testing.T) {
	assert.Error(t, mergeCmd.Args(mergeCmd, []string{"only-one.xlsx"}))
	assert.NoError(t, mergeCmd.Args(mergeCmd, []string{"a.xlsx", "b.csv"}))
	assert.Error(t, finalGradesCmd.Args(finalGradesCmd, nil))
	assert.NoError(t, finalGradesCmd.Args(finalGradesCmd, []string{"a.csv"}))
}
