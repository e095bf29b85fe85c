package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestValidateCommand(t *testing.T) {
	out := runCommand(t, "validate", "testdata/example.txt")
	assert.Equal(t, "3 machines\n", out)
}

func TestSolveCommand(t *testing.T) {
	out := runCommand(t, "solve", "--variant", "joltage", "testdata/example.txt")
	assert.Contains(t, out, "joltage total: 9")
	assert.Contains(t, out, "machine 2: joltage=UNSAT")
}

func TestSolveCommandBothVariants(t *testing.T) {
	out := runCommand(t, "solve", "--workers", "2", "testdata/example.txt")
	assert.Contains(t, out, "toggle total: 4")
	assert.Contains(t, out, "joltage total: 9")
}

func TestSolveCommandBadVariant(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", "--variant", "bogus", "testdata/example.txt"})
	assert.Error(t, cmd.Execute())
}

func TestValidateCommandBadInput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", "testdata/missing.txt"})
	assert.Error(t, cmd.Execute())
}
