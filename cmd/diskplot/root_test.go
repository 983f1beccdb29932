package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-disk/disk/diskplot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestDefaultRendersAllFigures(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--out", dir, "--log-level", "error")
	require.NoError(t, err)

	for _, name := range diskplot.Names() {
		info, err := os.Stat(filepath.Join(dir, name+".png"))
		require.NoError(t, err, "figure %s", name)
		assert.Positive(t, info.Size(), "figure %s is empty", name)
	}
}

func TestSinglePlot(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--plot", "rr", "--out", dir, "--log-level", "error")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rr.png", entries[0].Name())
}

func TestCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "figures")

	_, err := execute(t, "--plot", "rr", "--out", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "rr.png"))
}

func TestUnknownPlot(t *testing.T) {
	_, err := execute(t, "--plot", "nope", "--out", t.TempDir(), "--log-level", "error")
	require.ErrorIs(t, err, diskplot.ErrUnknownPlot)
}

func TestUnknownPlotLeavesOutputUntouched(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")

	_, err := execute(t, "--plot", "nope", "--out", dir, "--log-level", "error")
	require.ErrorIs(t, err, diskplot.ErrUnknownPlot)
	assert.NoDirExists(t, dir)
}

func TestList(t *testing.T) {
	out, err := execute(t, "--list")
	require.NoError(t, err)
	assert.Equal(t, diskplot.Names(), strings.Fields(out))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "--list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "rr")
	require.Error(t, err)
}
