package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/forestrie/go-shipsearch/search"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "NOOP"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := execute("search", "--width", "6", "--period", "3", "--offset", "1", "--symmetry", "even")
	require.NoError(t, err)
	require.Contains(t, out, "Status: ship limit")
	require.Contains(t, out, "Ships: 1")
	require.Contains(t, out, "Length: ")
}

func TestSearchDumpPrintResume(t *testing.T) {
	dir := fs.NewDir(t, "shipsearch")

	out, err := execute("search", "-w", "6", "-p", "3", "-k", "1", "-s", "v",
		"--dump-now", "--dump-dir", dir.Path())
	require.NoError(t, err)
	require.Contains(t, out, "Ships: 1")

	dump := dir.Join("dump0001")
	_, err = os.Stat(dump)
	require.NoError(t, err)

	out, err = execute("print", dump)
	require.NoError(t, err)
	require.Contains(t, out, "Rule: B3/S23\nPeriod: 3\nOffset: 1\nWidth: 6\nSymmetry: even\nDepth limit: 2000\n")
	require.Contains(t, out, "Depth: 0\nShips closed: 0\n")

	out, err = execute("resume", dump)
	require.NoError(t, err)
	require.Contains(t, out, "Resuming")
	require.Contains(t, out, "Status: ship limit")
	require.Contains(t, out, "Ships: 1")
}

func TestSearchDumpAndExit(t *testing.T) {
	dir := fs.NewDir(t, "shipsearch")

	out, err := execute("search", "-w", "6", "-p", "3", "-k", "1", "-j", "--dump-dir", dir.Path())
	require.NoError(t, err)
	require.Contains(t, out, "State dumped to "+dir.Join("dump0001"))
	require.NotContains(t, out, "Starting search")

	out, err = execute("resume", dir.Join("dump0001"))
	require.NoError(t, err)
	require.Contains(t, out, "Status: ship limit")
}

func TestSearchConfigFile(t *testing.T) {
	dir := fs.NewDir(t, "shipsearch", fs.WithFile("c3.yaml", `
rule: B3/S23
width: 6
period: 3
offset: 1
symmetry: even
depth_limit: 2000
`))

	out, err := execute("search", "--config", dir.Join("c3.yaml"), "--depth-limit", "10")
	require.NoError(t, err)
	require.Contains(t, out, "Status: depth limit")
	require.Contains(t, out, "Ships: 0")
}

func TestSearchRejectsBadParams(t *testing.T) {
	_, err := execute("search", "--width", "0", "--period", "3", "--offset", "1")
	require.ErrorIs(t, err, search.ErrBadParams)

	_, err = execute("search", "--width", "6", "--period", "3", "--offset", "1", "--rule", "X3")
	require.Error(t, err)

	_, err = execute("resume", "/nonexistent/dump0001")
	require.ErrorIs(t, err, os.ErrNotExist)
}
