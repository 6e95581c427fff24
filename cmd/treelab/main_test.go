package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"treelab"}, args...))
	return out.String(), err
}

func TestDelete(t *testing.T) {
	out, err := runApp(t, "delete", "50")
	require.NoError(t, err)
	require.Contains(t, out, "levels before: [50 30 70 20 40 60 80]")
	require.Contains(t, out, "50 deleted")
	require.Contains(t, out, "levels after: [60 30 70 20 40 80]")
}

func TestDelete_Missing(t *testing.T) {
	out, err := runApp(t, "delete", "55")
	require.NoError(t, err)
	require.Contains(t, out, "55 not found in tree")
	require.NotContains(t, out, "levels after")
}

func TestDelete_BadArgs(t *testing.T) {
	_, err := runApp(t, "delete")
	require.Error(t, err)

	_, err = runApp(t, "delete", "fifty")
	require.ErrorContains(t, err, "must be an integer")
}

func TestRandom(t *testing.T) {
	out, err := runApp(t, "--seed", "3", "random", "--count", "5", "--max", "20")
	require.NoError(t, err)
	for _, label := range []string{"inserting:", "preorder:", "inorder:", "postorder:", "level-order:"} {
		require.Contains(t, out, label)
	}

	again, err := runApp(t, "--seed", "3", "random", "--count", "5", "--max", "20")
	require.NoError(t, err)
	require.Equal(t, out, again, "a fixed seed must reproduce the report")

	_, err = runApp(t, "random", "--count", "10", "--max", "5")
	require.ErrorIs(t, err, errBadRange)

	_, err = runApp(t, "random", "--count", "-1")
	require.ErrorIs(t, err, errBadRange)
	require.ErrorContains(t, err, "count must be within 0..max")
}

func TestLogLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "error"} {
		_, err := runApp(t, "--log-level", lvl, "depth")
		require.NoError(t, err, lvl)
	}

	out, err := runApp(t, "--log-level", "loud", "depth")
	require.ErrorIs(t, err, errLogLevel)
	require.ErrorContains(t, err, `"loud"`)
	require.NotContains(t, out, "max depth")
}

func TestDistinctValues(t *testing.T) {
	faker := gofakeit.New(11)
	values, err := distinctValues(faker, 20, 20)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, values)

	values, err = distinctValues(faker, 0, 5)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestReports(t *testing.T) {
	out, err := runApp(t, "depth")
	require.NoError(t, err)
	require.Contains(t, out, "max depth: 4")
	require.Contains(t, out, "depth 4: [10 25 35 45]")

	out, err = runApp(t, "full")
	require.NoError(t, err)
	require.Contains(t, out, "full nodes: 3")

	out, err = runApp(t, "symmetric")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "symmetric: true"))
	require.Equal(t, 1, strings.Count(out, "symmetric: false"))

	out, err = runApp(t, "manual")
	require.NoError(t, err)
	require.Contains(t, out, "level-order: [50 30 60 20 40 50 70]")
}

func TestList(t *testing.T) {
	out, err := runApp(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "insert@2:  [42 <-> hello <-> inserted <-> 3.14 <-> true]")
	require.Contains(t, out, "remove@0:  42 -> [hello <-> inserted <-> 3.14 <-> true]")
	require.Contains(t, out, "index of true: 3")
	require.Contains(t, out, "popped 3, stack: [1 <-> 2]")
	require.Contains(t, out, "dequeued A, queue: [B <-> C]")
}

func TestAll(t *testing.T) {
	out, err := runApp(t, "--seed", "9", "all")
	require.NoError(t, err)
	for _, title := range []string{"random values", "Hand-built tree", "Maximum depth", "Nodes with both children", "Symmetry"} {
		require.Contains(t, out, title)
	}
}
