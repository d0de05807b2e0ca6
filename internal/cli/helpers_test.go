package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortscope/internal/ir"
	"github.com/roach88/sortscope/internal/store"
)

// execute runs cmd with args and returns what it wrote to stdout.
// Diagnostics go to a separate buffer so they never reach the output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// createTestDatabase returns the path of a fresh, migrated database.
func createTestDatabase(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())
	return dbPath
}

// swapPair is a two-element recording: read both, swap them.
func swapPair() ir.Recording {
	return ir.Recording{
		Method:   "bubble",
		Snapshot: []int{2, 1},
		Ops:      []ir.Operation{ir.Read(0), ir.Read(1), ir.Swap(0, 1)},
		Final:    []int{1, 2},
	}
}

// writeRecording stores rec under runToken and returns its ID.
func writeRecording(t *testing.T, dbPath, runToken string, rec ir.Recording) string {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	id, _, err := st.WriteRecording(context.Background(), runToken, rec)
	require.NoError(t, err)
	return id
}
