package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/roach88/sortscope/internal/ir"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecording returns a small valid recording. method varies the
// content-addressed ID.
func createTestRecording(method string) ir.Recording {
	return ir.Recording{
		Method:   method,
		Snapshot: []int{3, 1, 2},
		Ops: []ir.Operation{
			ir.Read(0),
			ir.Read(1),
			ir.Swap(0, 1),
			ir.Read(1),
			ir.Read(2),
			ir.Write(1, 2),
			ir.Write(2, 3),
		},
		Final: []int{1, 2, 3},
	}
}
