package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/sortscope/internal/ir"
)

// RecordingInfo is the metadata row of a stored recording, without its log.
type RecordingInfo struct {
	ID            string `json:"id"`
	RunToken      string `json:"run_token"`
	Method        string `json:"method"`
	Length        int    `json:"length"`
	OpCount       int    `json:"op_count"`
	LogHash       string `json:"log_hash"`
	Seq           int64  `json:"seq"`
	EngineVersion string `json:"engine_version"`
	FormatVersion string `json:"format_version"`
}

const recordingInfoColumns = `id, run_token, method, length, op_count, log_hash, seq, engine_version, format_version`

// ReadRecording loads a complete recording: snapshot, log and final values.
// Returns ErrRecordingNotFound if no recording has the ID.
func (s *Store) ReadRecording(ctx context.Context, id string) (ir.Recording, error) {
	var (
		rec      ir.Recording
		length   int
		snapshot string
		final    string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT method, length, snapshot, final
		FROM recordings
		WHERE id = ?
	`, id).Scan(&rec.Method, &length, &snapshot, &final)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Recording{}, fmt.Errorf("read recording %s: %w", id, ErrRecordingNotFound)
	}
	if err != nil {
		return ir.Recording{}, fmt.Errorf("read recording %s: %w", id, err)
	}

	if rec.Snapshot, err = unmarshalValues(snapshot); err != nil {
		return ir.Recording{}, fmt.Errorf("read recording %s: snapshot: %w", id, err)
	}
	if rec.Final, err = unmarshalValues(final); err != nil {
		return ir.Recording{}, fmt.Errorf("read recording %s: final: %w", id, err)
	}
	// An empty final for a non-empty array was written from a nil Final.
	if len(rec.Final) == 0 && length > 0 {
		rec.Final = nil
	}

	if rec.Ops, err = s.ReadOperations(ctx, id, 0, -1); err != nil {
		return ir.Recording{}, err
	}
	return rec, nil
}

// ReadRecordingInfo returns the metadata row for id.
// Returns ErrRecordingNotFound if no recording has the ID.
func (s *Store) ReadRecordingInfo(ctx context.Context, id string) (RecordingInfo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordingInfoColumns+`
		FROM recordings
		WHERE id = ?
	`, id)

	info, err := scanRecordingInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RecordingInfo{}, fmt.Errorf("read recording %s: %w", id, ErrRecordingNotFound)
	}
	if err != nil {
		return RecordingInfo{}, fmt.Errorf("read recording %s: %w", id, err)
	}
	return info, nil
}

// Entry is one logged operation together with its position in the log.
type Entry struct {
	Seq int          `json:"seq"`
	Op  ir.Operation `json:"op"`
}

// ReadOperations returns the log entries of recording id with from <= seq < to,
// in log order. A negative to reads to the end of the log.
//
// Returns an empty slice (not nil) when the range holds no entries.
func (s *Store) ReadOperations(ctx context.Context, id string, from, to int) ([]ir.Operation, error) {
	entries, err := s.readEntries(ctx, id, from, to, "")
	if err != nil {
		return nil, err
	}
	return opsOf(entries), nil
}

// ReadEntries is like ReadOperations but keeps each operation's log
// position. An empty kind matches every operation.
func (s *Store) ReadEntries(ctx context.Context, id string, kind ir.OpKind, from, to int) ([]Entry, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("read operations: unknown kind %q", kind)
	}
	return s.readEntries(ctx, id, from, to, kind)
}

func (s *Store) readEntries(ctx context.Context, id string, from, to int, kind ir.OpKind) ([]Entry, error) {
	if to < 0 {
		to = -1
	}
	// kind = '' matches every row; to = -1 disables the upper bound.
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, idx, other, value
		FROM operations
		WHERE recording_id = ?
		  AND seq >= ?
		  AND (? < 0 OR seq < ?)
		  AND (? = '' OR kind = ?)
		ORDER BY seq ASC
	`, id, from, to, to, string(kind), string(kind))
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e Entry
			k string
		)
		if err := rows.Scan(&e.Seq, &k, &e.Op.Index, &e.Op.Other, &e.Op.Value); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		e.Op.Kind = ir.OpKind(k)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return entries, nil
}

func opsOf(entries []Entry) []ir.Operation {
	ops := make([]ir.Operation, len(entries))
	for i, e := range entries {
		ops[i] = e.Op
	}
	return ops
}

// ListRecordings returns the recordings written under runToken, in write
// order. An empty runToken lists every recording.
//
// Returns an empty slice (not nil) if there are none.
func (s *Store) ListRecordings(ctx context.Context, runToken string) ([]RecordingInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordingInfoColumns+`
		FROM recordings
		WHERE ? = '' OR run_token = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runToken, runToken)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	infos := []RecordingInfo{}
	for rows.Next() {
		info, err := scanRecordingInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return infos, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecordingInfo(row scanner) (RecordingInfo, error) {
	var info RecordingInfo
	err := row.Scan(
		&info.ID,
		&info.RunToken,
		&info.Method,
		&info.Length,
		&info.OpCount,
		&info.LogHash,
		&info.Seq,
		&info.EngineVersion,
		&info.FormatVersion,
	)
	return info, err
}
