package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/sortscope/internal/ir"
)

// WriteRecording stores rec under runToken and returns its content-addressed
// ID and whether a new row was inserted.
//
// The recording row and every operation commit in one transaction. Uses
// ON CONFLICT(id) DO NOTHING for idempotency: writing a recording that
// already exists (from any run) returns its ID and inserted=false, and the
// stored run token is left unchanged.
func (s *Store) WriteRecording(ctx context.Context, runToken string, rec ir.Recording) (id string, inserted bool, err error) {
	if err := rec.Validate(); err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}

	id, err = ir.RecordingID(rec)
	if err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}
	logHash, err := ir.LogHash(rec.Ops)
	if err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}
	snapshot, err := marshalValues(rec.Snapshot)
	if err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}
	final, err := marshalValues(rec.Final)
	if err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("write recording: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM recordings`).Scan(&seq); err != nil {
		return "", false, fmt.Errorf("write recording: next seq: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO recordings
		(id, run_token, method, length, snapshot, final, op_count, log_hash, seq, engine_version, format_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		runToken,
		rec.Method,
		rec.Len(),
		snapshot,
		final,
		len(rec.Ops),
		logHash,
		seq,
		ir.EngineVersion,
		ir.FormatVersion,
	)
	if err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("write recording: rows affected: %w", err)
	}
	if rows == 0 {
		return id, false, nil
	}

	if err := writeOperations(ctx, tx, id, rec.Ops); err != nil {
		return "", false, fmt.Errorf("write recording: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("write recording: commit: %w", err)
	}

	s.logger.Debug("recording written",
		"id", id,
		"run_token", runToken,
		"method", rec.Method,
		"ops", len(rec.Ops))
	return id, true, nil
}

// writeOperations inserts the log one row per operation, seq = position.
func writeOperations(ctx context.Context, tx *sql.Tx, id string, ops []ir.Operation) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO operations (recording_id, seq, kind, idx, other, value)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare operations: %w", err)
	}
	defer stmt.Close()

	for seq, op := range ops {
		if _, err := stmt.ExecContext(ctx, id, seq, string(op.Kind), op.Index, op.Other, op.Value); err != nil {
			return fmt.Errorf("insert operation %d: %w", seq, err)
		}
	}
	return nil
}
