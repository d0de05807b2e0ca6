package store

import (
	"context"
	"fmt"
)

// RunState summarizes everything one run token recorded.
type RunState struct {
	RunToken   string          `json:"run_token"`
	Recordings []RecordingInfo `json:"recordings"`
	TotalOps   int             `json:"total_ops"`
	LastSeq    int64           `json:"last_seq"`
}

// GetRunState returns the recordings of a run along with their total log
// size. A run with no recordings yields an empty state, not an error.
func (s *Store) GetRunState(ctx context.Context, runToken string) (RunState, error) {
	state := RunState{RunToken: runToken}

	infos, err := s.ListRecordings(ctx, runToken)
	if err != nil {
		return state, fmt.Errorf("get run state: %w", err)
	}
	state.Recordings = infos

	for _, info := range infos {
		state.TotalOps += info.OpCount
		state.LastSeq = max(state.LastSeq, info.Seq)
	}
	return state, nil
}

// ListRunTokens returns every run token in the order its first recording
// was written.
func (s *Store) ListRunTokens(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_token
		FROM recordings
		GROUP BY run_token
		ORDER BY MIN(seq) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list run tokens: %w", err)
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scan run token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run tokens: %w", err)
	}
	return tokens, nil
}

// GetLastSeq returns the highest recording seq, or 0 for an empty store.
func (s *Store) GetLastSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM recordings`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("get last seq: %w", err)
	}
	return seq, nil
}
