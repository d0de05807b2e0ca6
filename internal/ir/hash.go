package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainRecording = "sortscope/recording/v1"
	DomainLog       = "sortscope/log/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RecordingID computes the content-addressed ID of a recording.
//
// The ID covers method, snapshot and the operation log. Final is excluded:
// it is derived from the other three and stored for verification only.
func RecordingID(rec Recording) (string, error) {
	snapshot := rec.Snapshot
	if snapshot == nil {
		snapshot = []int{}
	}
	canonical, err := MarshalCanonical(map[string]any{
		"method":   rec.Method,
		"snapshot": snapshot,
		"ops":      CanonicalOps(rec.Ops),
	})
	if err != nil {
		return "", fmt.Errorf("RecordingID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRecording, canonical), nil
}

// LogHash hashes an operation log alone. Two runs with equal log hashes
// issued the same accesses in the same order.
func LogHash(ops []Operation) (string, error) {
	canonical, err := MarshalCanonical(CanonicalOps(ops))
	if err != nil {
		return "", fmt.Errorf("LogHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainLog, canonical), nil
}
