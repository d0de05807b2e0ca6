package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/sortscope/internal/ir"
)

// marshalValues serializes an array of values to canonical JSON.
// A nil slice is stored as [] so the column is never NULL.
func marshalValues(values []int) (string, error) {
	if values == nil {
		values = []int{}
	}
	data, err := ir.MarshalCanonical(values)
	if err != nil {
		return "", fmt.Errorf("marshal values: %w", err)
	}
	return string(data), nil
}

// unmarshalValues parses a stored array of values.
func unmarshalValues(data string) ([]int, error) {
	var values []int
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	if values == nil {
		values = []int{}
	}
	return values, nil
}
