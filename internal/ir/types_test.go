package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationConstructors(t *testing.T) {
	assert.Equal(t, Operation{Kind: OpRead, Index: 4}, Read(4))
	assert.Equal(t, Operation{Kind: OpWrite, Index: 1, Value: 9}, Write(1, 9))
	assert.Equal(t, Operation{Kind: OpSwap, Index: 2, Other: 5}, Swap(2, 5))
}

func TestOperationApply(t *testing.T) {
	values := []int{3, 1, 4, 2}

	Read(0).Apply(values)
	assert.Equal(t, []int{3, 1, 4, 2}, values)

	Write(2, 9).Apply(values)
	assert.Equal(t, []int{3, 1, 9, 2}, values)

	Swap(0, 3).Apply(values)
	assert.Equal(t, []int{2, 1, 9, 3}, values)
}

func TestOperationInBounds(t *testing.T) {
	assert.True(t, Read(3).InBounds(4))
	assert.False(t, Read(4).InBounds(4))
	assert.False(t, Read(-1).InBounds(4))
	assert.True(t, Swap(0, 3).InBounds(4))
	assert.False(t, Swap(0, 4).InBounds(4))
	assert.True(t, Write(0, 100).InBounds(1), "value is not an index")
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "list[2]", Read(2).String())
	assert.Equal(t, "list[1] = 5", Write(1, 5).String())
	assert.Equal(t, "swap(0, 3)", Swap(0, 3).String())
}

func TestOpKindValid(t *testing.T) {
	assert.True(t, OpRead.Valid())
	assert.True(t, OpWrite.Valid())
	assert.True(t, OpSwap.Valid())
	assert.False(t, OpKind("get").Valid())
}

func TestRecordingValidate(t *testing.T) {
	rec := Recording{
		Method:   "selection",
		Snapshot: []int{2, 1},
		Ops:      []Operation{Read(0), Read(1), Swap(0, 1)},
		Final:    []int{1, 2},
	}
	require.NoError(t, rec.Validate())
	assert.Equal(t, 2, rec.Len())

	bad := rec
	bad.Ops = []Operation{Swap(0, 2)}
	assert.ErrorContains(t, bad.Validate(), "out of range")

	bad = rec
	bad.Final = []int{1}
	assert.ErrorContains(t, bad.Validate(), "final length")

	bad = rec
	bad.Ops = []Operation{{Kind: "peek"}}
	assert.ErrorContains(t, bad.Validate(), "unknown kind")
}
