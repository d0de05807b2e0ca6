package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortscope/internal/ir"
)

func TestArray_RecordsInCallOrder(t *testing.T) {
	a := New([]int{3, 1, 4, 2})

	assert.Equal(t, 3, a.Get(0))
	a.Set(1, 7)
	a.Swap(2, 3)

	assert.Equal(t, []ir.Operation{ir.Read(0), ir.Write(1, 7), ir.Swap(2, 3)}, a.Ops())
	assert.Equal(t, []int{3, 7, 2, 4}, a.Values())
	assert.Equal(t, []int{3, 1, 4, 2}, a.Snapshot(), "snapshot never changes")
	assert.Equal(t, 3, a.OpCount())
}

func TestArray_CopiesInput(t *testing.T) {
	input := []int{2, 1}
	a := New(input)
	a.Swap(0, 1)

	assert.Equal(t, []int{2, 1}, input, "caller's slice must not be mutated")

	values := a.Values()
	values[0] = 99
	assert.Equal(t, 1, a.Get(0), "Values returns a copy")
}

func TestArray_IndexOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a *Array)
	}{
		{"get past end", func(a *Array) { a.Get(4) }},
		{"get negative", func(a *Array) { a.Get(-1) }},
		{"set past end", func(a *Array) { a.Set(4, 1) }},
		{"swap first", func(a *Array) { a.Swap(4, 0) }},
		{"swap second", func(a *Array) { a.Swap(0, 4) }},
		{"slice past end", func(a *Array) { a.Slice(0, 5) }},
		{"slice inverted", func(a *Array) { a.Slice(3, 2) }},
		{"slice negative", func(a *Array) { a.Slice(-1, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New([]int{3, 1, 4, 2})
			err := Capture(func() { tt.fn(a) })
			require.Error(t, err)

			ce, ok := IsContractError(err)
			require.True(t, ok)
			assert.NotEmpty(t, ce.Code)
			assert.Zero(t, a.OpCount(), "a failed access must not be logged")
		})
	}
}

func TestArray_RecordingFreezes(t *testing.T) {
	a := New([]int{2, 1})
	a.Get(0)
	a.Swap(0, 1)

	early := a.Slice(0, 2)
	rec := a.Recording("manual")
	assert.Equal(t, "manual", rec.Method)
	assert.Equal(t, []int{2, 1}, rec.Snapshot)
	assert.Equal(t, []int{1, 2}, rec.Final)
	assert.Equal(t, []ir.Operation{ir.Read(0), ir.Swap(0, 1)}, rec.Ops)
	assert.True(t, a.Frozen())

	err := Capture(func() { a.Get(0) })
	ce, ok := IsContractError(err)
	require.True(t, ok)
	assert.Equal(t, CodeLogFrozen, ce.Code)

	err = Capture(func() { early.Set(0, 5) })
	ce, ok = IsContractError(err)
	require.True(t, ok)
	assert.Equal(t, CodeLogFrozen, ce.Code)
	assert.Len(t, rec.Ops, 2)
}

func TestArray_SliceAfterRecordingPanics(t *testing.T) {
	a := New([]int{3, 1, 2})
	early := a.Slice(0, 3)
	a.Recording("manual")

	err := Capture(func() { a.Slice(0, 2) })
	ce, ok := IsContractError(err)
	require.True(t, ok)
	assert.Equal(t, CodeLogFrozen, ce.Code)
	assert.Equal(t, "slice", ce.Op)

	err = Capture(func() { early.Slice(1, 2) })
	ce, ok = IsContractError(err)
	require.True(t, ok)
	assert.Equal(t, CodeLogFrozen, ce.Code)
	assert.Equal(t, "slice", ce.Op)
}

func TestArray_Sorted(t *testing.T) {
	assert.True(t, New([]int{1, 2, 3}).Sorted())
	assert.True(t, New([]int{5}).Sorted())
	assert.True(t, New(nil).Sorted())
	assert.False(t, New([]int{2, 1}).Sorted())
}

func TestArray_EmptyRecording(t *testing.T) {
	a := New([]int{5})
	rec := a.Recording("noop")

	assert.Empty(t, rec.Ops)
	assert.Equal(t, []int{5}, rec.Final)
}

func TestCapture_PropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = Capture(func() { panic("boom") })
	})
}

func TestContractError_Messages(t *testing.T) {
	assert.Equal(t,
		"INDEX_OUT_OF_RANGE: get index 4 out of range for length 4",
		indexViolation("get", 4, 4).Error())
	assert.Equal(t,
		"INVALID_RANGE: slice [1, 5) invalid for length 4",
		rangeViolation(1, 5, 4).Error())
	assert.Equal(t,
		"LOG_FROZEN: swap after recording was frozen",
		(&ContractError{Code: CodeLogFrozen, Op: "swap"}).Error())
}

func TestIsContractError_NonErrors(t *testing.T) {
	_, ok := IsContractError("string panic")
	assert.False(t, ok)
	_, ok = IsContractError(nil)
	assert.False(t, ok)
}
