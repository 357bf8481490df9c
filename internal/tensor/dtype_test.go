package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementTypeSize(t *testing.T) {
	tests := []struct {
		dtype ElementType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{BFloat16, 2},
		{Int8, 1},
		{Int64, 8},
		{Uint16, 2},
		{Complex128, 16},
		{Bool, 1},
		{String, 0},
		{Undefined, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), "size of %s", tt.dtype)
	}
}

func TestAllTensorTypesExcludesUndefined(t *testing.T) {
	for _, dt := range AllTensorTypes() {
		if dt == Undefined {
			t.Fatal("AllTensorTypes must not contain the Undefined sentinel")
		}
		if !dt.Supported() {
			t.Errorf("AllTensorTypes returned unsupported type %d", dt)
		}
	}

	assert.Len(t, AllTensorTypes(), 16)
}

func TestElementTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "bfloat16", BFloat16.String())
	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, "unknown", ElementType(99).String())
}
