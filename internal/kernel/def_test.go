package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/tensor"
)

func TestDefBuilder(t *testing.T) {
	def, err := NewDefBuilder().
		SetName("Add2").
		SetDomain("test.domain").
		SinceVersion(1).
		Provider(ProviderWebGPU).
		TypeConstraint("Input0", []tensor.ElementType{tensor.Float32}).
		InputMemoryType(0, MemTypeCPUInput).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Add2", def.Name)
	assert.Equal(t, "test.domain", def.Domain)
	assert.Equal(t, 1, def.SinceVersion)
	assert.Equal(t, ProviderWebGPU, def.Provider)
	assert.Equal(t, []tensor.ElementType{tensor.Float32}, def.TypeConstraints["Input0"])
	assert.Equal(t, MemTypeCPUInput, def.InputMemTypes[0])
}

func TestDefBuilderDefaultsToCPUProvider(t *testing.T) {
	def, err := NewDefBuilder().SetName("Op").Build()
	require.NoError(t, err)
	assert.Equal(t, ProviderCPU, def.Provider)
}

func TestDefBuilderRequiresName(t *testing.T) {
	_, err := NewDefBuilder().SetDomain("d").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestDefBuilderRejectsUnsupportedConstraintType(t *testing.T) {
	_, err := NewDefBuilder().
		SetName("Op").
		TypeConstraint("Input0", []tensor.ElementType{tensor.Undefined}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRegistryRejectsExactDuplicate(t *testing.T) {
	r := NewRegistry()
	create := func(Info) (OpKernel, error) { return nil, nil }

	def, err := NewDefBuilder().SetName("Add2").SinceVersion(1).
		TypeConstraint("Input0", []tensor.ElementType{tensor.Float32}).Build()
	require.NoError(t, err)

	require.NoError(t, r.Register(CreateInfo{Def: def, Create: create}))
	err = r.Register(CreateInfo{Def: def, Create: create})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRegistryAllowsVariantsDifferingInConstraints(t *testing.T) {
	r := NewRegistry()
	create := func(Info) (OpKernel, error) { return nil, nil }

	floatDef, err := NewDefBuilder().SetName("Add2").SinceVersion(1).
		TypeConstraint("Input0", []tensor.ElementType{tensor.Float32}).Build()
	require.NoError(t, err)
	intDef, err := NewDefBuilder().SetName("Add2").SinceVersion(1).
		TypeConstraint("Input0", []tensor.ElementType{tensor.Int64}).Build()
	require.NoError(t, err)

	require.NoError(t, r.Register(CreateInfo{Def: floatDef, Create: create}))
	require.NoError(t, r.Register(CreateInfo{Def: intDef, Create: create}))

	assert.Len(t, r.Find("Add2", "", ProviderCPU), 2)
	assert.Empty(t, r.Find("Add2", "", ProviderWebGPU))
	assert.Equal(t, 2, r.Len())
}

func TestCopySized(t *testing.T) {
	values := []int64{1, 2, 3}

	// Nil buffer queries the required length.
	n, err := CopySized(values, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Short buffer fails but still reports the length.
	n, err = CopySized(values, make([]int64, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Equal(t, 3, n)

	out := make([]int64, 4)
	n, err = CopySized(values, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, values, out[:3])
}
