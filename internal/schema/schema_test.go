package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/tensor"
)

func TestAddInputRejectsParameterAfterVariadic(t *testing.T) {
	s := New("Concat", "test.domain")

	require.NoError(t, s.AddInput(FormalParameter{
		Name: "Input0", Constraint: "T0", Option: Variadic, Homogeneous: true, MinArity: 1,
	}))

	err := s.AddInput(FormalParameter{Name: "Input1", Constraint: "T1", Option: Single, MinArity: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "only the last input may be variadic")
}

func TestAddOutputRejectsParameterAfterVariadic(t *testing.T) {
	s := New("Split", "test.domain")

	require.NoError(t, s.AddOutput(FormalParameter{
		Name: "Output0", Constraint: "T0", Option: Variadic, Homogeneous: true, MinArity: 1,
	}))

	err := s.AddOutput(FormalParameter{Name: "Output1", Constraint: "T1", Option: Single, MinArity: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestSetTypeConstraintRejectsUnsupportedType(t *testing.T) {
	s := New("Op", "")

	err := s.SetTypeConstraint("T0", []tensor.ElementType{tensor.Float32, tensor.Undefined})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestAddConstraintTypeIsIdempotent(t *testing.T) {
	s := New("Op", "")
	require.NoError(t, s.SetTypeConstraint("Input0", []tensor.ElementType{tensor.Float32}))

	require.NoError(t, s.AddConstraintType("Input0", tensor.Int64))
	require.NoError(t, s.AddConstraintType("Input0", tensor.Int64))
	require.NoError(t, s.AddConstraintType("Input0", tensor.Float32))

	assert.Equal(t, []tensor.ElementType{tensor.Float32, tensor.Int64}, s.TypeConstraints["Input0"])
}

func TestCloneIsDeep(t *testing.T) {
	s := New("Op", "d")
	require.NoError(t, s.AddInput(FormalParameter{Name: "Input0", Constraint: "T0", MinArity: 1}))
	require.NoError(t, s.SetTypeConstraint("T0", []tensor.ElementType{tensor.Float32}))

	c := s.Clone()
	require.NoError(t, s.AddConstraintType("T0", tensor.Int64))
	s.Inputs[0].Name = "mutated"

	assert.Equal(t, "Input0", c.Inputs[0].Name)
	assert.Equal(t, []tensor.ElementType{tensor.Float32}, c.TypeConstraints["T0"])
}

func TestTypeQueryImplementsInferenceContext(t *testing.T) {
	var _ InferenceContext = (*TypeQuery)(nil)

	q := &TypeQuery{
		Inputs:  []tensor.ElementType{tensor.Float32},
		Outputs: make([]tensor.ElementType, 2),
	}
	q.SetOutputType(1, tensor.Int64)

	assert.Equal(t, 1, q.InputCount())
	assert.Equal(t, 2, q.OutputCount())
	assert.Equal(t, tensor.Float32, q.InputType(0))
	assert.Equal(t, tensor.Undefined, q.Outputs[0])
	assert.Equal(t, tensor.Int64, q.Outputs[1])
}
