package customop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/schema"
	"github.com/open-runtime/opset/internal/tensor"
)

func TestRegisterOpSetValidatesDomainAndVersion(t *testing.T) {
	r := NewRegistry()

	s := schema.New("Op", "other.domain")
	s.SinceVersion = 1
	err := r.RegisterOpSet([]*schema.OpSchema{s}, "my.domain", 1, 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	s = schema.New("Op", "my.domain")
	s.SinceVersion = 2000
	err = r.RegisterOpSet([]*schema.OpSchema{s}, "my.domain", 1, 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRegisterOpSetInstallsImmutableClones(t *testing.T) {
	r := NewRegistry()

	s := schema.New("Op", "my.domain")
	s.SinceVersion = 1
	require.NoError(t, s.AddInput(schema.FormalParameter{Name: "Input0", Constraint: "T0", MinArity: 1}))
	require.NoError(t, s.SetTypeConstraint("T0", []tensor.ElementType{tensor.Float32}))
	require.NoError(t, r.RegisterOpSet([]*schema.OpSchema{s}, "my.domain", 1, 1000))

	// Mutating the builder's schema after commit must not leak into the
	// installed copy.
	s.Inputs[0].Name = "mutated"
	require.NoError(t, s.AddConstraintType("T0", tensor.Int64))

	installed, ok := r.Schema("my.domain", "Op")
	require.True(t, ok)
	assert.Equal(t, "Input0", installed.Inputs[0].Name)
	assert.Equal(t, []tensor.ElementType{tensor.Float32}, installed.TypeConstraints["T0"])
}

func TestRegisterOpSetRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()

	s := schema.New("Op", "my.domain")
	s.SinceVersion = 1
	require.NoError(t, r.RegisterOpSet([]*schema.OpSchema{s}, "my.domain", 1, 1000))

	err := r.RegisterOpSet([]*schema.OpSchema{s}, "my.domain", 1, 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
