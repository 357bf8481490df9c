// Package schema provides declarative operator schemas: parameter arity,
// optionality, and named type constraints, plus the type-inference hook
// used during graph-build-time type propagation.
package schema

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/tensor"
)

// ParameterOption classifies how a formal parameter accepts arguments.
type ParameterOption int

// Formal parameter options.
const (
	Single ParameterOption = iota
	Optional
	Variadic
)

// String returns a human-readable name for the option.
func (o ParameterOption) String() string {
	switch o {
	case Single:
		return "single"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	default:
		return "unknown"
	}
}

// FormalParameter describes one input or output slot of an operator schema.
type FormalParameter struct {
	Name        string          // slot name, e.g. "Input0"
	Constraint  string          // type-constraint name, e.g. "T0" or "Input0"
	Option      ParameterOption // single, optional, or variadic
	Homogeneous bool            // variadic run must share one element type
	MinArity    int             // minimum argument count for a variadic run
}

// OpSchema is the declarative contract for one operator: ordered formal
// parameters plus the named element-type sets its slots may take.
//
// A schema under construction is mutable; Clone produces the immutable
// copy that gets installed into a registry.
type OpSchema struct {
	Name         string
	Domain       string
	Doc          string
	SinceVersion int

	Inputs  []FormalParameter
	Outputs []FormalParameter

	// TypeConstraints maps a constraint name to the element types it
	// admits, in insertion order.
	TypeConstraints map[string][]tensor.ElementType

	// AllowUncheckedAttributes disables attribute validation for nodes
	// using this schema. Always set for runtime-registered custom ops,
	// which may carry attributes the schema knows nothing about.
	AllowUncheckedAttributes bool

	// Inference resolves output element types from observed input types.
	// Nil means type propagation makes no progress for this operator.
	Inference InferenceFunc
}

// New returns an empty schema for the given operator name.
func New(name, domain string) *OpSchema {
	return &OpSchema{
		Name:            name,
		Domain:          domain,
		TypeConstraints: make(map[string][]tensor.ElementType),
	}
}

// AddInput appends an input parameter. A variadic parameter may only be
// the final input, so appending after one fails with InvalidArgument.
func (s *OpSchema) AddInput(p FormalParameter) error {
	if n := len(s.Inputs); n > 0 && s.Inputs[n-1].Option == Variadic {
		return fmt.Errorf("%w: operator %q: only the last input may be variadic", errs.ErrInvalidArgument, s.Name)
	}
	s.Inputs = append(s.Inputs, p)
	return nil
}

// AddOutput appends an output parameter, with the same variadic placement
// rule as AddInput.
func (s *OpSchema) AddOutput(p FormalParameter) error {
	if n := len(s.Outputs); n > 0 && s.Outputs[n-1].Option == Variadic {
		return fmt.Errorf("%w: operator %q: only the last output may be variadic", errs.ErrInvalidArgument, s.Name)
	}
	s.Outputs = append(s.Outputs, p)
	return nil
}

// SetTypeConstraint binds a constraint name to a set of element types,
// replacing any previous binding. Types outside the engine's supported
// set are rejected.
func (s *OpSchema) SetTypeConstraint(name string, types []tensor.ElementType) error {
	for _, t := range types {
		if !t.Supported() {
			return fmt.Errorf("%w: operator %q: constraint %q: %s is not a supported tensor element type",
				errs.ErrInvalidArgument, s.Name, name, t)
		}
	}
	s.TypeConstraints[name] = append([]tensor.ElementType(nil), types...)
	return nil
}

// AddConstraintType adds one element type to an existing constraint set.
// Adding a type already present is a no-op, so accumulation across kernel
// variants stays idempotent.
func (s *OpSchema) AddConstraintType(name string, t tensor.ElementType) error {
	if !t.Supported() {
		return fmt.Errorf("%w: operator %q: constraint %q: %s is not a supported tensor element type",
			errs.ErrInvalidArgument, s.Name, name, t)
	}
	for _, existing := range s.TypeConstraints[name] {
		if existing == t {
			return nil
		}
	}
	s.TypeConstraints[name] = append(s.TypeConstraints[name], t)
	return nil
}

// Clone returns a deep copy of the schema. The copy shares the Inference
// closure, which only reads state captured at synthesis time.
func (s *OpSchema) Clone() *OpSchema {
	c := *s
	c.Inputs = append([]FormalParameter(nil), s.Inputs...)
	c.Outputs = append([]FormalParameter(nil), s.Outputs...)
	c.TypeConstraints = make(map[string][]tensor.ElementType, len(s.TypeConstraints))
	for name, types := range s.TypeConstraints {
		c.TypeConstraints[name] = append([]tensor.ElementType(nil), types...)
	}
	return &c
}
