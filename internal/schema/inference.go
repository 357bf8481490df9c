package schema

import "github.com/open-runtime/opset/internal/tensor"

// InferenceContext carries the observed types of one graph node during a
// type-propagation pass. Input types may be Undefined when the propagator
// has not resolved them yet; output slots are caller-owned and written at
// most once per invocation.
type InferenceContext interface {
	InputCount() int
	InputType(i int) tensor.ElementType
	OutputCount() int
	SetOutputType(i int, t tensor.ElementType)
}

// InferenceFunc computes output element types from observed input types.
// When no known signature matches, the function writes nothing: type
// propagation simply makes no progress for that node.
//
// Implementations must be pure over captured state so they can run
// concurrently from independent inference passes.
type InferenceFunc func(ctx InferenceContext)

// TypeQuery is a minimal InferenceContext over plain slices, for engines
// and tests that track element types directly. Outputs must be sized to
// the schema's declared output count before inference runs.
type TypeQuery struct {
	Inputs  []tensor.ElementType
	Outputs []tensor.ElementType
}

// InputCount returns the number of observed inputs.
func (q *TypeQuery) InputCount() int { return len(q.Inputs) }

// InputType returns the observed element type of input i.
func (q *TypeQuery) InputType(i int) tensor.ElementType { return q.Inputs[i] }

// OutputCount returns the number of declared outputs.
func (q *TypeQuery) OutputCount() int { return len(q.Outputs) }

// SetOutputType records the resolved element type of output i.
func (q *TypeQuery) SetOutputType(i int, t tensor.ElementType) { q.Outputs[i] = t }
