// Package kernel provides kernel definitions, the kernel registry, and the
// engine-side interfaces a kernel sees at construction and compute time.
package kernel

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/tensor"
)

// Execution provider names. A kernel definition without an explicit
// provider binds to the CPU provider.
const (
	ProviderCPU    = "CPUExecutionProvider"
	ProviderWebGPU = "WebGPUExecutionProvider"
)

// MemType identifies where a kernel expects a slot's buffer to live
// relative to the provider's default device memory.
type MemType int

// Memory locations for kernel inputs and outputs.
const (
	MemTypeCPUInput  MemType = -2 // host-accessible input
	MemTypeCPUOutput MemType = -1 // host-accessible output
	MemTypeDefault   MemType = 0  // provider's default memory
)

// Def describes one registered kernel: where it runs, which opset versions
// it covers, and the concrete element types its constrained slots take.
type Def struct {
	Name         string
	Domain       string
	SinceVersion int
	Provider     string

	// TypeConstraints binds constraint names to the element types this
	// kernel accepts for them. Slots without an entry fall back to the
	// schema-level constraint.
	TypeConstraints map[string][]tensor.ElementType

	// InputMemTypes overrides the memory location of specific input
	// slots. Absent slots use the provider's default.
	InputMemTypes map[int]MemType
}

// DefBuilder assembles a Def. Methods chain; Build validates and returns
// the finished definition.
type DefBuilder struct {
	def Def
	err error
}

// NewDefBuilder returns an empty kernel definition builder.
func NewDefBuilder() *DefBuilder {
	return &DefBuilder{def: Def{
		TypeConstraints: make(map[string][]tensor.ElementType),
		InputMemTypes:   make(map[int]MemType),
	}}
}

// SetName sets the operator name the kernel implements.
func (b *DefBuilder) SetName(name string) *DefBuilder {
	b.def.Name = name
	return b
}

// SetDomain sets the operator domain.
func (b *DefBuilder) SetDomain(domain string) *DefBuilder {
	b.def.Domain = domain
	return b
}

// SinceVersion sets the first opset version the kernel covers.
func (b *DefBuilder) SinceVersion(version int) *DefBuilder {
	b.def.SinceVersion = version
	return b
}

// Provider sets the execution provider the kernel runs on.
func (b *DefBuilder) Provider(provider string) *DefBuilder {
	b.def.Provider = provider
	return b
}

// TypeConstraint binds a constraint name to the element types the kernel
// accepts for it.
func (b *DefBuilder) TypeConstraint(name string, types []tensor.ElementType) *DefBuilder {
	for _, t := range types {
		if !t.Supported() {
			b.err = fmt.Errorf("%w: kernel %q: constraint %q: %s is not a supported tensor element type",
				errs.ErrInvalidArgument, b.def.Name, name, t)
			return b
		}
	}
	b.def.TypeConstraints[name] = append([]tensor.ElementType(nil), types...)
	return b
}

// InputMemoryType overrides the memory location of input slot i.
func (b *DefBuilder) InputMemoryType(i int, mt MemType) *DefBuilder {
	b.def.InputMemTypes[i] = mt
	return b
}

// Build returns the finished definition, or the first error recorded while
// building it.
func (b *DefBuilder) Build() (Def, error) {
	if b.err != nil {
		return Def{}, b.err
	}
	if b.def.Name == "" {
		return Def{}, fmt.Errorf("%w: kernel definition has no name", errs.ErrInvalidArgument)
	}
	if b.def.Provider == "" {
		b.def.Provider = ProviderCPU
	}
	return b.def, nil
}
