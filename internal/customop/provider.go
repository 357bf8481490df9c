// Package customop bridges externally authored compute kernels into the
// engine's operator and kernel registries. A kernel provider only answers
// accessor queries about its inputs and outputs; this package synthesizes
// the declarative schema, validates variants that share an operator name,
// builds the kernel definitions, and synthesizes a type-inference function
// from the catalog of concrete signatures.
package customop

import (
	"github.com/open-runtime/opset/internal/kernel"
	"github.com/open-runtime/opset/internal/tensor"
)

// APIVersion is the newest plugin API version this engine supports. A
// provider declaring a newer version fails kernel construction with
// VersionUnsupported.
const APIVersion = 17

// Accessor availability by declared plugin API version. Accessors newer
// than the plugin's version must not be queried; registration substitutes
// the defaults instead.
const (
	// Input/output characteristic queries exist from version 8.
	minVersionOptionalIO = 8
	// Per-slot input memory type queries exist from version 13.
	minVersionInputMemoryType = 13
	// Variadic min-arity and homogeneity queries exist from version 14.
	minVersionVariadicIO = 14
)

// Characteristic classifies how a provider slot accepts arguments.
type Characteristic int

// Slot characteristics a provider may declare.
const (
	Required Characteristic = iota
	OptionalIO
	VariadicIO
)

// String returns a human-readable name for the characteristic.
func (c Characteristic) String() string {
	switch c {
	case Required:
		return "required"
	case OptionalIO:
		return "optional"
	case VariadicIO:
		return "variadic"
	default:
		return "unknown"
	}
}

// KernelProvider is the capability contract a native kernel provider
// implements. The bridge depends only on this interface, never on a
// concrete provider type.
//
// Version-gated accessors are only queried when Version reports support:
// characteristics from version 8, input memory types from version 13,
// variadic arity and homogeneity from version 14.
type KernelProvider interface {
	Name() string
	// Version is the plugin API level the provider was built against.
	Version() int

	InputCount() int
	OutputCount() int
	// InputType returns the declared element type of input i, or
	// tensor.Undefined for a wildcard slot.
	InputType(i int) tensor.ElementType
	OutputType(i int) tensor.ElementType

	InputCharacteristic(i int) Characteristic
	OutputCharacteristic(i int) Characteristic
	InputMemoryType(i int) kernel.MemType
	VariadicInputMinArity() int
	VariadicInputHomogeneity() bool
	VariadicOutputMinArity() int
	VariadicOutputHomogeneity() bool

	// ExecutionProviderType names the provider the kernel runs on. Empty
	// means the CPU provider.
	ExecutionProviderType() string

	// CreateKernel, KernelCompute, and KernelDestroy are the kernel
	// lifecycle triad. The state value returned by CreateKernel is
	// opaque to the engine and passed back unchanged.
	CreateKernel(info kernel.Info) (any, error)
	KernelCompute(state any, ctx kernel.Context) error
	KernelDestroy(state any)
}

// Domain groups the custom operators registered under one namespace.
// Domains are transient: they only exist for the duration of one
// registration call.
type Domain struct {
	Name string
	Ops  []KernelProvider
}
