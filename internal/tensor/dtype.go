// Package tensor provides the core element-type definitions shared by the
// opset schema and kernel registries.
package tensor

// ElementType represents the runtime element type of a tensor.
type ElementType int

// Supported tensor element types. Undefined is the wildcard sentinel used
// by schema slots that accept any element type. The numbering matches the
// ONNX TensorProto data-type enum so declarations round-trip unchanged.
const (
	Undefined ElementType = iota
	Float32
	Uint8
	Int8
	Uint16
	Int16
	Int32
	Int64
	String
	Bool
	Float16
	Float64
	Uint32
	Uint64
	Complex64
	Complex128
	BFloat16
)

// Size returns the byte size of one element, or 0 for types without a
// fixed element size (Undefined, String).
func (t ElementType) Size() int {
	switch t {
	case Uint8, Int8, Bool:
		return 1
	case Uint16, Int16, Float16, BFloat16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// String returns a human-readable name for the element type.
func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	case Float64:
		return "float64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case BFloat16:
		return "bfloat16"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Supported reports whether t is a concrete element type the engine can
// place in a tensor. Undefined is a schema wildcard, not a tensor type.
func (t ElementType) Supported() bool {
	return t > Undefined && t <= BFloat16
}

// AllTensorTypes returns the full set of concrete element types, in enum
// order. Callers own the returned slice.
func AllTensorTypes() []ElementType {
	types := make([]ElementType, 0, int(BFloat16))
	for t := Float32; t <= BFloat16; t++ {
		types = append(types, t)
	}
	return types
}
