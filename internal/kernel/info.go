package kernel

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
)

// Info exposes a node's construction-time state to a kernel: its name and
// attribute values. The engine owns the implementation; kernels only hold
// the handle for the duration of construction.
type Info interface {
	NodeName() string

	AttrFloat(name string) (float32, error)
	AttrInt(name string) (int64, error)
	AttrString(name string) (string, error)
	AttrFloats(name string) ([]float32, error)
	AttrInts(name string) ([]int64, error)
}

// Context exposes a node's execution-time state to a kernel. The compute
// stream is an opaque device handle obtained from the execution context;
// the engine never interprets it and forwards it to kernels unchanged.
type Context interface {
	InputCount() int
	OutputCount() int
	Input(i int) any
	Output(i int, shape []int64) any
	ComputeStream() any
}

// OpKernel is one constructed kernel instance. Compute may run
// concurrently across nodes and sessions; reentrancy is the kernel's
// responsibility. Release must be called exactly once.
type OpKernel interface {
	Compute(ctx Context) error
	Release()
}

// CreateFn constructs a kernel instance for a node.
type CreateFn func(info Info) (OpKernel, error)

// CreateInfo pairs a kernel definition with its constructor.
type CreateInfo struct {
	Def    Def
	Create CreateFn
}

// CopySized copies values into a caller-provided buffer, reporting the
// required length. A nil buffer queries the required length; a short
// buffer fails with InvalidArgument, still reporting the length so the
// caller can retry.
func CopySized[T any](values, out []T) (int, error) {
	if out == nil {
		return len(values), nil
	}
	if len(out) < len(values) {
		return len(values), fmt.Errorf("%w: result buffer is not large enough", errs.ErrInvalidArgument)
	}
	copy(out, values)
	return len(values), nil
}
