package customop

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/kernel"
)

// customOpKernel adapts one provider kernel instance to the engine's
// OpKernel contract. The kernel-info and kernel-context handles are
// forwarded to the provider unchanged.
type customOpKernel struct {
	op    KernelProvider
	state any
}

func newCustomOpKernel(op KernelProvider, info kernel.Info) (*customOpKernel, error) {
	if v := op.Version(); v > APIVersion {
		return nil, fmt.Errorf("%w: custom op %q declares API version %d, engine supports up to %d",
			errs.ErrVersionUnsupported, op.Name(), v, APIVersion)
	}

	state, err := op.CreateKernel(info)
	if err != nil {
		return nil, fmt.Errorf("failed to create kernel for custom op %q: %w", op.Name(), err)
	}
	return &customOpKernel{op: op, state: state}, nil
}

func (k *customOpKernel) Compute(ctx kernel.Context) error {
	return k.op.KernelCompute(k.state, ctx)
}

func (k *customOpKernel) Release() {
	k.op.KernelDestroy(k.state)
}
