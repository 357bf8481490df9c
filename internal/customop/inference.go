package customop

import (
	"github.com/open-runtime/opset/internal/schema"
	"github.com/open-runtime/opset/internal/tensor"
)

// synthesizeInference builds the type-inference function for one schema
// from an immutable snapshot of its kernel variants' type signatures.
//
// Entries are scanned in registration order and the first full input
// match wins. An entry whose total arity differs from the node's observed
// input count plus declared output count is skipped, not an error. An
// observed Undefined input matches anything; an Undefined entry slot is a
// wildcard that resolves to the observed input type, and the resolved
// value substitutes into Undefined output slots. When nothing matches the
// function writes no output types and propagation makes no progress.
//
// The closure only reads the captured snapshot and writes caller-owned
// output slots, so concurrent invocations are safe.
func synthesizeInference(sigs []typeSignature) schema.InferenceFunc {
	return func(ctx schema.InferenceContext) {
		inputCount := ctx.InputCount()
		observed := make([]tensor.ElementType, inputCount)
		for i := range observed {
			observed[i] = ctx.InputType(i)
		}
		total := inputCount + ctx.OutputCount()

		for _, sig := range sigs {
			if len(sig) != total {
				continue
			}

			match := true
			resolved := tensor.Undefined
			for i := 0; i < inputCount; i++ {
				switch {
				case observed[i] == tensor.Undefined:
					// Unresolved input, compatible with anything.
				case sig[i] == tensor.Undefined:
					resolved = observed[i]
				case sig[i] != observed[i]:
					match = false
				}
				if !match {
					break
				}
			}
			if !match {
				continue
			}

			for i := inputCount; i < total; i++ {
				t := sig[i]
				if t == tensor.Undefined {
					t = resolved
				}
				ctx.SetOutputType(i-inputCount, t)
			}
			return
		}
	}
}
