package customop

import "github.com/open-runtime/opset/internal/tensor"

// typeSignature is the ordered element types of one kernel variant,
// inputs followed by outputs. Undefined marks wildcard slots.
type typeSignature []tensor.ElementType

// signatureOf captures a provider variant's declared signature.
func signatureOf(op KernelProvider) typeSignature {
	inputCount := op.InputCount()
	sig := make(typeSignature, 0, inputCount+op.OutputCount())
	for i := 0; i < inputCount; i++ {
		sig = append(sig, op.InputType(i))
	}
	for i := 0; i < op.OutputCount(); i++ {
		sig = append(sig, op.OutputType(i))
	}
	return sig
}

// catalogBuilder accumulates the type signatures of every kernel variant,
// grouped by operator name. Signatures are kept in registration order,
// which is the tie-break for inference matching; nothing is deduplicated.
type catalogBuilder struct {
	sigs map[string][]typeSignature
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{sigs: make(map[string][]typeSignature)}
}

func (b *catalogBuilder) add(name string, sig typeSignature) {
	b.sigs[name] = append(b.sigs[name], sig)
}

// snapshot returns a deep copy of one operator's signatures, so the
// inference closure never aliases a catalog that keeps mutating.
func (b *catalogBuilder) snapshot(name string) []typeSignature {
	src := b.sigs[name]
	out := make([]typeSignature, len(src))
	for i, sig := range src {
		out[i] = append(typeSignature(nil), sig...)
	}
	return out
}
