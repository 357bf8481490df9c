package customop

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/kernel"
	"github.com/open-runtime/opset/internal/schema"
	"github.com/open-runtime/opset/internal/tensor"
)

// RegistryOptions configures a registration pass.
type RegistryOptions struct {
	// DomainTable is the engine's domain-version table. Nil uses a fresh
	// table private to this pass.
	DomainTable *DomainTable
}

// DefaultRegistryOptions returns the default registration options.
func DefaultRegistryOptions() RegistryOptions {
	return RegistryOptions{}
}

// CreateRegistry synthesizes schemas and kernel definitions for the given
// custom-op domains and commits them into a fresh registry.
//
// Processing halts at the first failing operator of a domain and the
// error propagates to the caller, but kernels registered earlier in the
// same pass stay installed: partial success is caller-visible, there is
// no rollback.
//
// Registration is synchronous and single-threaded. Concurrent calls that
// share a domain table must be serialized by the caller.
func CreateRegistry(domains []Domain, opts ...RegistryOptions) (*Registry, error) {
	opt := DefaultRegistryOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	table := opt.DomainTable
	if table == nil {
		table = NewDomainTable()
	}

	reg := NewRegistry()
	for i := range domains {
		if err := registerDomain(reg, table, &domains[i]); err != nil {
			return reg, err
		}
	}
	return reg, nil
}

// registerDomain runs one domain through the full flow: domain table,
// schema synthesis and validation, type catalog, kernel registration,
// inference synthesis, and the opset commit.
func registerDomain(reg *Registry, table *DomainTable, d *Domain) error {
	table.AddIfAbsent(d.Name)

	schemas := make(map[string]*schema.OpSchema)
	var order []string // commit order is first-registration order
	catalog := newCatalogBuilder()

	for _, op := range d.Ops {
		name := op.Name()
		s, seen := schemas[name]
		if !seen {
			synthesized, err := synthesizeSchema(op, d.Name)
			if err != nil {
				return err
			}
			schemas[name] = synthesized
			order = append(order, name)
		} else {
			if err := validateVariant(s, op); err != nil {
				return err
			}
			if err := accumulateConstraintTypes(s, op); err != nil {
				return err
			}
		}

		catalog.add(name, signatureOf(op))

		ci, err := buildKernelCreateInfo(op, d.Name)
		if err != nil {
			return err
		}
		if err := reg.RegisterKernel(ci); err != nil {
			return err
		}
	}

	committed := make([]*schema.OpSchema, 0, len(order))
	for _, name := range order {
		s := schemas[name]
		s.Inference = synthesizeInference(catalog.snapshot(name))
		committed = append(committed, s)
	}
	return reg.RegisterOpSet(committed, d.Name, customDomainMinVersion, customDomainMaxVersion)
}

// slotSide distinguishes the input and output accessor families.
type slotSide int

const (
	sideInput slotSide = iota
	sideOutput
)

func (s slotSide) String() string {
	if s == sideInput {
		return "input"
	}
	return "output"
}

// slotTraits reads the (option, homogeneity, min-arity) triple for slot i
// from the provider, querying only the accessors the provider's declared
// API version supports. Both the synthesizer and the validator go through
// this helper, so the two can never disagree about defaults. A variadic
// slot anywhere but the final position fails with InvalidArgument.
func slotTraits(op KernelProvider, side slotSide, i, count int) (schema.ParameterOption, bool, int, error) {
	option := schema.Single
	homogeneous := true
	minArity := 1

	if op.Version() < minVersionOptionalIO {
		return option, homogeneous, minArity, nil
	}

	var c Characteristic
	if side == sideInput {
		c = op.InputCharacteristic(i)
	} else {
		c = op.OutputCharacteristic(i)
	}

	switch {
	case c == OptionalIO:
		option = schema.Optional
	case c == VariadicIO && op.Version() >= minVersionVariadicIO:
		if i != count-1 {
			return 0, false, 0, fmt.Errorf("%w: custom op %q: only the last %s may be variadic",
				errs.ErrInvalidArgument, op.Name(), side)
		}
		option = schema.Variadic
		if side == sideInput {
			minArity = op.VariadicInputMinArity()
			homogeneous = op.VariadicInputHomogeneity()
		} else {
			minArity = op.VariadicOutputMinArity()
			homogeneous = op.VariadicOutputHomogeneity()
		}
	}
	return option, homogeneous, minArity, nil
}

// synthesizeSchema builds a new schema from the first variant registered
// under an operator name. Wildcard slots get fresh anonymous constraint
// names (T0, T1, ...) bound to all supported tensor types; concrete slots
// get a constraint named after the slot, bound to the declared type.
func synthesizeSchema(op KernelProvider, domain string) (*schema.OpSchema, error) {
	s := schema.New(op.Name(), domain)
	s.Doc = "custom op registered at runtime"
	s.SinceVersion = 1
	s.AllowUncheckedAttributes = true

	inputCount := op.InputCount()
	outputCount := op.OutputCount()
	undefined := 0

	for i := 0; i < inputCount; i++ {
		option, homogeneous, minArity, err := slotTraits(op, sideInput, i, inputCount)
		if err != nil {
			return nil, err
		}

		p := schema.FormalParameter{
			Name:        fmt.Sprintf("Input%d", i),
			Option:      option,
			Homogeneous: homogeneous,
			MinArity:    minArity,
		}
		if t := op.InputType(i); t == tensor.Undefined {
			p.Constraint = fmt.Sprintf("T%d", undefined)
			undefined++
			if err := s.SetTypeConstraint(p.Constraint, tensor.AllTensorTypes()); err != nil {
				return nil, err
			}
		} else {
			p.Constraint = p.Name
			if err := s.SetTypeConstraint(p.Constraint, []tensor.ElementType{t}); err != nil {
				return nil, err
			}
		}
		if err := s.AddInput(p); err != nil {
			return nil, err
		}
	}

	for i := 0; i < outputCount; i++ {
		option, homogeneous, minArity, err := slotTraits(op, sideOutput, i, outputCount)
		if err != nil {
			return nil, err
		}

		p := schema.FormalParameter{
			Name:        fmt.Sprintf("Output%d", i),
			Option:      option,
			Homogeneous: homogeneous,
			MinArity:    minArity,
		}
		if t := op.OutputType(i); t == tensor.Undefined {
			p.Constraint = fmt.Sprintf("T%d", undefined)
			undefined++
			if err := s.SetTypeConstraint(p.Constraint, tensor.AllTensorTypes()); err != nil {
				return nil, err
			}
		} else {
			p.Constraint = p.Name
			if err := s.SetTypeConstraint(p.Constraint, []tensor.ElementType{t}); err != nil {
				return nil, err
			}
		}
		if err := s.AddOutput(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// validateVariant checks a later kernel variant against the schema
// synthesized from the first one. Every slot must agree on optionality,
// homogeneity, and min-arity.
func validateVariant(s *schema.OpSchema, op KernelProvider) error {
	if err := validateSide(s, op, sideInput, s.Inputs, op.InputCount()); err != nil {
		return err
	}
	return validateSide(s, op, sideOutput, s.Outputs, op.OutputCount())
}

func validateSide(s *schema.OpSchema, op KernelProvider, side slotSide, params []schema.FormalParameter, count int) error {
	if len(params) != count {
		return fmt.Errorf("%w: custom op %q: %s count does not match: schema has %d, variant has %d",
			errs.ErrSchemaMismatch, s.Name, side, len(params), count)
	}

	for i := range params {
		option, homogeneous, minArity, err := slotTraits(op, side, i, count)
		if err != nil {
			return err
		}
		if params[i].Option != option {
			return fmt.Errorf("%w: custom op %q: expecting %s %s to be of %s type",
				errs.ErrSchemaMismatch, s.Name, errs.Ordinal(i+1), side, params[i].Option)
		}
		if params[i].Homogeneous != homogeneous {
			return fmt.Errorf("%w: custom op %q: expecting %s %s to keep the same homogeneity",
				errs.ErrSchemaMismatch, s.Name, errs.Ordinal(i+1), side)
		}
		if params[i].MinArity != minArity {
			return fmt.Errorf("%w: custom op %q: expecting %s %s to keep the same minimum arity",
				errs.ErrSchemaMismatch, s.Name, errs.Ordinal(i+1), side)
		}
	}
	return nil
}

// accumulateConstraintTypes folds a later variant's concrete element
// types into the constraint sets chosen when the schema was synthesized.
// Wildcard slots already admit all types, so only concrete declarations
// widen anything.
func accumulateConstraintTypes(s *schema.OpSchema, op KernelProvider) error {
	for i := range s.Inputs {
		if t := op.InputType(i); t != tensor.Undefined {
			if err := s.AddConstraintType(s.Inputs[i].Constraint, t); err != nil {
				return err
			}
		}
	}
	for i := range s.Outputs {
		if t := op.OutputType(i); t != tensor.Undefined {
			if err := s.AddConstraintType(s.Outputs[i].Constraint, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildKernelCreateInfo builds the kernel definition and constructor
// thunk for one variant. Only slots with a concrete declared type get a
// per-kernel type constraint; wildcard slots rely on the schema-level
// all-types constraint. Memory-type overrides are only queried from
// plugins new enough to answer.
func buildKernelCreateInfo(op KernelProvider, domain string) (kernel.CreateInfo, error) {
	b := kernel.NewDefBuilder().
		SetName(op.Name()).
		SetDomain(domain).
		SinceVersion(1)

	if op.Version() >= minVersionInputMemoryType {
		for i := 0; i < op.InputCount(); i++ {
			b.InputMemoryType(i, op.InputMemoryType(i))
		}
	}

	for i := 0; i < op.InputCount(); i++ {
		if t := op.InputType(i); t != tensor.Undefined {
			b.TypeConstraint(fmt.Sprintf("Input%d", i), []tensor.ElementType{t})
		}
	}
	for i := 0; i < op.OutputCount(); i++ {
		if t := op.OutputType(i); t != tensor.Undefined {
			b.TypeConstraint(fmt.Sprintf("Output%d", i), []tensor.ElementType{t})
		}
	}

	if provider := op.ExecutionProviderType(); provider != "" {
		b.Provider(provider)
	} else {
		b.Provider(kernel.ProviderCPU)
	}

	def, err := b.Build()
	if err != nil {
		return kernel.CreateInfo{}, err
	}

	create := func(info kernel.Info) (kernel.OpKernel, error) {
		return newCustomOpKernel(op, info)
	}
	return kernel.CreateInfo{Def: def, Create: create}, nil
}
