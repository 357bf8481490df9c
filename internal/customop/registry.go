package customop

import (
	"fmt"

	"github.com/open-runtime/opset/internal/errs"
	"github.com/open-runtime/opset/internal/kernel"
	"github.com/open-runtime/opset/internal/schema"
)

// Registry holds the operator schemas and kernel definitions produced by
// one registration pass. Installed entries are immutable and safe for
// concurrent reads; registration itself is single-threaded and happens
// once at load time.
type Registry struct {
	// schemas maps domain → operator name → installed schema.
	schemas map[string]map[string]*schema.OpSchema
	kernels *kernel.Registry
}

// NewRegistry returns an empty custom registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]map[string]*schema.OpSchema),
		kernels: kernel.NewRegistry(),
	}
}

// RegisterOpSet installs a set of operator schemas for one domain. Every
// schema must belong to the domain and carry a since-version inside
// [minVersion, maxVersion]. Schemas are installed as immutable clones.
func (r *Registry) RegisterOpSet(schemas []*schema.OpSchema, domain string, minVersion, maxVersion int) error {
	installed, ok := r.schemas[domain]
	if !ok {
		installed = make(map[string]*schema.OpSchema)
		r.schemas[domain] = installed
	}

	for _, s := range schemas {
		if s.Domain != domain {
			return fmt.Errorf("%w: schema %q belongs to domain %q, not %q",
				errs.ErrInvalidArgument, s.Name, s.Domain, domain)
		}
		if s.SinceVersion < minVersion || s.SinceVersion > maxVersion {
			return fmt.Errorf("%w: schema %q since-version %d is outside [%d, %d]",
				errs.ErrInvalidArgument, s.Name, s.SinceVersion, minVersion, maxVersion)
		}
		if _, exists := installed[s.Name]; exists {
			return fmt.Errorf("%w: schema %q is already installed in domain %q",
				errs.ErrInvalidArgument, s.Name, domain)
		}
		installed[s.Name] = s.Clone()
	}
	return nil
}

// RegisterKernel installs one kernel definition.
func (r *Registry) RegisterKernel(ci kernel.CreateInfo) error {
	return r.kernels.Register(ci)
}

// Schema returns the installed schema for an operator.
func (r *Registry) Schema(domain, name string) (*schema.OpSchema, bool) {
	s, ok := r.schemas[domain][name]
	return s, ok
}

// Kernels returns the kernel registry.
func (r *Registry) Kernels() *kernel.Registry {
	return r.kernels
}
