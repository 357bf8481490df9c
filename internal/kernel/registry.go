package kernel

import (
	"fmt"
	"sync"

	"github.com/open-runtime/opset/internal/errs"
)

// Registry holds registered kernel definitions keyed by operator name and
// domain. Registration happens once at load time; lookups may then run
// concurrently from any number of inference executions.
type Registry struct {
	mu      sync.RWMutex
	kernels map[string][]CreateInfo
}

// NewRegistry returns an empty kernel registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[string][]CreateInfo)}
}

func registryKey(name, domain string) string {
	return domain + ":" + name
}

// Register adds a kernel definition. Two definitions may share an
// operator name as long as they differ in provider, version, or type
// constraints; exact duplicates are rejected.
func (r *Registry) Register(ci CreateInfo) error {
	if ci.Def.Name == "" {
		return fmt.Errorf("%w: kernel definition has no name", errs.ErrInvalidArgument)
	}
	if ci.Create == nil {
		return fmt.Errorf("%w: kernel %q has no constructor", errs.ErrInvalidArgument, ci.Def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey(ci.Def.Name, ci.Def.Domain)
	for i := range r.kernels[key] {
		if sameDef(&r.kernels[key][i].Def, &ci.Def) {
			return fmt.Errorf("%w: kernel %q in domain %q is already registered for provider %q",
				errs.ErrInvalidArgument, ci.Def.Name, ci.Def.Domain, ci.Def.Provider)
		}
	}
	r.kernels[key] = append(r.kernels[key], ci)
	return nil
}

// Find returns the registered kernels for an operator, in registration
// order. An empty provider matches any provider.
func (r *Registry) Find(name, domain, provider string) []CreateInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []CreateInfo
	for _, ci := range r.kernels[registryKey(name, domain)] {
		if provider == "" || ci.Def.Provider == provider {
			out = append(out, ci)
		}
	}
	return out
}

// Len returns the total number of registered kernel definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, cis := range r.kernels {
		n += len(cis)
	}
	return n
}

// sameDef reports whether two definitions collide: same name, domain,
// provider, version, and per-constraint element types.
func sameDef(a, b *Def) bool {
	if a.Name != b.Name || a.Domain != b.Domain || a.Provider != b.Provider || a.SinceVersion != b.SinceVersion {
		return false
	}
	if len(a.TypeConstraints) != len(b.TypeConstraints) {
		return false
	}
	for name, at := range a.TypeConstraints {
		bt, ok := b.TypeConstraints[name]
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if at[i] != bt[i] {
				return false
			}
		}
	}
	return true
}
