package customop

import "sync"

// Custom domains register the version range [1, 1000]: custom opsets have
// no real versioning story, so the range admits any since-version a
// schema might carry.
const (
	customDomainMinVersion = 1
	customDomainMaxVersion = 1000
)

// onnxMaxVersion is the newest baseline ONNX opset the engine knows.
const onnxMaxVersion = 23

// VersionRange bounds the opset versions a domain supports.
type VersionRange struct {
	Min int
	Max int
}

// DomainTable maps operator domains to their supported version ranges.
// It is an explicit object passed into registration rather than process
// state, so independent registration calls only couple when the caller
// shares a table between them. The table does not serialize concurrent
// registration; callers touching overlapping domains from multiple
// goroutines must serialize externally.
type DomainTable struct {
	mu sync.RWMutex
	m  map[string]VersionRange
}

// NewDomainTable returns a table with the default (empty) domain
// pre-registered.
func NewDomainTable() *DomainTable {
	return &DomainTable{m: map[string]VersionRange{
		"": {Min: 1, Max: onnxMaxVersion},
	}}
}

// AddIfAbsent registers a custom domain with the range [1, 1000] unless
// it is already present. Adding the same domain twice, e.g. from two
// sessions sharing one table, is a no-op.
func (t *DomainTable) AddIfAbsent(domain string) {
	if domain == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[domain]; !ok {
		t.m[domain] = VersionRange{Min: customDomainMinVersion, Max: customDomainMaxVersion}
	}
}

// Range returns the registered version range for a domain.
func (t *DomainTable) Range(domain string) (VersionRange, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	vr, ok := t.m[domain]
	return vr, ok
}
