// Package stream defines the device compute-stream and cross-device
// notification contracts, and the registry of per-provider stream
// handles. The engine never interprets a stream's handle; it is forwarded
// to kernels as-is through the kernel context.
package stream

import (
	"fmt"
	"sync"

	"github.com/open-runtime/opset/internal/errs"
)

// Stream represents one device compute stream.
type Stream interface {
	// Handle is the opaque device handle kernels receive unchanged.
	Handle() any
	// Provider names the execution provider that owns the stream.
	Provider() string
	CreateNotification() (Notification, error)
	// Flush blocks until all work submitted to the stream completes.
	Flush() error
	Release()
}

// Notification signals completion of work recorded on a producer stream
// to consumers on the same device, another device, or the host.
type Notification interface {
	// Activate records the notification on its producer stream.
	Activate() error
	// WaitOnDevice blocks the given consumer stream until the
	// notification is activated and the recorded work completes.
	WaitOnDevice(s Stream) error
	// WaitOnHost blocks the calling goroutine the same way.
	WaitOnHost() error
	Release()
}

// WaitFn makes a consumer stream wait on a notification.
type WaitFn func(s Stream, n Notification) error

// CreateStreamFn creates a stream for one provider.
type CreateStreamFn func() (Stream, error)

type waitKey struct {
	notificationProvider string
	executorProvider     string
}

// HandleRegistry maps (notification provider, executor provider) pairs to
// wait functions and providers to stream factories. Providers register
// their handles once at startup; lookups may then run concurrently.
type HandleRegistry struct {
	mu        sync.RWMutex
	waitFns   map[waitKey]WaitFn
	createFns map[string]CreateStreamFn
}

// NewHandleRegistry returns an empty stream handle registry.
func NewHandleRegistry() *HandleRegistry {
	return &HandleRegistry{
		waitFns:   make(map[waitKey]WaitFn),
		createFns: make(map[string]CreateStreamFn),
	}
}

// RegisterWaitFn installs the wait function used when a stream of
// executorProvider waits on a notification from notificationProvider.
func (r *HandleRegistry) RegisterWaitFn(notificationProvider, executorProvider string, fn WaitFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waitFns[waitKey{notificationProvider, executorProvider}] = fn
}

// WaitFn returns the wait function registered for a provider pair.
func (r *HandleRegistry) WaitFn(notificationProvider, executorProvider string) (WaitFn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.waitFns[waitKey{notificationProvider, executorProvider}]
	return fn, ok
}

// RegisterCreateStreamFn installs the stream factory for a provider.
func (r *HandleRegistry) RegisterCreateStreamFn(provider string, fn CreateStreamFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createFns[provider] = fn
}

// CreateStream creates a stream for a provider.
func (r *HandleRegistry) CreateStream(provider string) (Stream, error) {
	r.mu.RLock()
	fn, ok := r.createFns[provider]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no stream factory registered for provider %q", errs.ErrInvalidArgument, provider)
	}
	return fn()
}
