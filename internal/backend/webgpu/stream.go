// Package webgpu implements the WebGPU compute-stream provider.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/open-runtime/opset/internal/kernel"
	"github.com/open-runtime/opset/internal/stream"
)

// Stream is a WebGPU compute stream backed by a device queue. The queue
// is the opaque handle kernels receive; submissions to it execute in
// order, which is what the fence-based synchronization below relies on.
type Stream struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

// NewStream creates a WebGPU stream on the highest-performance adapter.
// Returns an error if WebGPU is not available or initialization fails.
func NewStream() (s *Stream, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instErr := wgpu.CreateInstance(nil)
	if instErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Stream{instance: instance, adapter: adapter, device: device, queue: queue}, nil
}

// Handle returns the device queue as the opaque stream handle.
func (s *Stream) Handle() any { return s.queue }

// Provider returns the WebGPU execution provider name.
func (s *Stream) Provider() string { return kernel.ProviderWebGPU }

// CreateNotification creates a notification recorded on this stream.
func (s *Stream) CreateNotification() (stream.Notification, error) {
	return &notification{stream: s}, nil
}

// Flush blocks until all work submitted to the stream completes.
func (s *Stream) Flush() error { return s.fence() }

// Release frees the stream's GPU resources.
func (s *Stream) Release() {
	s.device.Release()
	s.adapter.Release()
	s.instance.Release()
}

// fence submits an empty command buffer and round-trips a tiny staging
// buffer map. MapAsync only completes once every earlier submission on
// the in-order queue has executed, which makes the round-trip a full
// queue drain.
func (s *Stream) fence() error {
	staging := s.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  4,
	})
	defer staging.Release()

	encoder := s.device.CreateCommandEncoder(nil)
	s.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(s.device, wgpu.MapModeRead, 0, 4); err != nil {
		return fmt.Errorf("webgpu: fence map failed: %w", err)
	}
	staging.Unmap()
	return nil
}

// notification is a fence-style notification. WebGPU has no standalone
// event primitive, so activation marks a point on the in-order producer
// queue and waiting drains the queue up to that point.
type notification struct {
	stream *Stream
	ready  atomic.Bool
}

// Activate records the notification on the producer stream.
func (n *notification) Activate() error {
	encoder := n.stream.device.CreateCommandEncoder(nil)
	n.stream.queue.Submit(encoder.Finish(nil))
	n.ready.Store(true)
	return nil
}

// WaitOnDevice blocks a consumer WebGPU stream until the recorded work
// completes.
func (n *notification) WaitOnDevice(s stream.Stream) error {
	if s.Provider() != kernel.ProviderWebGPU {
		return fmt.Errorf("webgpu: cannot wait on a %q stream", s.Provider())
	}
	n.spin()
	return n.stream.fence()
}

// WaitOnHost blocks the calling goroutine until the recorded work
// completes.
func (n *notification) WaitOnHost() error {
	n.spin()
	return n.stream.fence()
}

// Release frees the notification. Nothing to free for a fence-style
// notification.
func (n *notification) Release() {}

// spin waits for activation.
func (n *notification) spin() {
	for !n.ready.Load() {
		runtime.Gosched()
	}
}

// RegisterStreamHandles wires the WebGPU wait and stream-creation
// handles into a stream handle registry.
func RegisterStreamHandles(r *stream.HandleRegistry) {
	// wait webgpu notification on the webgpu provider
	r.RegisterWaitFn(kernel.ProviderWebGPU, kernel.ProviderWebGPU, waitNotificationOnDevice)
	// wait webgpu notification on the cpu provider
	r.RegisterWaitFn(kernel.ProviderWebGPU, kernel.ProviderCPU, waitNotificationOnHost)

	r.RegisterCreateStreamFn(kernel.ProviderWebGPU, func() (stream.Stream, error) {
		return NewStream()
	})
}

func waitNotificationOnDevice(s stream.Stream, n stream.Notification) error {
	return n.WaitOnDevice(s)
}

func waitNotificationOnHost(_ stream.Stream, n stream.Notification) error {
	return n.WaitOnHost()
}

// IsAvailable checks whether WebGPU can be initialized on this system.
func IsAvailable() bool {
	s, err := NewStream()
	if err != nil {
		return false
	}
	s.Release()
	return true
}
