// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU compute-stream provider.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// Example:
//
//	handles := stream.NewHandleRegistry()
//	webgpu.RegisterStreamHandles(handles)
//
//	if webgpu.IsAvailable() {
//	    s, err := handles.CreateStream(kernel.ProviderWebGPU)
//	    ...
//	    defer s.Release()
//	}
package webgpu

import (
	internalwebgpu "github.com/open-runtime/opset/internal/backend/webgpu"
	"github.com/open-runtime/opset/internal/stream"
)

// Stream is a WebGPU compute stream backed by a device queue.
type Stream = internalwebgpu.Stream

// Compile-time check that Stream implements stream.Stream.
var _ stream.Stream = (*Stream)(nil)

// NewStream creates a WebGPU stream on the highest-performance adapter.
//
// Returns an error if WebGPU initialization fails (e.g. no compatible
// GPU). Call Release when done to free GPU resources.
func NewStream() (*Stream, error) {
	return internalwebgpu.NewStream()
}

// RegisterStreamHandles wires the WebGPU wait and stream-creation
// handles into a stream handle registry.
func RegisterStreamHandles(r *stream.HandleRegistry) {
	internalwebgpu.RegisterStreamHandles(r)
}

// IsAvailable checks whether WebGPU can be initialized on this system.
//
// It attempts to create and release a stream, which verifies that a
// compatible GPU and drivers are present. Useful for graceful fallback
// to host execution:
//
//	if !webgpu.IsAvailable() {
//	    // register CPU kernels only
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
