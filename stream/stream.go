// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stream provides the public compute-stream contracts and the
// per-provider stream handle registry. The engine never interprets a
// stream's handle; kernels receive it unchanged through the kernel
// context.
//
// Example:
//
//	handles := stream.NewHandleRegistry()
//	webgpu.RegisterStreamHandles(handles)
//	s, err := handles.CreateStream(kernel.ProviderWebGPU)
package stream

import (
	"github.com/open-runtime/opset/internal/stream"
)

// Stream represents one device compute stream.
type Stream = stream.Stream

// Notification signals cross-stream completion of recorded work.
type Notification = stream.Notification

// WaitFn makes a consumer stream wait on a notification.
type WaitFn = stream.WaitFn

// CreateStreamFn creates a stream for one provider.
type CreateStreamFn = stream.CreateStreamFn

// HandleRegistry maps provider pairs to wait functions and providers to
// stream factories.
type HandleRegistry = stream.HandleRegistry

// NewHandleRegistry returns an empty stream handle registry.
func NewHandleRegistry() *HandleRegistry {
	return stream.NewHandleRegistry()
}
