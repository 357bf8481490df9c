// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the public kernel-definition and registry API:
// where a kernel runs, which opset versions it covers, the element types
// its constrained slots take, and the interfaces a kernel sees at
// construction and compute time.
//
// Example:
//
//	def, err := kernel.NewDefBuilder().
//	    SetName("Add2").
//	    SetDomain("my.domain").
//	    SinceVersion(1).
//	    Provider(kernel.ProviderCPU).
//	    TypeConstraint("Input0", []tensor.ElementType{tensor.Float32}).
//	    Build()
package kernel

import (
	"github.com/open-runtime/opset/internal/kernel"
)

// Execution provider names.
const (
	ProviderCPU    = kernel.ProviderCPU
	ProviderWebGPU = kernel.ProviderWebGPU
)

// MemType identifies where a kernel expects a slot's buffer to live.
type MemType = kernel.MemType

// Memory locations for kernel inputs and outputs.
const (
	MemTypeCPUInput  MemType = kernel.MemTypeCPUInput
	MemTypeCPUOutput MemType = kernel.MemTypeCPUOutput
	MemTypeDefault   MemType = kernel.MemTypeDefault
)

// Def describes one registered kernel.
type Def = kernel.Def

// DefBuilder assembles a Def.
type DefBuilder = kernel.DefBuilder

// NewDefBuilder returns an empty kernel definition builder.
func NewDefBuilder() *DefBuilder {
	return kernel.NewDefBuilder()
}

// Info exposes a node's construction-time state to a kernel.
type Info = kernel.Info

// Context exposes a node's execution-time state to a kernel, including
// the opaque compute-stream handle.
type Context = kernel.Context

// OpKernel is one constructed kernel instance.
type OpKernel = kernel.OpKernel

// CreateFn constructs a kernel instance for a node.
type CreateFn = kernel.CreateFn

// CreateInfo pairs a kernel definition with its constructor.
type CreateInfo = kernel.CreateInfo

// Registry holds registered kernel definitions.
type Registry = kernel.Registry

// NewRegistry returns an empty kernel registry.
func NewRegistry() *Registry {
	return kernel.NewRegistry()
}

// CopySized copies values into a caller-provided buffer, reporting the
// required length. A nil buffer queries the length; a short buffer fails
// with InvalidArgument.
func CopySized[T any](values, out []T) (int, error) {
	return kernel.CopySized(values, out)
}
