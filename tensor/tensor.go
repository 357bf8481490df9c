// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public element-type definitions used by
// operator schemas and kernel definitions.
//
// Element types mirror the ONNX TensorProto data-type enum, with
// Undefined acting as the schema-level wildcard sentinel:
//
//	types := tensor.AllTensorTypes() // every concrete element type
//	tensor.Float32.Size()            // 4
package tensor

import (
	"github.com/open-runtime/opset/internal/tensor"
)

// ElementType represents the runtime element type of a tensor.
type ElementType = tensor.ElementType

// Element type constants.
const (
	Undefined  ElementType = tensor.Undefined
	Float32    ElementType = tensor.Float32
	Uint8      ElementType = tensor.Uint8
	Int8       ElementType = tensor.Int8
	Uint16     ElementType = tensor.Uint16
	Int16      ElementType = tensor.Int16
	Int32      ElementType = tensor.Int32
	Int64      ElementType = tensor.Int64
	String     ElementType = tensor.String
	Bool       ElementType = tensor.Bool
	Float16    ElementType = tensor.Float16
	Float64    ElementType = tensor.Float64
	Uint32     ElementType = tensor.Uint32
	Uint64     ElementType = tensor.Uint64
	Complex64  ElementType = tensor.Complex64
	Complex128 ElementType = tensor.Complex128
	BFloat16   ElementType = tensor.BFloat16
)

// AllTensorTypes returns the full set of concrete element types, in enum
// order. Callers own the returned slice.
func AllTensorTypes() []ElementType {
	return tensor.AllTensorTypes()
}
