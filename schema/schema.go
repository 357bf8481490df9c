// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package schema provides declarative operator schemas: ordered formal
// parameters with optionality and variadic rules, named type constraints,
// and the type-inference hook used during graph-build-time type
// propagation.
//
// Example:
//
//	s := schema.New("Add2", "my.domain")
//	s.SinceVersion = 1
//	_ = s.AddInput(schema.FormalParameter{Name: "Input0", Constraint: "T0", MinArity: 1})
//	_ = s.SetTypeConstraint("T0", tensor.AllTensorTypes())
package schema

import (
	"github.com/open-runtime/opset/internal/schema"
)

// OpSchema is the declarative contract for one operator.
type OpSchema = schema.OpSchema

// FormalParameter describes one input or output slot of a schema.
type FormalParameter = schema.FormalParameter

// ParameterOption classifies how a formal parameter accepts arguments.
type ParameterOption = schema.ParameterOption

// Formal parameter options.
const (
	Single   ParameterOption = schema.Single
	Optional ParameterOption = schema.Optional
	Variadic ParameterOption = schema.Variadic
)

// InferenceContext carries one node's observed types during a
// type-propagation pass.
type InferenceContext = schema.InferenceContext

// InferenceFunc computes output element types from observed input types.
type InferenceFunc = schema.InferenceFunc

// TypeQuery is a slice-backed InferenceContext for engines and tests that
// track element types directly.
type TypeQuery = schema.TypeQuery

// New returns an empty schema for the given operator name and domain.
func New(name, domain string) *OpSchema {
	return schema.New(name, domain)
}
