// Copyright 2025 The Opset Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package customop registers externally authored compute kernels into the
// engine's operator and kernel registries as first-class operators.
//
// A kernel provider only answers accessor queries about its inputs and
// outputs; this package synthesizes a declarative schema per operator
// name, validates every variant that shares the name, accumulates the
// concrete type signatures, registers a kernel definition per variant,
// and synthesizes a type-inference function that resolves wildcard types
// from observed inputs during type propagation.
//
// Example:
//
//	reg, err := customop.CreateRegistry([]customop.Domain{{
//	    Name: "my.domain",
//	    Ops:  []customop.KernelProvider{myAddFloat, myAddInt},
//	}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := reg.Schema("my.domain", "Add2")
//
// Registration is synchronous and runs once at model load time. Installed
// schemas and kernel definitions are immutable and safe for concurrent
// reads; concurrent registration calls sharing a DomainTable must be
// serialized by the caller.
package customop

import (
	"github.com/open-runtime/opset/internal/customop"
	"github.com/open-runtime/opset/internal/errs"
)

// APIVersion is the newest plugin API version the engine supports.
const APIVersion = customop.APIVersion

// Error kinds returned by registration and kernel construction. Match
// them with errors.Is.
var (
	// ErrInvalidArgument reports a malformed declaration, such as a
	// variadic parameter that is not the final slot.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrSchemaMismatch reports a kernel variant that disagrees with the
	// schema already synthesized for its operator name. The message
	// names the offending slot (1-based) and side.
	ErrSchemaMismatch = errs.ErrSchemaMismatch

	// ErrVersionUnsupported reports a plugin declaring a newer API
	// version than APIVersion. It fails construction of that kernel
	// instance only.
	ErrVersionUnsupported = errs.ErrVersionUnsupported
)

// KernelProvider is the capability contract a native kernel provider
// implements.
type KernelProvider = customop.KernelProvider

// Characteristic classifies how a provider slot accepts arguments.
type Characteristic = customop.Characteristic

// Slot characteristics a provider may declare.
const (
	Required   Characteristic = customop.Required
	OptionalIO Characteristic = customop.OptionalIO
	VariadicIO Characteristic = customop.VariadicIO
)

// Domain groups the custom operators registered under one namespace.
type Domain = customop.Domain

// DomainTable maps operator domains to their supported version ranges.
type DomainTable = customop.DomainTable

// VersionRange bounds the opset versions a domain supports.
type VersionRange = customop.VersionRange

// NewDomainTable returns a table with the default domain pre-registered.
func NewDomainTable() *DomainTable {
	return customop.NewDomainTable()
}

// Registry holds the schemas and kernel definitions produced by one
// registration pass.
type Registry = customop.Registry

// RegistryOptions configures a registration pass.
type RegistryOptions = customop.RegistryOptions

// CreateRegistry synthesizes schemas and kernel definitions for the given
// domains and commits them into a fresh registry. On error the returned
// registry may hold the operators processed before the failure; partial
// success is caller-visible, there is no rollback.
func CreateRegistry(domains []Domain, opts ...RegistryOptions) (*Registry, error) {
	return customop.CreateRegistry(domains, opts...)
}
