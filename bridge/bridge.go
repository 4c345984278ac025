// Copyright 2025 The FormoTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bridge is the public API for extracting tensor networks from
// opaque simulator state handles.
//
// The bridge never assumes a fixed method set on a handle: every capability
// is probed at call time, and absent capabilities are reported, not raised.
// Handles stay caller-owned; the bridge reads them only for the duration of
// a call and retains no reference to device memory afterward.
//
// Example:
//
//	b := bridge.New(device.UnifiedMemory{})
//	ok, err := bridge.SupportsTensorNetwork(state)
//	if err != nil || !ok {
//	    return err
//	}
//	infos, err := b.ExtractAll(state)
//	for _, info := range infos {
//	    host, err := b.ExtractHostCopy(state, info.Index)
//	    // ...
//	}
package bridge

import (
	"github.com/charmbracelet/log"

	"github.com/formotensor/formotensor/device"
	"github.com/formotensor/formotensor/internal/bridge"
)

// TensorInfo describes one tensor without materializing its data.
type TensorInfo = bridge.TensorInfo

// Bridge performs metadata discovery and device-to-host extraction.
type Bridge = bridge.Bridge

// Option configures a Bridge.
type Option = bridge.Option

// Error values and types surfaced by bridge operations.
var (
	ErrUnsupportedHandle = bridge.ErrUnsupportedHandle
	ErrMissingTensorData = bridge.ErrMissingTensorData
)

// ExtractionError wraps a failure from an underlying accessor call.
type ExtractionError = bridge.ExtractionError

// TransferError reports a failed device-to-host copy.
type TransferError = bridge.TransferError

// New creates a Bridge using the given device-to-host transfer primitive.
func New(transfer device.Transfer, opts ...Option) *Bridge {
	return bridge.New(transfer, opts...)
}

// WithLogger routes batch skip events to the given logger.
func WithLogger(logger *log.Logger) Option {
	return bridge.WithLogger(logger)
}

// SupportsTensorNetwork reports whether a handle exposes tensor-network
// introspection at all. Absence of the capability is a normal false result.
func SupportsTensorNetwork(handle any) (bool, error) {
	return bridge.SupportsTensorNetwork(handle)
}

// QubitCount returns the number of qubits of the state, or
// ErrUnsupportedHandle when the handle carries no qubit-count accessor.
func QubitCount(handle any) (int, error) {
	return bridge.QubitCount(handle)
}
