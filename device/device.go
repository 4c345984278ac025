// Copyright 2025 The FormoTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device exposes the device-to-host transfer primitives used by the
// extraction bridge.
//
// A Transfer performs the single blocking copy from an engine-owned device
// buffer into a freshly allocated host buffer. Two implementations ship with
// the bridge:
//   - UnifiedMemory: for engines whose buffers are host-addressable
//   - WebGPU: for engines that stage tensors in WebGPU buffers
package device

import (
	"github.com/formotensor/formotensor/internal/device"
)

// Pointer is a resolved device pointer: a numeric address or an opaque
// buffer object, never both.
type Pointer = device.Pointer

// Capsule is an opaque handle exposing a contained raw address.
type Capsule = device.Capsule

// Transfer is the synchronous device-to-host copy primitive.
type Transfer = device.Transfer

// UnifiedMemory reads numeric device addresses as host memory.
type UnifiedMemory = device.UnifiedMemory

// WebGPU reads GPU buffers back through a staging buffer.
type WebGPU = device.WebGPU

// AddrPointer wraps a numeric device address.
func AddrPointer(addr uintptr) Pointer {
	return device.AddrPointer(addr)
}

// BufferPointer wraps an opaque device buffer object.
func BufferPointer(buffer any) Pointer {
	return device.BufferPointer(buffer)
}

// Resolve interprets a raw data-capability value as a device pointer.
func Resolve(value any) (Pointer, bool) {
	return device.Resolve(value)
}

// NewWebGPU initializes a dedicated WebGPU device for transfers.
func NewWebGPU() (*WebGPU, error) {
	return device.NewWebGPU()
}
