// Copyright 2025 The FormoTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor metadata and host buffer types
// for the FormoTensor bridge.
//
// The package defines the value types shared by every bridge operation:
//   - Shape: ordered dimension sizes, exactly as reported by the source
//   - DataType: element type tag (complex128 is the only type engines
//     currently produce)
//   - HostTensor: a caller-owned, host-resident copy of one tensor
//
// Example:
//
//	shape := tensor.Shape{2, 2}
//	fmt.Println(shape.NumElements())            // 4
//	fmt.Println(shape.SizeBytes(tensor.Complex128)) // 64
package tensor

import (
	"github.com/formotensor/formotensor/internal/tensor"
)

// Shape represents the dimensions of a tensor in source axis order.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown    DataType = tensor.Unknown
	Complex128 DataType = tensor.Complex128
	Complex64  DataType = tensor.Complex64
)

// HostTensor is a host-resident, caller-owned copy of one tensor.
type HostTensor = tensor.HostTensor

// NewHost allocates a zeroed host tensor for the given shape.
func NewHost(shape Shape) (*HostTensor, error) {
	return tensor.NewHost(shape)
}

// HostFromSlice builds a host tensor by copying existing values.
//
// Example:
//
//	t, err := tensor.HostFromSlice([]complex128{1, 2i, 3, 4}, tensor.Shape{2, 2})
func HostFromSlice(data []complex128, shape Shape) (*HostTensor, error) {
	return tensor.HostFromSlice(data, shape)
}
