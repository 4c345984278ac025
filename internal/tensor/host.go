package tensor

import (
	"fmt"
	"unsafe"
)

// HostTensor is a host-resident copy of one tensor of a tensor network.
//
// The buffer is flat, contiguous, row-major complex128, freshly allocated at
// extraction time. It aliases no device memory: once a HostTensor is returned
// the caller owns it outright and the originating device buffer may be freed.
type HostTensor struct {
	data   []complex128
	shape  Shape
	stride []int
}

// NewHost allocates a zeroed host tensor for the given shape.
func NewHost(shape Shape) (*HostTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &HostTensor{
		data:   make([]complex128, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// HostFromSlice builds a host tensor around existing values.
// The slice length must match the shape's element count; the slice is copied.
func HostFromSlice(data []complex128, shape Shape) (*HostTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}

	t := &HostTensor{
		data:   make([]complex128, len(data)),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *HostTensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major memory strides.
func (t *HostTensor) Strides() []int {
	return t.stride
}

// DType returns the element type. Host copies are always complex128.
func (t *HostTensor) DType() DataType {
	return Complex128
}

// NumElements returns the total number of elements.
func (t *HostTensor) NumElements() int {
	return len(t.data)
}

// SizeBytes returns the total buffer size in bytes.
func (t *HostTensor) SizeBytes() int {
	return len(t.data) * Complex128.Size()
}

// Data returns the flat element slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *HostTensor) Data() []complex128 {
	return t.data
}

// Bytes reinterprets the element buffer as a byte slice.
// This is the destination view handed to a device-to-host transfer;
// it aliases the tensor's own memory and must not outlive the tensor.
func (t *HostTensor) Bytes() []byte {
	if len(t.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, bounds fixed by SizeBytes()
	return unsafe.Slice((*byte)(unsafe.Pointer(&t.data[0])), t.SizeBytes())
}

// At returns the element at the given multi-dimensional index.
// Panics if the index arity or any coordinate is out of range.
func (t *HostTensor) At(indices ...int) complex128 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("index arity %d does not match shape %v", len(indices), t.shape))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return t.data[offset]
}

// Clone returns a deep copy of the tensor.
func (t *HostTensor) Clone() *HostTensor {
	clone := &HostTensor{
		data:   make([]complex128, len(t.data)),
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
	}
	copy(clone.data, t.data)
	return clone
}

// Equal reports whether two tensors have the same shape and contents.
func (t *HostTensor) Equal(other *HostTensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
