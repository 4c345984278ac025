package tensor

import "fmt"

// Shape represents the dimensions of a tensor, in the axis order reported by
// the source. Dimension sizes of zero are legal: the simulator may report a
// tensor slice that has been contracted away.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// An empty shape is a scalar (1 element, by the empty-product convention);
// any zero-size dimension makes the tensor empty (0 elements).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// SizeBytes returns the total byte size of a tensor with this shape and the
// given element type.
func (s Shape) SizeBytes(dtype DataType) int {
	return s.NumElements() * dtype.Size()
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
