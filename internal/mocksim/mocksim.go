// Package mocksim provides synthetic simulator states for testing the
// extraction bridge and for the CLI selfcheck.
//
// The states exercise every variant of the probed surface: bound-method
// versus exported-field tensors, integral-address versus capsule data
// pointers, tensors with missing capabilities, and accessors that fail
// outright. Tensor contents live in ordinary host memory, so extraction runs
// against the unified-memory transfer.
package mocksim

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/formotensor/formotensor/internal/tensor"
)

// capsule wraps a raw pointer the way engine bindings wrap device pointers.
type capsule struct {
	p unsafe.Pointer
}

// Pointer returns the contained address.
func (c capsule) Pointer() unsafe.Pointer { return c.p }

// MethodTensor exposes its surface as bound methods; Data returns the buffer
// address as an integer, the most common engine convention.
type MethodTensor struct {
	extents []int
	values  []complex128
}

// NewMethodTensor builds a method-form tensor over the given values.
func NewMethodTensor(shape tensor.Shape, values []complex128) *MethodTensor {
	mustMatch(shape, values)
	return &MethodTensor{extents: shape.Clone(), values: values}
}

// Extents returns the tensor's dimensions.
func (t *MethodTensor) Extents() []int { return t.extents }

// Data returns the buffer address as an integer.
func (t *MethodTensor) Data() any {
	if len(t.values) == 0 {
		return uintptr(0)
	}
	return uintptr(unsafe.Pointer(&t.values[0]))
}

// Values exposes the backing buffer for test assertions.
func (t *MethodTensor) Values() []complex128 { return t.values }

// FieldTensor exposes its surface as exported fields; Data carries a capsule,
// the other engine convention.
type FieldTensor struct {
	Extents []int
	Data    any

	values []complex128 // keeps the pointed-to buffer reachable
}

// NewFieldTensor builds a field-form tensor over the given values.
func NewFieldTensor(shape tensor.Shape, values []complex128) *FieldTensor {
	mustMatch(shape, values)
	t := &FieldTensor{Extents: shape.Clone(), values: values}
	if len(values) > 0 {
		t.Data = capsule{p: unsafe.Pointer(&values[0])}
	}
	return t
}

// MetadataTensor carries a shape but no data capability.
type MetadataTensor struct {
	extents []int
}

// NewMetadataTensor builds a tensor that can be described but not extracted.
func NewMetadataTensor(shape tensor.Shape) *MetadataTensor {
	return &MetadataTensor{extents: shape.Clone()}
}

// Extents returns the tensor's dimensions.
func (t *MetadataTensor) Extents() []int { return t.extents }

// OpaqueTensor exposes no capabilities at all.
type OpaqueTensor struct{}

// failing marks a slot whose accessor call fails.
type failing struct {
	msg string
}

// FailingTensor returns a network slot for which the single-tensor accessor
// reports the given error instead of a tensor object.
func FailingTensor(msg string) any {
	return failing{msg: msg}
}

// notEnumerable is a tensor collection with no length capability.
type notEnumerable struct{}

// State is a synthetic simulator state exposing the full introspection
// surface: qubit count, single-tensor accessor, and whole-network accessor.
type State struct {
	qubits     int
	tensors    []any
	enumerable bool
}

// NewState builds a state over the given tensor objects.
func NewState(qubits int, tensors ...any) *State {
	return &State{qubits: qubits, tensors: tensors, enumerable: true}
}

// DisableEnumeration makes the network collection report no length, modeling
// engines whose tensor collections are opaque iterables.
func (s *State) DisableEnumeration() *State {
	s.enumerable = false
	return s
}

// NumQubits returns the configured qubit count.
func (s *State) NumQubits() int { return s.qubits }

// Tensor returns the tensor object at index.
func (s *State) Tensor(index int) (any, error) {
	if index < 0 || index >= len(s.tensors) {
		return nil, fmt.Errorf("tensor index %d out of range [0, %d)", index, len(s.tensors))
	}
	if f, ok := s.tensors[index].(failing); ok {
		return nil, errors.New(f.msg)
	}
	return s.tensors[index], nil
}

// TensorNetwork returns the tensor collection.
func (s *State) TensorNetwork() any {
	if !s.enumerable {
		return notEnumerable{}
	}
	return s.tensors
}

func mustMatch(shape tensor.Shape, values []complex128) {
	if len(values) != shape.NumElements() {
		panic(fmt.Sprintf("mocksim: %d values do not fill shape %v", len(values), shape))
	}
}
