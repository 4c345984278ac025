// Package state discovers, at runtime, which tensor-network capabilities an
// opaque simulator state handle actually exposes.
//
// State handles are produced by external simulation engines and arrive as
// plain interface values: no fixed method set can be assumed. Each capability
// is therefore probed independently before use, and the absence of a
// capability is a normal result, not an error.
package state

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/formotensor/formotensor/internal/tensor"
)

// ErrInvalidHandle is returned when the handle itself is unusable, as opposed
// to merely lacking a capability.
var ErrInvalidHandle = errors.New("state handle is nil")

// QubitCounter is the qubit-count capability of a state handle.
type QubitCounter interface {
	NumQubits() int
}

// SingleTensorAccessor is the per-index tensor capability of a state handle.
// The returned value is itself an opaque tensor-like object; see Extents and
// ResolveData for how its surface is probed.
type SingleTensorAccessor interface {
	Tensor(index int) (any, error)
}

// NetworkAccessor is the whole-network capability of a state handle.
// The returned collection may or may not be enumerable; see Length.
type NetworkAccessor interface {
	TensorNetwork() any
}

// Surface is the probed capability set of one state handle.
// Absent capabilities are nil.
type Surface struct {
	Qubits  QubitCounter
	Single  SingleTensorAccessor
	Network NetworkAccessor
}

// Probe inspects a handle and reports which capabilities it exposes.
// Probing performs no allocation beyond the Surface itself and never calls
// into the handle. A nil handle is the only error condition.
func Probe(handle any) (Surface, error) {
	if handle == nil {
		return Surface{}, ErrInvalidHandle
	}
	// A typed nil pointer inside the interface is as unusable as a bare nil.
	if v := reflect.ValueOf(handle); v.Kind() == reflect.Pointer && v.IsNil() {
		return Surface{}, ErrInvalidHandle
	}

	var s Surface
	if q, ok := handle.(QubitCounter); ok {
		s.Qubits = q
	}
	if t, ok := handle.(SingleTensorAccessor); ok {
		s.Single = t
	}
	if n, ok := handle.(NetworkAccessor); ok {
		s.Network = n
	}
	return s, nil
}

// Length reports the element count of a tensor collection, if the collection
// is enumerable at all: either it implements Len() int, or it is a slice or
// array. A non-enumerable collection is a legal degenerate case.
func Length(collection any) (int, bool) {
	if collection == nil {
		return 0, false
	}
	if l, ok := collection.(interface{ Len() int }); ok {
		return l.Len(), true
	}

	v := reflect.ValueOf(collection)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len(), true
	default:
		return 0, false
	}
}

// extentsMethod is the bound-method form of the shape capability.
type extentsMethod interface {
	Extents() []int
}

// Extents resolves the shape of a tensor-like object, probing the bound
// method form first and an exported Extents field second. Returns false when
// the object carries no shape at all.
func Extents(obj any) (tensor.Shape, bool) {
	if obj == nil {
		return nil, false
	}
	if e, ok := obj.(extentsMethod); ok {
		return tensor.Shape(e.Extents()).Clone(), true
	}

	f, ok := fieldByName(obj, "Extents")
	if !ok {
		return nil, false
	}
	if dims, ok := f.Interface().([]int); ok {
		return tensor.Shape(dims).Clone(), true
	}
	if s, ok := f.Interface().(tensor.Shape); ok {
		return s.Clone(), true
	}
	return nil, false
}

// dataMethod is the callable form of the data capability.
type dataMethod interface {
	Data() any
}

// dataMethodErr is the callable form for sources that can fail resolution.
type dataMethodErr interface {
	Data() (any, error)
}

// HasData reports whether a tensor-like object exposes a data capability in
// any form, without invoking it. Metadata discovery must never trigger a
// device dereference, so this is a pure surface check.
func HasData(obj any) bool {
	if obj == nil {
		return false
	}
	switch obj.(type) {
	case dataMethod, dataMethodErr:
		return true
	}
	_, ok := fieldByName(obj, "Data")
	return ok
}

// ResolveData resolves the raw data value of a tensor-like object.
//
// The capability has two legitimate forms: a callable (bound method) and a
// plain property (exported field). The callable form is attempted first; the
// field form is a fallback only when no callable is present. A failure inside
// the callable is a real failure and is returned, not swallowed into the
// fallback path.
//
// found is false when the object exposes no data capability at all.
func ResolveData(obj any) (value any, found bool, err error) {
	if obj == nil {
		return nil, false, nil
	}

	switch d := obj.(type) {
	case dataMethod:
		value, err = callData(func() (any, error) { return d.Data(), nil })
		return value, true, err
	case dataMethodErr:
		value, err = callData(d.Data)
		return value, true, err
	}

	f, ok := fieldByName(obj, "Data")
	if !ok {
		return nil, false, nil
	}
	return f.Interface(), true, nil
}

// callData invokes a data callable, converting a panic inside the source
// object into an ordinary error.
func callData(fn func() (any, error)) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorFromPanic(r)
		}
	}()
	return fn()
}

func errorFromPanic(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}

// fieldByName looks up an exported struct field on obj, dereferencing one
// pointer level if necessary.
func fieldByName(obj any, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return reflect.Value{}, false
	}
	return f, true
}
