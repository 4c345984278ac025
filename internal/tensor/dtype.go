// Package tensor provides the core tensor metadata types for the FormoTensor bridge.
package tensor

// DataType represents runtime element-type information for extracted tensors.
//
// The zero value is Unknown, which is what a descriptor carries when the
// source tensor's element type could not be resolved.
type DataType int

// Supported element types.
//
// Simulator backends reachable through the bridge currently produce
// double-precision complex amplitudes only; Complex64 exists so that adding
// a narrower engine type is a dtype-resolution change, not a model change.
const (
	Unknown DataType = iota
	Complex128
	Complex64
)

// Size returns the byte size of one element, or 0 for Unknown.
func (dt DataType) Size() int {
	switch dt {
	case Complex128:
		return 16
	case Complex64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Complex128:
		return "complex128"
	case Complex64:
		return "complex64"
	default:
		return "unknown"
	}
}
