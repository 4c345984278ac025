package bridge

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrUnsupportedHandle means a required capability is absent on the state
	// handle. Callers should treat it as "no tensor network available".
	ErrUnsupportedHandle = errors.New("state handle does not expose tensor network introspection")

	// ErrMissingTensorData means a tensor object lacks the shape or data
	// capability required for a host copy.
	ErrMissingTensorData = errors.New("tensor exposes no shape or data capability")
)

// ExtractionError wraps a failure raised by an underlying accessor while
// resolving one tensor. It is fatal to a single-tensor call and skippable
// inside a batch.
type ExtractionError struct {
	Index int   // Tensor index, or -1 for a whole-network accessor failure
	Cause error // Original failure from the state handle's surface
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("tensor network accessor failed: %v", e.Cause)
	}
	return fmt.Sprintf("tensor %d: accessor failed: %v", e.Index, e.Cause)
}

// Unwrap returns the original accessor failure.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// TransferError reports a failed device-to-host copy. The destination buffer
// is discarded by the bridge; no partial copy is ever returned.
type TransferError struct {
	Index  int    // Tensor index the copy was serving
	Detail string // Device-reported error text
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	return fmt.Sprintf("tensor %d: device-to-host copy failed: %s", e.Index, e.Detail)
}
