// Package bridge extracts tensor-network decompositions from opaque simulator
// state handles into host-resident buffers.
//
// A state handle arrives as a plain interface value owned by the caller; the
// bridge probes its capability surface at call time, stages device-resident
// tensor buffers into freshly allocated host memory, and tolerates partial
// failure across a heterogeneous tensor network. It holds no state of its own
// beyond the transfer primitive and logger it was constructed with, so a
// Bridge may be shared freely across goroutines as long as the underlying
// handles support concurrent reads.
package bridge

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/formotensor/formotensor/internal/device"
	"github.com/formotensor/formotensor/internal/state"
	"github.com/formotensor/formotensor/internal/tensor"
)

// TensorInfo describes one tensor of a tensor network without materializing
// its data. Values are immutable once constructed.
type TensorInfo struct {
	// Index is the tensor's position in the network sequence. Batch results
	// keep the originating index even when earlier entries were skipped.
	Index int

	// Shape holds the dimension sizes exactly as reported by the source.
	// Empty when the source tensor exposed no shape.
	Shape tensor.Shape

	// TotalElements is the product of Shape, or 0 when no shape was found.
	TotalElements int

	// SizeBytes is TotalElements times the element size of DType.
	SizeBytes int

	// DType is the resolved element type; Unknown when no shape was found.
	DType tensor.DataType

	// DataAvailable reports whether a data capability was discovered,
	// independent of whether any copy was performed.
	DataAvailable bool
}

// String returns a compact single-line description.
func (i TensorInfo) String() string {
	return fmt.Sprintf("<tensor %d: shape=%v elements=%d dtype=%s data=%t>",
		i.Index, i.Shape, i.TotalElements, i.DType, i.DataAvailable)
}

// SupportsTensorNetwork reports whether a state handle exposes tensor-network
// introspection: either the single-tensor or the whole-network accessor.
// Absence of both is a normal false result; only an unusable handle is an
// error.
func SupportsTensorNetwork(handle any) (bool, error) {
	surface, err := state.Probe(handle)
	if err != nil {
		return false, err
	}
	return surface.Single != nil || surface.Network != nil, nil
}

// QubitCount returns the number of qubits of the state.
// Fails with ErrUnsupportedHandle when the handle has no qubit-count
// capability.
func QubitCount(handle any) (int, error) {
	surface, err := state.Probe(handle)
	if err != nil {
		return 0, err
	}
	if surface.Qubits == nil {
		return 0, fmt.Errorf("%w: no qubit count accessor", ErrUnsupportedHandle)
	}
	return surface.Qubits.NumQubits(), nil
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger routes skip events from batch extraction to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// Bridge performs tensor metadata discovery and device-to-host extraction
// against probed-capable state handles.
type Bridge struct {
	transfer device.Transfer
	logger   *log.Logger
}

// New creates a Bridge using the given device-to-host transfer primitive.
func New(transfer device.Transfer, opts ...Option) *Bridge {
	b := &Bridge{transfer: transfer}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Describe returns metadata for the tensor at index without touching device
// memory.
//
// Metadata discovery is best-effort per field: a tensor with no shape yields
// an empty descriptor (zero elements, Unknown dtype) rather than an error,
// and DataAvailable reflects only the surface probe. Index is not
// range-checked here; an out-of-range index surfaces as the accessor's own
// failure, wrapped in an ExtractionError.
func (b *Bridge) Describe(handle any, index int) (TensorInfo, error) {
	surface, err := state.Probe(handle)
	if err != nil {
		return TensorInfo{}, err
	}
	if surface.Single == nil {
		return TensorInfo{}, fmt.Errorf("%w: no single-tensor accessor", ErrUnsupportedHandle)
	}

	obj, err := resolveTensor(surface.Single, index)
	if err != nil {
		return TensorInfo{}, &ExtractionError{Index: index, Cause: err}
	}

	info := TensorInfo{Index: index}
	if shape, ok := state.Extents(obj); ok {
		if err := shape.Validate(); err != nil {
			return TensorInfo{}, &ExtractionError{Index: index, Cause: err}
		}
		info.Shape = shape
		info.TotalElements = shape.NumElements()
		// Single dtype-resolution point: engines reachable today report
		// complex128 amplitudes only. Supporting another element type means
		// probing the source here instead of assuming.
		info.DType = tensor.Complex128
		info.SizeBytes = shape.SizeBytes(info.DType)
	}
	info.DataAvailable = state.HasData(obj)

	return info, nil
}

// ExtractHostCopy stages the tensor at index into a newly allocated host
// buffer.
//
// The tensor must expose both a shape and a data capability
// (ErrMissingTensorData otherwise). The data capability's callable form is
// attempted before its property form, and the resolved value may encode the
// device pointer as an integral address or as an opaque capsule. A failed
// copy returns a TransferError and no buffer: partial copies are never
// exposed.
func (b *Bridge) ExtractHostCopy(handle any, index int) (*tensor.HostTensor, error) {
	surface, err := state.Probe(handle)
	if err != nil {
		return nil, err
	}
	if surface.Single == nil {
		return nil, fmt.Errorf("%w: no single-tensor accessor", ErrUnsupportedHandle)
	}

	obj, err := resolveTensor(surface.Single, index)
	if err != nil {
		return nil, &ExtractionError{Index: index, Cause: err}
	}

	shape, ok := state.Extents(obj)
	if !ok {
		return nil, fmt.Errorf("%w: tensor %d has no extents", ErrMissingTensorData, index)
	}

	raw, found, err := state.ResolveData(obj)
	if err != nil {
		return nil, &ExtractionError{Index: index, Cause: err}
	}
	if !found {
		return nil, fmt.Errorf("%w: tensor %d has no data", ErrMissingTensorData, index)
	}

	src, ok := device.Resolve(raw)
	if !ok {
		return nil, fmt.Errorf("%w: tensor %d data resolved to a null pointer", ErrMissingTensorData, index)
	}

	host, err := tensor.NewHost(shape)
	if err != nil {
		return nil, &ExtractionError{Index: index, Cause: err}
	}

	if err := b.transfer.CopyToHost(host.Bytes(), src); err != nil {
		return nil, &TransferError{Index: index, Detail: err.Error()}
	}

	return host, nil
}

// ExtractAll returns descriptors for every discoverable tensor in the
// network.
//
// A handle without the whole-network accessor fails with
// ErrUnsupportedHandle. A network collection that is not enumerable yields an
// empty sequence. Individual tensors that fail to describe are skipped, so
// the result may be shorter than the network; each surviving descriptor
// carries its originating Index for correlation.
func (b *Bridge) ExtractAll(handle any) ([]TensorInfo, error) {
	surface, err := state.Probe(handle)
	if err != nil {
		return nil, err
	}
	if surface.Network == nil {
		return nil, fmt.Errorf("%w: no whole-network accessor", ErrUnsupportedHandle)
	}

	collection, err := resolveNetwork(surface.Network)
	if err != nil {
		return nil, &ExtractionError{Index: -1, Cause: err}
	}

	length, ok := state.Length(collection)
	if !ok {
		// Network present but not enumerable.
		return []TensorInfo{}, nil
	}

	infos := make([]TensorInfo, 0, length)
	for i := 0; i < length; i++ {
		info, err := b.Describe(handle, i)
		if err != nil {
			if b.logger != nil {
				b.logger.Warn("skipping tensor", "index", i, "err", err)
			}
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// resolveTensor invokes the single-tensor accessor, converting a panic inside
// the engine into an ordinary error.
func resolveTensor(acc state.SingleTensorAccessor, index int) (obj any, err error) {
	defer func() {
		if r := recover(); r != nil {
			obj = nil
			err = fmt.Errorf("tensor accessor panicked: %v", r)
		}
	}()

	obj, err = acc.Tensor(index)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("tensor accessor returned nil for index %d", index)
	}
	return obj, nil
}

// resolveNetwork invokes the whole-network accessor with the same panic
// containment.
func resolveNetwork(acc state.NetworkAccessor) (collection any, err error) {
	defer func() {
		if r := recover(); r != nil {
			collection = nil
			err = fmt.Errorf("tensor network accessor panicked: %v", r)
		}
	}()

	return acc.TensorNetwork(), nil
}
