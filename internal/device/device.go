// Package device models the device-memory side of an extraction: resolved
// source pointers and the synchronous device-to-host copy primitive.
//
// A resolved pointer is treated as untyped, unowned, and valid only for the
// duration of a single copy call. The package never stores, frees, or
// revalidates a source address.
package device

import (
	"fmt"
	"unsafe"
)

// Capsule is an opaque handle whose contained address can be extracted
// directly. Engine bindings that wrap raw device pointers in handle objects
// expose them through this interface.
type Capsule interface {
	Pointer() unsafe.Pointer
}

// Pointer is the resolved source of a device-to-host copy.
//
// Exactly one of the two encodings is populated: a numeric device address,
// or an opaque buffer object that only a specific Transfer implementation
// knows how to read (for example a GPU buffer handle with no stable
// host-visible address).
type Pointer struct {
	addr   uintptr
	buffer any
}

// AddrPointer wraps a numeric device address.
func AddrPointer(addr uintptr) Pointer {
	return Pointer{addr: addr}
}

// BufferPointer wraps an opaque device buffer object.
func BufferPointer(buffer any) Pointer {
	return Pointer{buffer: buffer}
}

// Addr returns the numeric address, or 0 for buffer-encoded pointers.
func (p Pointer) Addr() uintptr {
	return p.addr
}

// Buffer returns the opaque buffer object, or nil for address-encoded pointers.
func (p Pointer) Buffer() any {
	return p.buffer
}

// IsZero reports whether the pointer resolves to nothing at all.
func (p Pointer) IsZero() bool {
	return p.addr == 0 && p.buffer == nil
}

// Resolve interprets the raw value produced by a tensor's data capability as
// a device pointer. Integral values are numeric addresses; capsules surrender
// their contained address; anything else non-nil is kept as an opaque buffer
// for the Transfer implementation to interpret.
func Resolve(value any) (Pointer, bool) {
	switch v := value.(type) {
	case nil:
		return Pointer{}, false
	case uintptr:
		return AddrPointer(v), v != 0
	case unsafe.Pointer:
		return AddrPointer(uintptr(v)), v != nil
	case uint64:
		return AddrPointer(uintptr(v)), v != 0
	case uint:
		return AddrPointer(uintptr(v)), v != 0
	case int64:
		return AddrPointer(uintptr(v)), v != 0
	case int:
		return AddrPointer(uintptr(v)), v != 0
	case Capsule:
		p := v.Pointer()
		return AddrPointer(uintptr(p)), p != nil
	default:
		return BufferPointer(value), true
	}
}

// Transfer is the synchronous device-to-host copy primitive.
//
// Implementations copy exactly len(dst) bytes from src into dst, blocking
// until the transfer completes or fails. On failure the contents of dst are
// unspecified; callers must discard the destination buffer.
type Transfer interface {
	CopyToHost(dst []byte, src Pointer) error
}

// UnifiedMemory is a Transfer for engines whose "device" buffers live in
// host-addressable (unified or managed) memory. The source address is read
// directly; it must stay valid for the duration of the call, which the
// bridge's handle-lifetime contract already guarantees.
type UnifiedMemory struct{}

// CopyToHost copies len(dst) bytes from the source address into dst.
func (UnifiedMemory) CopyToHost(dst []byte, src Pointer) error {
	if len(dst) == 0 {
		return nil
	}
	if src.Addr() == 0 {
		return fmt.Errorf("unified memory copy: source has no numeric address")
	}

	//nolint:gosec // the address originates from the engine's data capability
	// and is only dereferenced for this one bounded copy.
	srcSlice := unsafe.Slice((*byte)(unsafe.Pointer(src.Addr())), len(dst))
	copy(dst, srcSlice)
	return nil
}
