package state

import (
	"errors"
	"testing"

	"github.com/formotensor/formotensor/internal/tensor"
)

type qubitOnly struct{}

func (qubitOnly) NumQubits() int { return 4 }

type fullHandle struct{}

func (fullHandle) NumQubits() int          { return 2 }
func (fullHandle) Tensor(int) (any, error) { return nil, nil }
func (fullHandle) TensorNetwork() any      { return []any{} }

func TestProbeReportsAbsentCapabilities(t *testing.T) {
	s, err := Probe(qubitOnly{})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if s.Qubits == nil {
		t.Error("qubit capability should be present")
	}
	if s.Single != nil || s.Network != nil {
		t.Error("tensor capabilities should be absent")
	}
}

func TestProbeFullSurface(t *testing.T) {
	s, err := Probe(fullHandle{})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if s.Qubits == nil || s.Single == nil || s.Network == nil {
		t.Error("all capabilities should be present")
	}
}

func TestProbeNilHandle(t *testing.T) {
	if _, err := Probe(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Probe(nil) = %v, want ErrInvalidHandle", err)
	}

	var h *fullHandle
	if _, err := Probe(h); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Probe(typed nil) = %v, want ErrInvalidHandle", err)
	}
}

type lenCollection struct{ n int }

func (c lenCollection) Len() int { return c.n }

func TestLength(t *testing.T) {
	if n, ok := Length([]any{1, 2, 3}); !ok || n != 3 {
		t.Errorf("Length(slice) = %d, %v", n, ok)
	}
	if n, ok := Length(lenCollection{n: 7}); !ok || n != 7 {
		t.Errorf("Length(Len method) = %d, %v", n, ok)
	}
	if _, ok := Length(struct{}{}); ok {
		t.Error("opaque collection should not be enumerable")
	}
	if _, ok := Length(nil); ok {
		t.Error("nil collection should not be enumerable")
	}
}

type methodTensor struct {
	extents []int
	value   any
}

func (m *methodTensor) Extents() []int { return m.extents }
func (m *methodTensor) Data() any      { return m.value }

type fieldTensor struct {
	Extents []int
	Data    any
}

type panicTensor struct{}

func (panicTensor) Extents() []int { return []int{2} }
func (panicTensor) Data() any      { panic("device context lost") }

func TestExtentsMethodForm(t *testing.T) {
	shape, ok := Extents(&methodTensor{extents: []int{2, 4}})
	if !ok {
		t.Fatal("method-form extents should resolve")
	}
	if !shape.Equal(tensor.Shape{2, 4}) {
		t.Errorf("shape = %v, want [2 4]", shape)
	}
}

func TestExtentsFieldForm(t *testing.T) {
	shape, ok := Extents(fieldTensor{Extents: []int{3}})
	if !ok {
		t.Fatal("field-form extents should resolve")
	}
	if !shape.Equal(tensor.Shape{3}) {
		t.Errorf("shape = %v, want [3]", shape)
	}
}

func TestExtentsAbsent(t *testing.T) {
	if _, ok := Extents(struct{}{}); ok {
		t.Error("shapeless object should not resolve extents")
	}
	if _, ok := Extents(nil); ok {
		t.Error("nil object should not resolve extents")
	}
}

func TestExtentsCopyIsIndependent(t *testing.T) {
	src := &methodTensor{extents: []int{2, 2}}
	shape, _ := Extents(src)
	shape[0] = 99
	if src.extents[0] != 2 {
		t.Error("Extents must copy the reported dimensions")
	}
}

func TestHasDataDoesNotInvoke(t *testing.T) {
	// HasData on a tensor whose Data() panics must not panic itself.
	if !HasData(panicTensor{}) {
		t.Error("callable data capability should be detected")
	}
	if !HasData(fieldTensor{Data: uintptr(0x1000)}) {
		t.Error("field data capability should be detected")
	}
	if HasData(struct{}{}) {
		t.Error("dataless object should have no data capability")
	}
}

func TestResolveDataCallableFirst(t *testing.T) {
	// An object with both forms must resolve through the callable.
	value, found, err := ResolveData(&methodTensor{value: uintptr(0xbeef)})
	if err != nil || !found {
		t.Fatalf("ResolveData: found=%v err=%v", found, err)
	}
	if value.(uintptr) != 0xbeef {
		t.Errorf("value = %v, want 0xbeef", value)
	}
}

func TestResolveDataFieldFallback(t *testing.T) {
	value, found, err := ResolveData(fieldTensor{Data: uint64(0x2000)})
	if err != nil || !found {
		t.Fatalf("ResolveData: found=%v err=%v", found, err)
	}
	if value.(uint64) != 0x2000 {
		t.Errorf("value = %v, want 0x2000", value)
	}
}

func TestResolveDataPanicIsError(t *testing.T) {
	_, found, err := ResolveData(panicTensor{})
	if !found {
		t.Fatal("capability should be found")
	}
	if err == nil {
		t.Fatal("panic inside the callable should surface as an error")
	}
}

func TestResolveDataAbsent(t *testing.T) {
	_, found, err := ResolveData(struct{}{})
	if found || err != nil {
		t.Errorf("found=%v err=%v, want false, nil", found, err)
	}
}
