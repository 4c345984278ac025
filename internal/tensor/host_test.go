package tensor

import "testing"

func TestNewHostScalar(t *testing.T) {
	ht, err := NewHost(Shape{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	if ht.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", ht.NumElements())
	}
	if ht.SizeBytes() != 16 {
		t.Errorf("scalar SizeBytes = %d, want 16", ht.SizeBytes())
	}
}

func TestNewHostEmpty(t *testing.T) {
	ht, err := NewHost(Shape{4, 0})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	if ht.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", ht.NumElements())
	}
	if ht.Bytes() != nil {
		t.Error("empty tensor should have nil byte view")
	}
}

func TestNewHostRejectsNegativeDim(t *testing.T) {
	if _, err := NewHost(Shape{2, -3}); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestHostFromSliceLengthMismatch(t *testing.T) {
	if _, err := HostFromSlice([]complex128{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestHostTensorBytesAliasesData(t *testing.T) {
	ht, err := NewHost(Shape{2})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if len(ht.Bytes()) != 32 {
		t.Fatalf("Bytes length = %d, want 32", len(ht.Bytes()))
	}

	// Writing through the byte view must be visible through Data.
	b := ht.Bytes()
	for i := range b {
		b[i] = 0
	}
	b[0] = 1 // low byte of real part of element 0, little-endian
	if real(ht.Data()[0]) == 0 {
		t.Error("Bytes should be a zero-copy view of the element buffer")
	}
}

func TestHostTensorAtRowMajor(t *testing.T) {
	ht, err := HostFromSlice([]complex128{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("HostFromSlice: %v", err)
	}

	if got := ht.At(0, 2); got != 3 {
		t.Errorf("At(0,2) = %v, want 3", got)
	}
	if got := ht.At(1, 0); got != 4 {
		t.Errorf("At(1,0) = %v, want 4", got)
	}
}

func TestHostTensorCloneIndependence(t *testing.T) {
	ht, err := HostFromSlice([]complex128{1, 2}, Shape{2})
	if err != nil {
		t.Fatalf("HostFromSlice: %v", err)
	}

	clone := ht.Clone()
	clone.Data()[0] = 99
	if ht.Data()[0] != 1 {
		t.Error("Clone should deep-copy the buffer")
	}
	if !ht.Shape().Equal(clone.Shape()) {
		t.Error("Clone should preserve shape")
	}
}

func TestHostTensorEqual(t *testing.T) {
	a, _ := HostFromSlice([]complex128{1, 2, 3, 4}, Shape{2, 2})
	b, _ := HostFromSlice([]complex128{1, 2, 3, 4}, Shape{2, 2})
	c, _ := HostFromSlice([]complex128{1, 2, 3, 4}, Shape{4})

	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}
	if a.Equal(c) {
		t.Error("different shapes should not be equal")
	}

	b.Data()[3] = 0
	if a.Equal(b) {
		t.Error("different contents should not be equal")
	}
}
