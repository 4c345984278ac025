package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{8}, 8},
		{"matrix", Shape{2, 2}, 4},
		{"rank3", Shape{2, 4, 2}, 16},
		{"zero dim", Shape{2, 0, 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.NumElements(); got != tt.want {
				t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
			}
		})
	}
}

func TestShapeSizeBytes(t *testing.T) {
	if got := (Shape{2, 2}).SizeBytes(Complex128); got != 64 {
		t.Errorf("SizeBytes = %d, want 64", got)
	}
	if got := (Shape{2, 2}).SizeBytes(Unknown); got != 0 {
		t.Errorf("SizeBytes with unknown dtype = %d, want 0", got)
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero dimension should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative dimension should be invalid")
	}
}

func TestShapeCloneIndependence(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("Clone should not share backing array")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides = %v, want %v", strides, want)
			break
		}
	}
}

func TestDataTypeSize(t *testing.T) {
	if Complex128.Size() != 16 {
		t.Errorf("Complex128.Size() = %d, want 16", Complex128.Size())
	}
	if Complex64.Size() != 8 {
		t.Errorf("Complex64.Size() = %d, want 8", Complex64.Size())
	}
	if Unknown.Size() != 0 {
		t.Errorf("Unknown.Size() = %d, want 0", Unknown.Size())
	}
}

func TestDataTypeString(t *testing.T) {
	if Complex128.String() != "complex128" {
		t.Errorf("Complex128.String() = %q", Complex128.String())
	}
	if DataType(0).String() != "unknown" {
		t.Errorf("zero DataType should be unknown, got %q", DataType(0).String())
	}
}
