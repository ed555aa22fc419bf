package grid

import "testing"

func TestShape_Dim(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"2D", NewShape2D(10, 20), 2},
		{"2D with ny=1", Shape{10, 1, 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Dim(); got != tt.want {
				t.Errorf("Shape.Dim() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShape_Size(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"2D", NewShape2D(10, 20), 200},
		{"2D square", NewShape2D(8, 8), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Size(); got != tt.want {
				t.Errorf("Shape.Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndex2D(t *testing.T) {
	ny := 5

	tests := []struct {
		i, j int
		want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 5},
		{2, 3, 13}, // 2*5 + 3 = 13
	}
	for _, tt := range tests {
		got := Index2D(tt.i, tt.j, ny)
		if got != tt.want {
			t.Errorf("Index2D(%d, %d, %d) = %v, want %v", tt.i, tt.j, ny, got, tt.want)
		}
	}
}

func TestRowMajorStride(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Stride
	}{
		{"2D", NewShape2D(4, 5), Stride{5, 1, 1}},
		{"2D square", NewShape2D(8, 8), Stride{8, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowMajorStride(tt.shape)
			if got != tt.want {
				t.Errorf("RowMajorStride(%v) = %v, want %v", tt.shape, got, tt.want)
			}
		})
	}
}

func TestShape_N(t *testing.T) {
	shape := NewShape2D(6, 9)
	if shape.N(0) != 6 {
		t.Errorf("N(0) = %d, want 6", shape.N(0))
	}
	if shape.N(1) != 9 {
		t.Errorf("N(1) = %d, want 9", shape.N(1))
	}
}
