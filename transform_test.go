package skilltree

import "testing"

func TestMultiplyAffine(t *testing.T) {
	tests := []struct {
		name         string
		m            [6]float64
		x, y         float64
		wantX, wantY float64
	}{
		{"scale then translate", multiplyAffine(translateAffine(10, 20), scaleAffine(2)), 3, 4, 16, 28},
		{"translate then scale", multiplyAffine(scaleAffine(2), translateAffine(10, 20)), 3, 4, 26, 48},
		{"translations add", multiplyAffine(translateAffine(-40, 17), translateAffine(40, -17)), 12.5, -7, 12.5, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TransformPoint(tt.m, tt.x, tt.y)
			if !approxEqual(x, tt.wantX, epsilon) || !approxEqual(y, tt.wantY, epsilon) {
				t.Errorf("TransformPoint = (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRoundInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{-0.5, -1},
		{1.49, 1},
		{-18.92, -19},
	}
	for _, tt := range tests {
		if got := roundInt(tt.in); got != tt.want {
			t.Errorf("roundInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
