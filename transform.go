package skilltree

import "math"

// View matrices are [6]float64{a, b, c, d, tx, ty}, mapping a point (x, y)
// to (a*x + c*y + tx, b*x + d*y + ty).

func translateAffine(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

func scaleAffine(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}

// multiplyAffine composes two matrices; inner is applied to a point first.
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	var m [6]float64
	m[0] = outer[0]*inner[0] + outer[2]*inner[1]
	m[1] = outer[1]*inner[0] + outer[3]*inner[1]
	m[2] = outer[0]*inner[2] + outer[2]*inner[3]
	m[3] = outer[1]*inner[2] + outer[3]*inner[3]
	m[4], m[5] = TransformPoint(outer, inner[4], inner[5])
	return m
}

// TransformPoint maps (x, y) through m, typically a Camera.ViewMatrix.
func TransformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// roundInt rounds half away from zero. All pixel snapping goes through it.
func roundInt(v float64) int {
	return int(math.Round(v))
}
