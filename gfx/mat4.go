package gfx

import "cogentcore.org/core/math32"

// Mat4 is a column-major 4x4 matrix, the layout a shader sees for a mat4
// uniform. Element 12 is the x translation.
type Mat4 = math32.Matrix4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return *math32.Identity4()
}

// Oscillation returns the horizontal offset applied at time t.
func Oscillation(t float32) float32 {
	return math32.Sin(t) * 0.5
}

// SpinTransform returns a rotation by angle t about the z axis followed by a
// horizontal translation of Oscillation(t).
func SpinTransform(t float32) Mat4 {
	s, c := math32.Sin(t), math32.Cos(t)

	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	m[12] = Oscillation(t)
	return m
}
