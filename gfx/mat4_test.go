package gfx_test

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/plus3/trispin/gfx"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-6

// trigEps bounds float32 trig against float64 math.
const trigEps = 1e-5

// rotation returns the upper-left 2x2 block of m in row-major order.
func rotation(m gfx.Mat4) [2][2]float32 {
	return [2][2]float32{
		{m[0], m[4]},
		{m[1], m[5]},
	}
}

// translation returns the x, y and z translation of m.
func translation(m gfx.Mat4) (x, y, z float32) {
	return m[12], m[13], m[14]
}

// sampleTimes covers a few turns in both directions.
func sampleTimes() []float32 {
	times := []float32{0, 0.02, 0.4, math.Pi / 2, math.Pi, -1.3}
	for i := 0; i < 50; i++ {
		times = append(times, float32(i)*0.37-5)
	}
	return times
}

func TestSpinTransformRotationBlock(t *testing.T) {
	for _, tm := range sampleTimes() {
		r := rotation(gfx.SpinTransform(tm))

		c, s := float32(math.Cos(float64(tm))), float32(math.Sin(float64(tm)))
		assert.InDelta(t, c, r[0][0], trigEps, "t=%v", tm)
		assert.InDelta(t, -s, r[0][1], trigEps, "t=%v", tm)
		assert.InDelta(t, s, r[1][0], trigEps, "t=%v", tm)
		assert.InDelta(t, c, r[1][1], trigEps, "t=%v", tm)

		row0 := r[0][0]*r[0][0] + r[0][1]*r[0][1]
		row1 := r[1][0]*r[1][0] + r[1][1]*r[1][1]
		col0 := r[0][0]*r[0][0] + r[1][0]*r[1][0]
		col1 := r[0][1]*r[0][1] + r[1][1]*r[1][1]
		dot := r[0][0]*r[1][0] + r[0][1]*r[1][1]

		assert.InDelta(t, 1, row0, eps, "t=%v", tm)
		assert.InDelta(t, 1, row1, eps, "t=%v", tm)
		assert.InDelta(t, 1, col0, eps, "t=%v", tm)
		assert.InDelta(t, 1, col1, eps, "t=%v", tm)
		assert.InDelta(t, 0, dot, eps, "t=%v", tm)
	}
}

func TestSpinTransformOrthonormalForLargeTimes(t *testing.T) {
	for _, tm := range []float32{100, 1000, 12345.678, -98765.4} {
		r := rotation(gfx.SpinTransform(tm))

		assert.InDelta(t, 1, r[0][0]*r[0][0]+r[0][1]*r[0][1], eps, "t=%v", tm)
		assert.InDelta(t, 1, r[1][0]*r[1][0]+r[1][1]*r[1][1], eps, "t=%v", tm)
		assert.InDelta(t, 0, r[0][0]*r[1][0]+r[0][1]*r[1][1], eps, "t=%v", tm)

		x, _, _ := translation(gfx.SpinTransform(tm))
		assert.Equal(t, gfx.Oscillation(tm), x)
		assert.LessOrEqual(t, float32(math.Abs(float64(x))), float32(0.5))
	}
}

func TestSpinTransformTranslation(t *testing.T) {
	for _, tm := range sampleTimes() {
		x, y, z := translation(gfx.SpinTransform(tm))

		assert.Equal(t, gfx.Oscillation(tm), x, "t=%v", tm)
		assert.InDelta(t, math.Sin(float64(tm))*0.5, x, trigEps, "t=%v", tm)
		assert.GreaterOrEqual(t, x, float32(-0.5))
		assert.LessOrEqual(t, x, float32(0.5))
		assert.Zero(t, y)
		assert.Zero(t, z)
	}
}

func TestSpinTransformAtZeroIsIdentity(t *testing.T) {
	assert.Equal(t, gfx.Identity(), gfx.SpinTransform(0))
}

func TestSpinTransformMovesVertex(t *testing.T) {
	m := gfx.SpinTransform(math.Pi / 2)
	x := gfx.Oscillation(math.Pi / 2)

	out := math32.Vec4(1, 0, 0, 1).MulMatrix4(&m)

	assert.InDelta(t, x, out.X, eps)
	assert.InDelta(t, 1, out.Y, eps)
	assert.InDelta(t, 0, out.Z, eps)
	assert.InDelta(t, 1, out.W, eps)
}

func TestSpinTransformColumnMajor(t *testing.T) {
	m := gfx.SpinTransform(0.5)

	assert.Equal(t, math32.Sin(0.5), m[1])
	assert.Equal(t, -math32.Sin(0.5), m[4])
	assert.Equal(t, gfx.Oscillation(0.5), m[12])
	assert.Equal(t, float32(1), m[10])
	assert.Equal(t, float32(1), m[15])
}
