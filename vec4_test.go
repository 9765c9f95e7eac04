package vecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec4Zero(t *testing.T) {
	var v Vec4[uint32]
	assert.Equal(t, V4[uint32](0, 0, 0, 0), v)
}

func TestVec4FromSlice(t *testing.T) {
	assert.Equal(t, V4[float32](1, 2, 3, 4), Vec4FromSlice([]float32{1, 2, 3, 4}))
	assert.Equal(t, V4[float32](1, 2, 0, 0), Vec4FromSlice([]float32{1, 2}))
}

func TestVec4Arithmetic(t *testing.T) {
	p := V4[int](8, 6, 4, 2)
	q := V4[int](1, 2, 4, 2)

	assert.Equal(t, V4[int](9, 8, 8, 4), p.Add(q))
	assert.Equal(t, V4[int](7, 4, 0, 0), p.Sub(q))
	assert.Equal(t, V4[int](8, 12, 16, 4), p.Mul(q))
	assert.Equal(t, V4[int](8, 3, 1, 1), p.Div(q))
	assert.Equal(t, V4[int](4, 3, 2, 1), p.DivScalar(2))
}

func TestVec4AccessorAliasing(t *testing.T) {
	var v Vec4[float64]
	v.SetX(1)
	v.SetY(2)
	v.SetZ(3)
	v.SetW(4)
	assert.Equal(t, Vec4[float64]{1, 2, 3, 4}, v)

	// Every constant index observes the same storage as its accessor,
	// including index 3 / W.
	v[3] = 40
	assert.Equal(t, float64(40), v.W())
	assert.Equal(t, float64(3), v.Z())
}

func TestVec4Geometric(t *testing.T) {
	p := V4[float64](1, 2, 3, 4)

	assert.Equal(t, float64(30), p.Length2())
	assert.Equal(t, float64(30), p.Dot(p))
	assert.Equal(t, float64(0), p.Distance2(p))
}

func TestVec4Resize(t *testing.T) {
	p := V4[float32](1, 2, 3, 4)

	// Shrinking to 3 keeps (x, y, z); shrinking to 2 keeps (x, y).
	assert.Equal(t, V3[float32](1, 2, 3), p.Shrink3())
	assert.Equal(t, V2[float32](1, 2), p.Shrink2())

	assert.Equal(t, VecNOf[float32](1, 2, 3, 4, 0), p.ExpandN(5))
	assert.Panics(t, func() { p.ExpandN(4) })
}

func TestVec4Equality(t *testing.T) {
	p := V4[float64](1, 2, 3, 4)
	assert.True(t, p == V4[float64](1, 2, 3, 4))
	assert.True(t, p != V4[float64](1, 2, 3, 5))
}

func TestVec4String(t *testing.T) {
	assert.Equal(t, "vec<int32,4>(1,2,3,4)", V4[int32](1, 2, 3, 4).String())
}

func TestVec4CopyTo(t *testing.T) {
	p := V4[int](1, 2, 3, 4)
	dst := make([]int, 3)
	assert.Equal(t, 3, p.CopyTo(dst))
	assert.Equal(t, []int{1, 2, 3}, dst)
}
