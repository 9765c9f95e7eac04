package vecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVecN(t *testing.T) {
	v := NewVecN[float32](5)
	require.Equal(t, 5, v.Dims())
	for i := range v {
		assert.Equal(t, float32(0), v[i])
	}
}

func TestVecNConstructorPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewVecN[int](1) })
	assert.Panics(t, func() { NewVecN[int](0) })
	assert.Panics(t, func() { NewVecN[int](-3) })
	assert.Panics(t, func() { VecNOf(1.0) })
	assert.Panics(t, func() { VecNFromSlice(1, []int{1, 2}) })
}

func TestVecNOf(t *testing.T) {
	v := VecNOf(1, 2, 3, 4, 5)
	assert.Equal(t, 5, v.Dims())
	assert.Equal(t, VecN[int]{1, 2, 3, 4, 5}, v)
}

func TestVecNFromSlice(t *testing.T) {
	tests := []struct {
		name     string
		dims     int
		src      []float64
		expected VecN[float64]
	}{
		{"Exact", 3, []float64{1, 2, 3}, VecN[float64]{1, 2, 3}},
		{"ShortZeroFills", 5, []float64{1, 2}, VecN[float64]{1, 2, 0, 0, 0}},
		{"LongTruncates", 2, []float64{1, 2, 3}, VecN[float64]{1, 2}},
		{"NilIsZero", 4, nil, VecN[float64]{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VecNFromSlice(tt.dims, tt.src))
		})
	}
}

func TestVecNClone(t *testing.T) {
	v := VecNOf(1, 2, 3)
	w := v.Clone()

	w[0] = 9
	assert.Equal(t, 1, v[0])
	assert.True(t, v.Eq(VecNOf(1, 2, 3)))
}

func TestVecNEq(t *testing.T) {
	v := VecNOf(1.0, 2.0, 3.0)

	assert.True(t, v.Eq(VecNOf(1.0, 2.0, 3.0)))
	assert.False(t, v.Eq(VecNOf(1.0, 2.0, 4.0)))
	assert.False(t, v.Eq(VecNOf(1.0, 2.0)))
}

func TestVecNArithmetic(t *testing.T) {
	p := VecNOf[float64](1, 2, 3, 4, 5)
	q := VecNOf[float64](5, 4, 3, 2, 1)

	sum := p.Add(q)
	for i := range sum {
		assert.Equal(t, p[i]+q[i], sum[i])
	}

	assert.Equal(t, VecN[float64]{-4, -2, 0, 2, 4}, p.Sub(q))
	assert.Equal(t, VecN[float64]{5, 8, 9, 8, 5}, p.Mul(q))
	assert.Equal(t, VecN[float64]{0.2, 0.5, 1, 2, 5}, p.Div(q))

	// Operands are never mutated.
	assert.Equal(t, VecNOf[float64](1, 2, 3, 4, 5), p)
	assert.Equal(t, VecNOf[float64](5, 4, 3, 2, 1), q)
}

func TestVecNScalarArithmetic(t *testing.T) {
	p := VecNOf[int](2, 4, 6, 8, 10)

	assert.Equal(t, VecN[int]{3, 5, 7, 9, 11}, p.AddScalar(1))
	assert.Equal(t, VecN[int]{1, 3, 5, 7, 9}, p.SubScalar(1))
	assert.Equal(t, VecN[int]{4, 8, 12, 16, 20}, p.MulScalar(2))
	assert.Equal(t, VecN[int]{1, 2, 3, 4, 5}, p.DivScalar(2))
}

func TestVecNDimensionMismatch(t *testing.T) {
	p := VecNOf(1.0, 2.0, 3.0)
	q := VecNOf(1.0, 2.0)

	assert.Panics(t, func() { p.Add(q) })
	assert.Panics(t, func() { p.Sub(q) })
	assert.Panics(t, func() { p.Mul(q) })
	assert.Panics(t, func() { p.Div(q) })
	assert.Panics(t, func() { p.Dot(q) })
}

func TestVecNReassignment(t *testing.T) {
	v := NewVecN[int](7)
	const s = 100
	for i := range v {
		v[i] = s + i
	}
	for i := range v {
		assert.Equal(t, s+i, v[i])
	}
}

func TestVecNGeometric(t *testing.T) {
	p := VecNOf[float64](1, 2, 3, 4, 5)

	assert.Equal(t, float64(55), p.Length2())
	assert.Equal(t, p.Dot(p), p.Length2())
	assert.Equal(t, float64(0), p.Distance(p))

	q := VecNOf[float64](1, 2, 3, 4, 13)
	assert.Equal(t, float64(64), p.Distance2(q))
	assert.Equal(t, float64(8), p.Distance(q))
}

func TestVecNResize(t *testing.T) {
	p := VecNOf[float32](1, 2, 3, 4, 5)

	t.Run("Expand", func(t *testing.T) {
		assert.Equal(t, VecNOf[float32](1, 2, 3, 4, 5, 0, 0), p.Expand(7))
		assert.Panics(t, func() { p.Expand(5) })
		assert.Panics(t, func() { p.Expand(4) })
	})

	t.Run("Shrink", func(t *testing.T) {
		assert.Equal(t, VecNOf[float32](1, 2, 3), p.Shrink(3))
		assert.Panics(t, func() { p.Shrink(5) })
		assert.Panics(t, func() { p.Shrink(6) })
		assert.Panics(t, func() { p.Shrink(1) })
	})

	t.Run("RoundTrip", func(t *testing.T) {
		assert.True(t, p.Eq(p.Expand(9).Shrink(5)))
	})
}

func TestVecNCopyTo(t *testing.T) {
	p := VecNOf(1, 2, 3, 4, 5)

	dst := make([]int, 3)
	assert.Equal(t, 3, p.CopyTo(dst))
	assert.Equal(t, []int{1, 2, 3}, dst)

	wide := make([]int, 7)
	assert.Equal(t, 5, p.CopyTo(wide))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 0, 0}, wide)
}

func TestVecNString(t *testing.T) {
	assert.Equal(t, "vec<float64,5>(1,2.5,3,4,5)", VecNOf(1.0, 2.5, 3.0, 4.0, 5.0).String())
	assert.Equal(t, "vec<uint16,6>(1,2,3,4,5,6)", VecNOf[uint16](1, 2, 3, 4, 5, 6).String())
}
