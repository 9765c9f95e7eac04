package vecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert2(t *testing.T) {
	t.Run("FloatToIntTruncatesTowardZero", func(t *testing.T) {
		v := V2[float64](2.9, -2.9)
		assert.Equal(t, V2[int](2, -2), Convert2[int](v))
	})

	t.Run("IntToFloat", func(t *testing.T) {
		v := V2[int8](3, -4)
		assert.Equal(t, V2[float32](3, -4), Convert2[float32](v))
	})
}

func TestConvert3(t *testing.T) {
	v := V3[float32](1.5, 2.5, -3.5)
	assert.Equal(t, V3[int32](1, 2, -3), Convert3[int32](v))
	assert.Equal(t, V3[float64](1.5, 2.5, -3.5), Convert3[float64](v))
}

func TestConvert4(t *testing.T) {
	v := V4[uint8](250, 1, 2, 3)
	assert.Equal(t, V4[int](250, 1, 2, 3), Convert4[int](v))
}

func TestConvertN(t *testing.T) {
	v := VecNOf(1.9, 2.1, -3.9, 4.5, 5.0)
	got := ConvertN[int64](v)

	assert.Equal(t, v.Dims(), got.Dims())
	assert.Equal(t, VecN[int64]{1, 2, -3, 4, 5}, got)
}

func TestConvertRoundTripWidening(t *testing.T) {
	// int16 -> float64 -> int16 is lossless for in-range values.
	v := V3[int16](-300, 0, 300)
	assert.Equal(t, v, Convert3[int16](Convert3[float64](v)))
}
