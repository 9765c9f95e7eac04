package vecn

import "github.com/hupe1980/vecn/internal/elem"

// Convert2 returns v with every component converted to U using Go's
// numeric conversion rules; float values truncate toward zero when U is an
// integer type.
func Convert2[U, T Number](v Vec2[T]) Vec2[U] {
	var out Vec2[U]
	elem.Convert(out[:], v[:])
	return out
}

// Convert3 returns v with every component converted to U using Go's
// numeric conversion rules; float values truncate toward zero when U is an
// integer type.
func Convert3[U, T Number](v Vec3[T]) Vec3[U] {
	var out Vec3[U]
	elem.Convert(out[:], v[:])
	return out
}

// Convert4 returns v with every component converted to U using Go's
// numeric conversion rules; float values truncate toward zero when U is an
// integer type.
func Convert4[U, T Number](v Vec4[T]) Vec4[U] {
	var out Vec4[U]
	elem.Convert(out[:], v[:])
	return out
}

// ConvertN returns v with every component converted to U using Go's
// numeric conversion rules; float values truncate toward zero when U is an
// integer type. The dimension is preserved.
func ConvertN[U, T Number](v VecN[T]) VecN[U] {
	out := make(VecN[U], len(v))
	elem.Convert(out, v)
	return out
}
