package vecmath

import (
	"math"

	"github.com/hupe1980/vecn"
)

// Atan2 calculates the two-argument arctangent of each element pair y, x.
// Panics if the dimensions differ.
func Atan2[T vecn.Float](v, w vecn.VecN[T]) vecn.VecN[T] { return lift2(v, w, math.Atan2) }

// Atan2S is Atan2 with the scalar s broadcast to every element of the
// second operand.
func Atan2S[T vecn.Float](v vecn.VecN[T], s T) vecn.VecN[T] { return lift2s(v, s, math.Atan2) }

// Atan2V2 is Atan2 for the fixed 2-dimensional form.
func Atan2V2[T vecn.Float](v, w vecn.Vec2[T]) vecn.Vec2[T] {
	apply2(v[:], v[:], w[:], math.Atan2)
	return v
}

// Atan2SV2 is Atan2S for the fixed 2-dimensional form.
func Atan2SV2[T vecn.Float](v vecn.Vec2[T], s T) vecn.Vec2[T] {
	apply2s(v[:], v[:], s, math.Atan2)
	return v
}

// Atan2V3 is Atan2 for the fixed 3-dimensional form.
func Atan2V3[T vecn.Float](v, w vecn.Vec3[T]) vecn.Vec3[T] {
	apply2(v[:], v[:], w[:], math.Atan2)
	return v
}

// Atan2SV3 is Atan2S for the fixed 3-dimensional form.
func Atan2SV3[T vecn.Float](v vecn.Vec3[T], s T) vecn.Vec3[T] {
	apply2s(v[:], v[:], s, math.Atan2)
	return v
}

// Atan2V4 is Atan2 for the fixed 4-dimensional form.
func Atan2V4[T vecn.Float](v, w vecn.Vec4[T]) vecn.Vec4[T] {
	apply2(v[:], v[:], w[:], math.Atan2)
	return v
}

// Atan2SV4 is Atan2S for the fixed 4-dimensional form.
func Atan2SV4[T vecn.Float](v vecn.Vec4[T], s T) vecn.Vec4[T] {
	apply2s(v[:], v[:], s, math.Atan2)
	return v
}

// Mod calculates the floating-point remainder of each element pair.
// Panics if the dimensions differ.
func Mod[T vecn.Float](v, w vecn.VecN[T]) vecn.VecN[T] { return lift2(v, w, math.Mod) }

// ModS is Mod with the scalar s broadcast to every element of the
// second operand.
func ModS[T vecn.Float](v vecn.VecN[T], s T) vecn.VecN[T] { return lift2s(v, s, math.Mod) }

// ModV2 is Mod for the fixed 2-dimensional form.
func ModV2[T vecn.Float](v, w vecn.Vec2[T]) vecn.Vec2[T] {
	apply2(v[:], v[:], w[:], math.Mod)
	return v
}

// ModSV2 is ModS for the fixed 2-dimensional form.
func ModSV2[T vecn.Float](v vecn.Vec2[T], s T) vecn.Vec2[T] {
	apply2s(v[:], v[:], s, math.Mod)
	return v
}

// ModV3 is Mod for the fixed 3-dimensional form.
func ModV3[T vecn.Float](v, w vecn.Vec3[T]) vecn.Vec3[T] {
	apply2(v[:], v[:], w[:], math.Mod)
	return v
}

// ModSV3 is ModS for the fixed 3-dimensional form.
func ModSV3[T vecn.Float](v vecn.Vec3[T], s T) vecn.Vec3[T] {
	apply2s(v[:], v[:], s, math.Mod)
	return v
}

// ModV4 is Mod for the fixed 4-dimensional form.
func ModV4[T vecn.Float](v, w vecn.Vec4[T]) vecn.Vec4[T] {
	apply2(v[:], v[:], w[:], math.Mod)
	return v
}

// ModSV4 is ModS for the fixed 4-dimensional form.
func ModSV4[T vecn.Float](v vecn.Vec4[T], s T) vecn.Vec4[T] {
	apply2s(v[:], v[:], s, math.Mod)
	return v
}

// Pow calculates each element of the first operand raised to the corresponding element of the second.
// Panics if the dimensions differ.
func Pow[T vecn.Float](v, w vecn.VecN[T]) vecn.VecN[T] { return lift2(v, w, math.Pow) }

// PowS is Pow with the scalar s broadcast to every element of the
// second operand.
func PowS[T vecn.Float](v vecn.VecN[T], s T) vecn.VecN[T] { return lift2s(v, s, math.Pow) }

// PowV2 is Pow for the fixed 2-dimensional form.
func PowV2[T vecn.Float](v, w vecn.Vec2[T]) vecn.Vec2[T] {
	apply2(v[:], v[:], w[:], math.Pow)
	return v
}

// PowSV2 is PowS for the fixed 2-dimensional form.
func PowSV2[T vecn.Float](v vecn.Vec2[T], s T) vecn.Vec2[T] {
	apply2s(v[:], v[:], s, math.Pow)
	return v
}

// PowV3 is Pow for the fixed 3-dimensional form.
func PowV3[T vecn.Float](v, w vecn.Vec3[T]) vecn.Vec3[T] {
	apply2(v[:], v[:], w[:], math.Pow)
	return v
}

// PowSV3 is PowS for the fixed 3-dimensional form.
func PowSV3[T vecn.Float](v vecn.Vec3[T], s T) vecn.Vec3[T] {
	apply2s(v[:], v[:], s, math.Pow)
	return v
}

// PowV4 is Pow for the fixed 4-dimensional form.
func PowV4[T vecn.Float](v, w vecn.Vec4[T]) vecn.Vec4[T] {
	apply2(v[:], v[:], w[:], math.Pow)
	return v
}

// PowSV4 is PowS for the fixed 4-dimensional form.
func PowSV4[T vecn.Float](v vecn.Vec4[T], s T) vecn.Vec4[T] {
	apply2s(v[:], v[:], s, math.Pow)
	return v
}
