package vecmath

import (
	"math"

	"github.com/hupe1980/vecn"
)

// Abs applies math.Abs to every element of v.
func Abs[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Abs) }

// AbsV2 is Abs for the fixed 2-dimensional form.
func AbsV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Abs)
	return v
}

// AbsV3 is Abs for the fixed 3-dimensional form.
func AbsV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Abs)
	return v
}

// AbsV4 is Abs for the fixed 4-dimensional form.
func AbsV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Abs)
	return v
}

// Acos applies math.Acos to every element of v.
func Acos[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Acos) }

// AcosV2 is Acos for the fixed 2-dimensional form.
func AcosV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Acos)
	return v
}

// AcosV3 is Acos for the fixed 3-dimensional form.
func AcosV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Acos)
	return v
}

// AcosV4 is Acos for the fixed 4-dimensional form.
func AcosV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Acos)
	return v
}

// Asin applies math.Asin to every element of v.
func Asin[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Asin) }

// AsinV2 is Asin for the fixed 2-dimensional form.
func AsinV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Asin)
	return v
}

// AsinV3 is Asin for the fixed 3-dimensional form.
func AsinV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Asin)
	return v
}

// AsinV4 is Asin for the fixed 4-dimensional form.
func AsinV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Asin)
	return v
}

// Atan applies math.Atan to every element of v.
func Atan[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Atan) }

// AtanV2 is Atan for the fixed 2-dimensional form.
func AtanV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Atan)
	return v
}

// AtanV3 is Atan for the fixed 3-dimensional form.
func AtanV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Atan)
	return v
}

// AtanV4 is Atan for the fixed 4-dimensional form.
func AtanV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Atan)
	return v
}

// Ceil applies math.Ceil to every element of v.
func Ceil[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Ceil) }

// CeilV2 is Ceil for the fixed 2-dimensional form.
func CeilV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Ceil)
	return v
}

// CeilV3 is Ceil for the fixed 3-dimensional form.
func CeilV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Ceil)
	return v
}

// CeilV4 is Ceil for the fixed 4-dimensional form.
func CeilV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Ceil)
	return v
}

// Cos applies math.Cos to every element of v.
func Cos[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Cos) }

// CosV2 is Cos for the fixed 2-dimensional form.
func CosV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Cos)
	return v
}

// CosV3 is Cos for the fixed 3-dimensional form.
func CosV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Cos)
	return v
}

// CosV4 is Cos for the fixed 4-dimensional form.
func CosV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Cos)
	return v
}

// Cosh applies math.Cosh to every element of v.
func Cosh[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Cosh) }

// CoshV2 is Cosh for the fixed 2-dimensional form.
func CoshV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Cosh)
	return v
}

// CoshV3 is Cosh for the fixed 3-dimensional form.
func CoshV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Cosh)
	return v
}

// CoshV4 is Cosh for the fixed 4-dimensional form.
func CoshV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Cosh)
	return v
}

// Exp applies math.Exp to every element of v.
func Exp[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Exp) }

// ExpV2 is Exp for the fixed 2-dimensional form.
func ExpV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Exp)
	return v
}

// ExpV3 is Exp for the fixed 3-dimensional form.
func ExpV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Exp)
	return v
}

// ExpV4 is Exp for the fixed 4-dimensional form.
func ExpV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Exp)
	return v
}

// Floor applies math.Floor to every element of v.
func Floor[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Floor) }

// FloorV2 is Floor for the fixed 2-dimensional form.
func FloorV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Floor)
	return v
}

// FloorV3 is Floor for the fixed 3-dimensional form.
func FloorV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Floor)
	return v
}

// FloorV4 is Floor for the fixed 4-dimensional form.
func FloorV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Floor)
	return v
}

// Log applies math.Log to every element of v.
func Log[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Log) }

// LogV2 is Log for the fixed 2-dimensional form.
func LogV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Log)
	return v
}

// LogV3 is Log for the fixed 3-dimensional form.
func LogV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Log)
	return v
}

// LogV4 is Log for the fixed 4-dimensional form.
func LogV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Log)
	return v
}

// Log10 applies math.Log10 to every element of v.
func Log10[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Log10) }

// Log10V2 is Log10 for the fixed 2-dimensional form.
func Log10V2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Log10)
	return v
}

// Log10V3 is Log10 for the fixed 3-dimensional form.
func Log10V3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Log10)
	return v
}

// Log10V4 is Log10 for the fixed 4-dimensional form.
func Log10V4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Log10)
	return v
}

// Round applies math.Round to every element of v.
func Round[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Round) }

// RoundV2 is Round for the fixed 2-dimensional form.
func RoundV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Round)
	return v
}

// RoundV3 is Round for the fixed 3-dimensional form.
func RoundV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Round)
	return v
}

// RoundV4 is Round for the fixed 4-dimensional form.
func RoundV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Round)
	return v
}

// Sin applies math.Sin to every element of v.
func Sin[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Sin) }

// SinV2 is Sin for the fixed 2-dimensional form.
func SinV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Sin)
	return v
}

// SinV3 is Sin for the fixed 3-dimensional form.
func SinV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Sin)
	return v
}

// SinV4 is Sin for the fixed 4-dimensional form.
func SinV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Sin)
	return v
}

// Sinh applies math.Sinh to every element of v.
func Sinh[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Sinh) }

// SinhV2 is Sinh for the fixed 2-dimensional form.
func SinhV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Sinh)
	return v
}

// SinhV3 is Sinh for the fixed 3-dimensional form.
func SinhV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Sinh)
	return v
}

// SinhV4 is Sinh for the fixed 4-dimensional form.
func SinhV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Sinh)
	return v
}

// Sqrt applies math.Sqrt to every element of v.
func Sqrt[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Sqrt) }

// SqrtV2 is Sqrt for the fixed 2-dimensional form.
func SqrtV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Sqrt)
	return v
}

// SqrtV3 is Sqrt for the fixed 3-dimensional form.
func SqrtV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Sqrt)
	return v
}

// SqrtV4 is Sqrt for the fixed 4-dimensional form.
func SqrtV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Sqrt)
	return v
}

// Tan applies math.Tan to every element of v.
func Tan[T vecn.Float](v vecn.VecN[T]) vecn.VecN[T] { return lift(v, math.Tan) }

// TanV2 is Tan for the fixed 2-dimensional form.
func TanV2[T vecn.Float](v vecn.Vec2[T]) vecn.Vec2[T] {
	apply(v[:], v[:], math.Tan)
	return v
}

// TanV3 is Tan for the fixed 3-dimensional form.
func TanV3[T vecn.Float](v vecn.Vec3[T]) vecn.Vec3[T] {
	apply(v[:], v[:], math.Tan)
	return v
}

// TanV4 is Tan for the fixed 4-dimensional form.
func TanV4[T vecn.Float](v vecn.Vec4[T]) vecn.Vec4[T] {
	apply(v[:], v[:], math.Tan)
	return v
}
