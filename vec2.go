package vecn

import "github.com/hupe1980/vecn/internal/elem"

// Vec2 is a fixed 2-dimensional vector. Its underlying type is [2]T, so
// values are comparable with ==, index like arrays (v[0], v[1]), and have
// the packed memory layout of a plain array. The zero value is the zero
// vector.
type Vec2[T Number] [2]T

// V2 returns the vector (x, y).
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Vec2FromSlice returns a vector holding the first 2 elements of src.
// If src is shorter, the remaining components are zero; if longer, the
// excess is ignored.
func Vec2FromSlice[T Number](src []T) (v Vec2[T]) {
	copy(v[:], src)
	return v
}

// Dims returns 2.
func (Vec2[T]) Dims() int { return 2 }

// X returns the first component (v[0]).
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component (v[1]).
func (v Vec2[T]) Y() T { return v[1] }

// SetX sets the first component (v[0]).
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY sets the second component (v[1]).
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Add returns the element-wise sum v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	elem.Add(v[:], v[:], w[:])
	return v
}

// Sub returns the element-wise difference v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	elem.Sub(v[:], v[:], w[:])
	return v
}

// Mul returns the element-wise product v * w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	elem.Mul(v[:], v[:], w[:])
	return v
}

// Div returns the element-wise quotient v / w, with the native division
// semantics of T.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	elem.Div(v[:], v[:], w[:])
	return v
}

// AddScalar returns v with s added to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	elem.AddScalar(v[:], v[:], s)
	return v
}

// SubScalar returns v with s subtracted from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	elem.SubScalar(v[:], v[:], s)
	return v
}

// MulScalar returns v with every component multiplied by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	elem.MulScalar(v[:], v[:], s)
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	elem.DivScalar(v[:], v[:], s)
	return v
}

// Dot calculates the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return elem.Dot(v[:], w[:])
}

// Length2 calculates the squared length of v in T. For integer T the sum
// truncates and may overflow per native integer arithmetic.
func (v Vec2[T]) Length2() T {
	return elem.SquaredLength(v[:])
}

// Length calculates the length of v.
func (v Vec2[T]) Length() T {
	return elem.Sqrt(v.Length2())
}

// Distance2 calculates the squared Euclidean distance between v and w.
func (v Vec2[T]) Distance2(w Vec2[T]) T {
	return v.Sub(w).Length2()
}

// Distance calculates the Euclidean distance between v and w.
func (v Vec2[T]) Distance(w Vec2[T]) T {
	return v.Sub(w).Length()
}

// Expand3 returns (x, y, 0).
func (v Vec2[T]) Expand3() Vec3[T] {
	return Vec3[T]{v[0], v[1]}
}

// Expand4 returns (x, y, 0, 0).
func (v Vec2[T]) Expand4() Vec4[T] {
	return Vec4[T]{v[0], v[1]}
}

// ExpandN returns a VecN of the given dimension whose first 2 components
// equal v and whose remainder is zero. Panics unless dims > 2.
func (v Vec2[T]) ExpandN(dims int) VecN[T] {
	return expandFixed(v[:], dims)
}

// Slice returns a view of v's storage as a slice of length 2. The view
// aliases v: writes through the slice mutate the vector, and the slice is
// only valid while v is.
func (v *Vec2[T]) Slice() []T {
	return v[:]
}

// CopyTo copies min(len(dst), 2) components into dst and returns the
// number copied. v is not affected.
func (v Vec2[T]) CopyTo(dst []T) int {
	return copy(dst, v[:])
}

// String renders v as "vec<TYPE,2>(x,y)".
func (v Vec2[T]) String() string {
	return elem.Sprint(v[:])
}
