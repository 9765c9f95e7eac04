package vecn

import "github.com/hupe1980/vecn/internal/elem"

// Vec3 is a fixed 3-dimensional vector. Its underlying type is [3]T, so
// values are comparable with ==, index like arrays (v[0]..v[2]), and have
// the packed memory layout of a plain array. The zero value is the zero
// vector.
type Vec3[T Number] [3]T

// V3 returns the vector (x, y, z).
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Vec3FromSlice returns a vector holding the first 3 elements of src.
// If src is shorter, the remaining components are zero; if longer, the
// excess is ignored.
func Vec3FromSlice[T Number](src []T) (v Vec3[T]) {
	copy(v[:], src)
	return v
}

// Dims returns 3.
func (Vec3[T]) Dims() int { return 3 }

// X returns the first component (v[0]).
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component (v[1]).
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component (v[2]).
func (v Vec3[T]) Z() T { return v[2] }

// SetX sets the first component (v[0]).
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY sets the second component (v[1]).
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ sets the third component (v[2]).
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// Add returns the element-wise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	elem.Add(v[:], v[:], w[:])
	return v
}

// Sub returns the element-wise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	elem.Sub(v[:], v[:], w[:])
	return v
}

// Mul returns the element-wise product v * w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	elem.Mul(v[:], v[:], w[:])
	return v
}

// Div returns the element-wise quotient v / w, with the native division
// semantics of T.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	elem.Div(v[:], v[:], w[:])
	return v
}

// AddScalar returns v with s added to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	elem.AddScalar(v[:], v[:], s)
	return v
}

// SubScalar returns v with s subtracted from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	elem.SubScalar(v[:], v[:], s)
	return v
}

// MulScalar returns v with every component multiplied by s.
func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	elem.MulScalar(v[:], v[:], s)
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	elem.DivScalar(v[:], v[:], s)
	return v
}

// Dot calculates the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return elem.Dot(v[:], w[:])
}

// Cross calculates the 3D cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length2 calculates the squared length of v in T. For integer T the sum
// truncates and may overflow per native integer arithmetic.
func (v Vec3[T]) Length2() T {
	return elem.SquaredLength(v[:])
}

// Length calculates the length of v.
func (v Vec3[T]) Length() T {
	return elem.Sqrt(v.Length2())
}

// Distance2 calculates the squared Euclidean distance between v and w.
func (v Vec3[T]) Distance2(w Vec3[T]) T {
	return v.Sub(w).Length2()
}

// Distance calculates the Euclidean distance between v and w.
func (v Vec3[T]) Distance(w Vec3[T]) T {
	return v.Sub(w).Length()
}

// Shrink2 returns (x, y).
func (v Vec3[T]) Shrink2() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Expand4 returns (x, y, z, 0).
func (v Vec3[T]) Expand4() Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2]}
}

// ExpandN returns a VecN of the given dimension whose first 3 components
// equal v and whose remainder is zero. Panics unless dims > 3.
func (v Vec3[T]) ExpandN(dims int) VecN[T] {
	return expandFixed(v[:], dims)
}

// Slice returns a view of v's storage as a slice of length 3. The view
// aliases v: writes through the slice mutate the vector, and the slice is
// only valid while v is.
func (v *Vec3[T]) Slice() []T {
	return v[:]
}

// CopyTo copies min(len(dst), 3) components into dst and returns the
// number copied. v is not affected.
func (v Vec3[T]) CopyTo(dst []T) int {
	return copy(dst, v[:])
}

// String renders v as "vec<TYPE,3>(x,y,z)".
func (v Vec3[T]) String() string {
	return elem.Sprint(v[:])
}
