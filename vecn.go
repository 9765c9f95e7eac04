package vecn

import "github.com/hupe1980/vecn/internal/elem"

// VecN is the generic N-dimensional vector form, used for any dimension
// the fixed Vec2/Vec3/Vec4 forms do not cover. It is backed by a
// contiguous slice whose length is the vector's dimension, fixed at
// construction; no operation changes it.
//
// VecN is itself the raw buffer view of its elements: v[i] indexes
// component i, and passing v where a []T is expected aliases the vector's
// storage. Operations never mutate their operands; they return fresh
// vectors. Note that plain assignment copies the slice header, not the
// elements; use Clone for an independent copy.
type VecN[T Number] []T

// NewVecN returns the zero vector of the given dimension.
// Panics unless dims >= 2.
func NewVecN[T Number](dims int) VecN[T] {
	mustDims(dims)
	return make(VecN[T], dims)
}

// VecNOf returns the vector holding exactly the listed elements; its
// dimension is the argument count. Panics unless at least 2 elements are
// given.
func VecNOf[T Number](elems ...T) VecN[T] {
	mustDims(len(elems))
	out := make(VecN[T], len(elems))
	copy(out, elems)
	return out
}

// VecNFromSlice returns a vector of the given dimension holding the first
// dims elements of src. If src is shorter, the remaining components are
// zero; if longer, the excess is ignored. Panics unless dims >= 2.
func VecNFromSlice[T Number](dims int, src []T) VecN[T] {
	mustDims(dims)
	out := make(VecN[T], dims)
	copy(out, src)
	return out
}

func mustDims(dims int) {
	if dims < 2 {
		panic("vecn: a vector needs at least 2 dimensions")
	}
}

func (v VecN[T]) mustMatch(w VecN[T]) {
	if len(v) != len(w) {
		panic("vecn: dimension mismatch")
	}
}

// expandFixed backs the ExpandN methods of the fixed forms.
func expandFixed[T Number](src []T, dims int) VecN[T] {
	if dims <= len(src) {
		panic("vecn: expand target must exceed the source dimension")
	}
	out := make(VecN[T], dims)
	copy(out, src)
	return out
}

// Dims returns the dimension of v.
func (v VecN[T]) Dims() int { return len(v) }

// Clone returns an independent copy of v.
func (v VecN[T]) Clone() VecN[T] {
	out := make(VecN[T], len(v))
	copy(out, v)
	return out
}

// Eq reports whether v and w have the same dimension and exactly equal
// elements. Floating-point elements are compared exactly, without
// tolerance.
func (v VecN[T]) Eq(w VecN[T]) bool {
	return elem.Equal(v, w)
}

// Add returns the element-wise sum v + w.
// Panics if the dimensions differ.
func (v VecN[T]) Add(w VecN[T]) VecN[T] {
	v.mustMatch(w)
	out := make(VecN[T], len(v))
	elem.Add(out, v, w)
	return out
}

// Sub returns the element-wise difference v - w.
// Panics if the dimensions differ.
func (v VecN[T]) Sub(w VecN[T]) VecN[T] {
	v.mustMatch(w)
	out := make(VecN[T], len(v))
	elem.Sub(out, v, w)
	return out
}

// Mul returns the element-wise product v * w.
// Panics if the dimensions differ.
func (v VecN[T]) Mul(w VecN[T]) VecN[T] {
	v.mustMatch(w)
	out := make(VecN[T], len(v))
	elem.Mul(out, v, w)
	return out
}

// Div returns the element-wise quotient v / w, with the native division
// semantics of T. Panics if the dimensions differ.
func (v VecN[T]) Div(w VecN[T]) VecN[T] {
	v.mustMatch(w)
	out := make(VecN[T], len(v))
	elem.Div(out, v, w)
	return out
}

// AddScalar returns v with s added to every component.
func (v VecN[T]) AddScalar(s T) VecN[T] {
	out := make(VecN[T], len(v))
	elem.AddScalar(out, v, s)
	return out
}

// SubScalar returns v with s subtracted from every component.
func (v VecN[T]) SubScalar(s T) VecN[T] {
	out := make(VecN[T], len(v))
	elem.SubScalar(out, v, s)
	return out
}

// MulScalar returns v with every component multiplied by s.
func (v VecN[T]) MulScalar(s T) VecN[T] {
	out := make(VecN[T], len(v))
	elem.MulScalar(out, v, s)
	return out
}

// DivScalar returns v with every component divided by s.
func (v VecN[T]) DivScalar(s T) VecN[T] {
	out := make(VecN[T], len(v))
	elem.DivScalar(out, v, s)
	return out
}

// Dot calculates the dot product of v and w.
// Panics if the dimensions differ.
func (v VecN[T]) Dot(w VecN[T]) T {
	v.mustMatch(w)
	return elem.Dot(v, w)
}

// Length2 calculates the squared length of v in T. For integer T the sum
// truncates and may overflow per native integer arithmetic.
func (v VecN[T]) Length2() T {
	return elem.SquaredLength(v)
}

// Length calculates the length of v.
func (v VecN[T]) Length() T {
	return elem.Sqrt(v.Length2())
}

// Distance2 calculates the squared Euclidean distance between v and w.
// Panics if the dimensions differ.
func (v VecN[T]) Distance2(w VecN[T]) T {
	return v.Sub(w).Length2()
}

// Distance calculates the Euclidean distance between v and w.
// Panics if the dimensions differ.
func (v VecN[T]) Distance(w VecN[T]) T {
	return v.Sub(w).Length()
}

// Expand returns a vector of the given dimension whose first Dims()
// components equal v and whose remainder is zero.
// Panics unless dims > Dims().
func (v VecN[T]) Expand(dims int) VecN[T] {
	return expandFixed(v, dims)
}

// Shrink returns a vector of the given dimension holding the first dims
// components of v. Panics unless 1 < dims < Dims().
func (v VecN[T]) Shrink(dims int) VecN[T] {
	if dims >= len(v) || dims < 2 {
		panic("vecn: shrink target must be between 2 and the source dimension")
	}
	out := make(VecN[T], dims)
	copy(out, v)
	return out
}

// CopyTo copies min(len(dst), Dims()) components into dst and returns the
// number copied. v is not affected.
func (v VecN[T]) CopyTo(dst []T) int {
	return copy(dst, v)
}

// String renders v as "vec<TYPE,n>(e0,e1,...)".
func (v VecN[T]) String() string {
	return elem.Sprint(v)
}
