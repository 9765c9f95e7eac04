package elem

import (
	"fmt"
	"math"
	"strings"
)

// Add stores a[i] + b[i] into dst[i]. dst may alias a or b.
func Add[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub stores a[i] - b[i] into dst[i]. dst may alias a or b.
func Sub[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul stores a[i] * b[i] into dst[i]. dst may alias a or b.
func Mul[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div stores a[i] / b[i] into dst[i]. dst may alias a or b.
// Division follows the native semantics of T: integer division by zero
// panics, floating-point division by zero yields ±Inf or NaN.
func Div[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// AddScalar stores a[i] + s into dst[i]. dst may alias a.
func AddScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

// SubScalar stores a[i] - s into dst[i]. dst may alias a.
func SubScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

// MulScalar stores a[i] * s into dst[i]. dst may alias a.
func MulScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// DivScalar stores a[i] / s into dst[i]. dst may alias a.
func DivScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// Dot calculates the dot product of a and b.
func Dot[T Number](a, b []T) T {
	var out T
	for i := range a {
		out += a[i] * b[i]
	}
	return out
}

// SquaredLength calculates the sum of squares of v's elements in T.
// For integer T the sum truncates and may overflow per native integer
// arithmetic.
func SquaredLength[T Number](v []T) T {
	var out T
	for _, e := range v {
		out += e * e
	}
	return out
}

// Sqrt calculates the square root of x through float64 and converts the
// result back to T.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Equal reports whether a and b have the same length and exactly equal
// elements. Floating-point elements are compared exactly, without
// tolerance.
func Equal[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Convert stores U(src[i]) into dst[i] using Go's numeric conversion
// rules; float values truncate toward zero when U is an integer type.
func Convert[U, T Number](dst []U, src []T) {
	for i := range dst {
		dst[i] = U(src[i])
	}
}

// Sprint renders elems as "vec<TYPE,n>(e0,e1,...)" where TYPE is the Go
// name of the element type and each element uses default %v formatting.
func Sprint[T Number](elems []T) string {
	var zero T

	var sb strings.Builder
	fmt.Fprintf(&sb, "vec<%T,%d>(", zero, len(elems))
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(')')

	return sb.String()
}
