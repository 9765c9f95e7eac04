package vecn

import "github.com/hupe1980/vecn/internal/elem"

// Number is satisfied by every element type a vector can hold: all fixed
// and platform-sized integer widths plus float32 and float64.
type Number = elem.Number

// Float is satisfied by the floating-point element types. The elementwise
// adapters in package vecmath only accept Float elements.
type Float = elem.Float

// Signed is satisfied by the signed integer element types.
type Signed = elem.Signed

// Unsigned is satisfied by the unsigned integer element types.
type Unsigned = elem.Unsigned

// Integer is satisfied by all integer element types.
type Integer = elem.Integer
