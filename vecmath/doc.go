// Package vecmath lifts the scalar functions of the standard math package
// to operate elementwise over vectors.
//
// Each adapter applies the identically named math function to every
// component and returns a vector of the same shape; precision, domain
// errors and special values (NaN, ±Inf) are exactly those of the platform
// math package. Plain names (Sin, Pow, ...) take the generic VecN form;
// the V2/V3/V4-suffixed variants take the fixed forms.
//
// Two-argument functions (Atan2, Mod, Pow) come in a pairwise form taking a
// second vector and an S form broadcasting a scalar to every component:
//
//	vecmath.PowV3(v, w)     // (v.x^w.x, v.y^w.y, v.z^w.z)
//	vecmath.PowSV3(v, 2)    // (v.x², v.y², v.z²)
//
// All adapters are restricted to floating-point element types; applying
// one to an integer-typed vector does not compile.
package vecmath
