// Package vecn provides small fixed-size numeric vectors, generic over all
// integer and floating-point element types.
//
// Two structural forms share one operation set:
//
//   - Vec2, Vec3 and Vec4 are defined array types with named component
//     access (X, Y, Z, W). They are comparable with ==, their zero value is
//     the zero vector, and their memory image is exactly a packed [n]T.
//   - VecN is the general form for any other dimension, backed by a
//     contiguous slice whose length is fixed at construction.
//
// # Quick Start
//
//	a := vecn.V3[float32](1, 2, 3)
//	b := vecn.V3[float32](4, 5, 6)
//
//	sum := a.Add(b)          // (5, 7, 9)
//	d := a.Dot(b)            // 32
//	c := a.Cross(b)          // (-3, 6, -3)
//	fmt.Println(sum)         // vec<float32,3>(5,7,9)
//
//	v := vecn.VecNOf(1.0, 2.0, 3.0, 4.0, 5.0)
//	w := v.Shrink(3)         // (1, 2, 3)
//
// # Layout and Interop
//
// A VecK value is its elements and nothing else: Vec3[float32] has the
// memory image of [3]float32, so the fixed forms convert freely to and from
// plain arrays, and (*VecK).Slice returns a view that aliases the vector's
// own storage. ToStructK and FromStructK bridge to any external struct that
// exposes exported numeric X, Y (Z, W) fields, without that struct knowing
// about this package.
//
// # Error Model
//
// There is no error return anywhere in the API. Dimension mistakes on the
// fixed forms do not compile (resize methods exist only for valid targets,
// and a constant out-of-range index like v[5] on a Vec3 is a build error).
// Dynamic mistakes (out-of-range indexing, VecN dimension mismatches,
// invalid VecN resize targets, integer division by zero) panic.
//
// # Purity
//
// Every operation is a pure function of its inputs; no operation mutates an
// operand (the explicit setters and the Slice view are the only ways to
// mutate a vector in place). Distinct vector values share no storage.
package vecn
