// Package elem implements the element-wise kernels shared by the public
// vecn and vecmath packages.
//
// Every kernel operates on plain slices so that a single implementation
// serves the fixed Vec2/Vec3/Vec4 forms (through their array views) and the
// generic VecN form alike. Kernels assume all slice arguments have the same
// length; callers are responsible for establishing that (the public
// packages always do).
package elem
