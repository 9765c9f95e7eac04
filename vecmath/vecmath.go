package vecmath

import "github.com/hupe1980/vecn"

// apply stores T(f(src[i])) into dst[i]. dst may alias src.
func apply[T vecn.Float](dst, src []T, f func(float64) float64) {
	for i := range dst {
		dst[i] = T(f(float64(src[i])))
	}
}

// apply2 stores T(f(a[i], b[i])) into dst[i]. dst may alias a or b.
func apply2[T vecn.Float](dst, a, b []T, f func(x, y float64) float64) {
	for i := range dst {
		dst[i] = T(f(float64(a[i]), float64(b[i])))
	}
}

// apply2s stores T(f(a[i], s)) into dst[i]. dst may alias a.
func apply2s[T vecn.Float](dst, a []T, s T, f func(x, y float64) float64) {
	for i := range dst {
		dst[i] = T(f(float64(a[i]), float64(s)))
	}
}

// lift returns f applied elementwise to a fresh copy of v.
func lift[T vecn.Float](v vecn.VecN[T], f func(float64) float64) vecn.VecN[T] {
	out := make(vecn.VecN[T], len(v))
	apply(out, v, f)
	return out
}

// lift2 returns f applied pairwise to v and w.
// Panics if the dimensions differ.
func lift2[T vecn.Float](v, w vecn.VecN[T], f func(x, y float64) float64) vecn.VecN[T] {
	if len(v) != len(w) {
		panic("vecn: dimension mismatch")
	}
	out := make(vecn.VecN[T], len(v))
	apply2(out, v, w, f)
	return out
}

// lift2s returns f applied to every element of v paired with s.
func lift2s[T vecn.Float](v vecn.VecN[T], s T, f func(x, y float64) float64) vecn.VecN[T] {
	out := make(vecn.VecN[T], len(v))
	apply2s(out, v, s, f)
	return out
}
