package vecn

import (
	"fmt"
	"reflect"
)

// componentNames are the struct field names the aggregate interop bridge
// reads and writes, in storage order.
var componentNames = [4]string{"X", "Y", "Z", "W"}

// intoStruct assigns elems into the like-named exported fields of a fresh G.
func intoStruct[G any, T Number](elems []T) G {
	var g G

	rv := reflect.ValueOf(&g).Elem()
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("vecn: %T is not a struct", g))
	}

	for i, e := range elems {
		f := rv.FieldByName(componentNames[i])
		if !f.IsValid() || !f.CanSet() {
			panic(fmt.Sprintf("vecn: %T has no settable field %q", g, componentNames[i]))
		}
		f.Set(reflect.ValueOf(e).Convert(f.Type()))
	}

	return g
}

// outOfStruct reads the like-named exported fields of g into dst.
func outOfStruct[T Number](g any, dst []T) {
	rv := reflect.Indirect(reflect.ValueOf(g))
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("vecn: %T is not a struct", g))
	}

	target := reflect.TypeOf(dst).Elem()
	for i := range dst {
		f := rv.FieldByName(componentNames[i])
		if !f.IsValid() {
			panic(fmt.Sprintf("vecn: %T has no field %q", g, componentNames[i]))
		}
		dst[i] = f.Convert(target).Interface().(T)
	}
}

// ToStruct2 copies v's components into a freshly constructed G, assigning
// X and Y into G's same-named fields. G must be a struct exposing exported
// numeric fields of those names; anything else panics. G never needs to
// know about this package.
func ToStruct2[G any, T Number](v Vec2[T]) G {
	return intoStruct[G](v[:])
}

// ToStruct3 copies v's components into a freshly constructed G, assigning
// X, Y and Z into G's same-named fields. G must be a struct exposing
// exported numeric fields of those names; anything else panics. G never
// needs to know about this package.
func ToStruct3[G any, T Number](v Vec3[T]) G {
	return intoStruct[G](v[:])
}

// ToStruct4 copies v's components into a freshly constructed G, assigning
// X, Y, Z and W into G's same-named fields. G must be a struct exposing
// exported numeric fields of those names; anything else panics. G never
// needs to know about this package.
func ToStruct4[G any, T Number](v Vec4[T]) G {
	return intoStruct[G](v[:])
}

// FromStruct2 constructs a vector from the exported numeric X and Y fields
// of g. The element type must be named explicitly:
//
//	v := vecn.FromStruct2[float32](point)
func FromStruct2[T Number, G any](g G) Vec2[T] {
	var v Vec2[T]
	outOfStruct(g, v[:])
	return v
}

// FromStruct3 constructs a vector from the exported numeric X, Y and Z
// fields of g. The element type must be named explicitly:
//
//	v := vecn.FromStruct3[float32](point)
func FromStruct3[T Number, G any](g G) Vec3[T] {
	var v Vec3[T]
	outOfStruct(g, v[:])
	return v
}

// FromStruct4 constructs a vector from the exported numeric X, Y, Z and W
// fields of g. The element type must be named explicitly:
//
//	v := vecn.FromStruct4[float32](point)
func FromStruct4[T Number, G any](g G) Vec4[T] {
	var v Vec4[T]
	outOfStruct(g, v[:])
	return v
}
