package elem

// Float is satisfied by the floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Signed is satisfied by the signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by the unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is satisfied by all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Number is satisfied by every element type a vector can hold.
type Number interface {
	Integer | Float
}
