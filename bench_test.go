package vecn

import "testing"

var (
	sinkF32 float32
	sink3   Vec3[float32]
	sinkN   VecN[float32]
)

func BenchmarkVec3Add(b *testing.B) {
	p := V3[float32](1, 2, 3)
	q := V3[float32](4, 5, 6)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink3 = p.Add(q)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	p := V3[float32](1, 2, 3)
	q := V3[float32](4, 5, 6)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = p.Dot(q)
	}
}

func BenchmarkVec3Length(b *testing.B) {
	p := V3[float32](1, 2, 3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = p.Length()
	}
}

func BenchmarkVecNAdd(b *testing.B) {
	p := NewVecN[float32](128)
	q := NewVecN[float32](128)
	for i := range p {
		p[i] = float32(i)
		q[i] = float32(128 - i)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN = p.Add(q)
	}
}

func BenchmarkVecNDot(b *testing.B) {
	p := NewVecN[float32](128)
	q := NewVecN[float32](128)
	for i := range p {
		p[i] = 1
		q[i] = 2
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = p.Dot(q)
	}
}
