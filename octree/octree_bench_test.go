package octree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func randomPoints(n int) []r3.Vector {
	rnd := rand.New(rand.NewSource(42))
	points := make([]r3.Vector, n)
	for i := range points {
		points[i] = r3.Vector{X: rnd.Float64() * 100, Y: rnd.Float64() * 100, Z: rnd.Float64() * 100}
	}
	return points
}

func buildOctree(points []r3.Vector, policy SplitPolicy) *Octree[int] {
	octree := New[int](WithSplitPolicy(policy))
	for i, p := range points {
		octree.Insert(p, i)
	}
	return octree
}

func BenchmarkInsert(b *testing.B) {
	points := randomPoints(10000)
	for _, policy := range []MaxElements{1, 8, 32} {
		b.Run(fmt.Sprintf("max_elements_%d", policy), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				octree := buildOctree(points, policy)
				test.That(b, octree.Size(), test.ShouldEqual, len(points))
			}
		})
	}
}

func BenchmarkNearestNeighbor(b *testing.B) {
	points := randomPoints(10000)
	octree := buildOctree(points, DefaultSplitPolicy)
	queries := randomPoints(1000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, ok := octree.NearestNeighbor(queries[i%len(queries)])
		test.That(b, ok, test.ShouldBeTrue)
	}
}

func BenchmarkSearch(b *testing.B) {
	points := randomPoints(10000)
	octree := buildOctree(points, MaxElements(8))
	queries := randomPoints(1000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		for range octree.Search(queries[i%len(queries)], 5) {
			count++
		}
		test.That(b, count, test.ShouldBeGreaterThanOrEqualTo, 0)
	}
}
