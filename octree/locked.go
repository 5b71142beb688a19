package octree

import (
	"iter"
	"sync"

	"github.com/golang/geo/r3"

	"go.viam.com/spatialindex/spatialmath"
)

// Locked guards an Octree with a reader/writer lock over the whole tree, so inserts from one
// goroutine can be mixed with queries from others.
type Locked[T any] struct {
	mu     sync.RWMutex
	octree *Octree[T]
}

// NewLocked wraps octree. The caller must not use octree directly afterwards.
func NewLocked[T any](octree *Octree[T]) *Locked[T] {
	return &Locked[T]{octree: octree}
}

// Insert stores value at pos under the write lock.
func (l *Locked[T]) Insert(pos r3.Vector, value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.octree.Insert(pos, value)
}

// Size returns the number of stored entries.
func (l *Locked[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.octree.Size()
}

// Bounds returns the bounding box of every inserted position.
func (l *Locked[T]) Bounds() spatialmath.AABB {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.octree.Bounds()
}

// NearestNeighbor returns the stored entry closest to pos under the read lock.
func (l *Locked[T]) NearestNeighbor(pos r3.Vector) (r3.Vector, T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.octree.NearestNeighbor(pos)
}

// Search ranges over the entries within radius of pos while holding the read lock for the whole
// iteration. The loop body must not call Insert on the same Locked, or it deadlocks.
func (l *Locked[T]) Search(pos r3.Vector, radius float64) iter.Seq2[r3.Vector, T] {
	spatialmath.MustBeFinite(pos, "search position")
	spatialmath.MustBeValidRadius(radius)

	return func(yield func(r3.Vector, T) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		l.octree.Search(pos, radius)(yield)
	}
}

// SearchSlice copies the entries within radius of pos out under the read lock.
func (l *Locked[T]) SearchSlice(pos r3.Vector, radius float64) []Entry[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.octree.SearchSlice(pos, radius)
}
