package dsu

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates an element that was never added to the DSU.
var ErrUnknownElement = errors.New("dsu: unknown element")

// DSU partitions a set of elements into disjoint groups.
type DSU[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	size   map[T]int // valid for roots only
	count  int       // number of disjoint sets
}

// New returns a DSU in which every item starts in its own singleton set.
// Repeated items are added once.
func New[T comparable](items ...T) *DSU[T] {
	d := &DSU[T]{
		parent: make(map[T]T, len(items)),
		rank:   make(map[T]int, len(items)),
		size:   make(map[T]int, len(items)),
	}
	for _, x := range items {
		d.Add(x)
	}

	return d
}

// Add inserts x as a singleton set. It reports false if x was already present.
func (d *DSU[T]) Add(x T) bool {
	if _, ok := d.parent[x]; ok {
		return false
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.size[x] = 1
	d.count++

	return true
}

// Find returns the representative of x's set.
// Errors: ErrUnknownElement if x was never added.
func (d *DSU[T]) Find(x T) (T, error) {
	if _, ok := d.parent[x]; !ok {
		return x, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}

	return d.root(x), nil
}

// root walks to the representative, halving the path as it goes.
func (d *DSU[T]) root(x T) T {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // point to grandparent
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of a and b. It reports whether a merge happened
// (false if they were already together).
// Errors: ErrUnknownElement if either element was never added.
func (d *DSU[T]) Union(a, b T) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	// Attach the shallower tree under the deeper one.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb)
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true, nil
}

// Connected reports whether a and b are in the same set.
// Errors: ErrUnknownElement if either element was never added.
func (d *DSU[T]) Connected(a, b T) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Size returns the number of elements in x's set.
// Errors: ErrUnknownElement if x was never added.
func (d *DSU[T]) Size(x T) (int, error) {
	r, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

// Count returns the number of disjoint sets.
func (d *DSU[T]) Count() int { return d.count }

// Len returns the number of elements.
func (d *DSU[T]) Len() int { return len(d.parent) }
