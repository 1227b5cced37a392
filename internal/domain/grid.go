package domain

import "sort"

// GridArray is a sparse mapping from slot position to item.
// A missing position is an empty slot, not an error.
type GridArray[T any] map[int]T

// NewGridArray returns an empty grid array
func NewGridArray[T any]() GridArray[T] {
	return make(GridArray[T])
}

// Get returns the item at position and whether the slot is filled
func (g GridArray[T]) Get(position int) (T, bool) {
	item, ok := g[position]
	return item, ok
}

// Filled reports whether a slot holds an item
func (g GridArray[T]) Filled(position int) bool {
	_, ok := g[position]
	return ok
}

// Positions returns the filled positions in ascending order
func (g GridArray[T]) Positions() []int {
	positions := make([]int, 0, len(g))
	for pos := range g {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// Values returns the items ordered by position
func (g GridArray[T]) Values() []T {
	values := make([]T, 0, len(g))
	for _, pos := range g.Positions() {
		values = append(values, g[pos])
	}
	return values
}

// Empty returns the unfilled positions in [0, capacity)
func (g GridArray[T]) Empty(capacity int) []int {
	var empty []int
	for pos := 0; pos < capacity; pos++ {
		if !g.Filled(pos) {
			empty = append(empty, pos)
		}
	}
	return empty
}
