// Package ordering holds the list primitives used to keep a dense integer
// order across a set of siblings (columns of a board, issues of a column).
//
// Every function returns a fresh slice; inputs are never modified.
package ordering

import (
	"cmp"
	"slices"
)

// Sorted returns a copy of items stably sorted by ascending order. Items
// sharing an order value keep their input sequence.
func Sorted[T any](items []T, orderOf func(T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(orderOf(a), orderOf(b))
	})
	return out
}

// Remove returns items without the element at index, and that element.
// The index must be in range.
func Remove[T any](items []T, index int) ([]T, T) {
	removed := items[index]
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, removed
}

// Insert returns items with item placed at index. The index must be in
// [0, len(items)].
func Insert[T any](items []T, index int, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	out = append(out, items[index:]...)
	return out
}

// Move returns items with the element at from relocated to to. Both indexes
// must be in range.
func Move[T any](items []T, from, to int) []T {
	rest, moved := Remove(items, from)
	return Insert(rest, to, moved)
}

// Renumber returns a copy of items where each element's order is set to its
// zero-based position. The whole list is always renumbered.
func Renumber[T any](items []T, setOrder func(*T, int)) []T {
	out := slices.Clone(items)
	for i := range out {
		setOrder(&out[i], i)
	}
	return out
}

// Dense reports whether the orders of items, sorted, are exactly 0..n-1.
func Dense[T any](items []T, orderOf func(T) int) bool {
	orders := make([]int, len(items))
	for i, item := range items {
		orders[i] = orderOf(item)
	}
	slices.Sort(orders)
	for i, o := range orders {
		if o != i {
			return false
		}
	}
	return true
}

// Clamp bounds index to [0, max].
func Clamp(index, max int) int {
	if index < 0 {
		return 0
	}
	if index > max {
		return max
	}
	return index
}
