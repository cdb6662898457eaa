package fp

import "cmp"

// Generic slice higher-order functions. Inputs are never mutated; every
// function returns a fresh slice.

func MapAll[T, U any](items []T, f func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}

func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func FoldLeft[T, U any](items []T, initial U, f func(U, T) U) U {
	acc := initial
	for _, it := range items {
		acc = f(acc, it)
	}
	return acc
}

func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}

// MaxBy panics on an empty slice: that is a caller contract violation, not a
// recoverable domain condition.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) T {
	if len(items) == 0 {
		panic("fp: MaxBy of empty slice")
	}
	best := items[0]
	for _, it := range items[1:] {
		if key(it) > key(best) {
			best = it
		}
	}
	return best
}

// MinBy panics on an empty slice, same contract as MaxBy.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K) T {
	if len(items) == 0 {
		panic("fp: MinBy of empty slice")
	}
	best := items[0]
	for _, it := range items[1:] {
		if key(it) < key(best) {
			best = it
		}
	}
	return best
}

func Take[T any](n int, items []T) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

func Drop[T any](n int, items []T) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}
