// Package lazy implements the pull-based offer pipeline. A Seq produces
// elements only as the consumer asks for them; abandoning it is the
// cancellation mechanism.
package lazy

// Seq is a lazy, finite, restartable sequence in the Go 1.23 iterator shape:
// invoking it replays from the start, and a false return from yield stops
// production immediately.
type Seq[T any] func(yield func(T) bool)

func FromSlice[T any](items []T) Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		s(func(v T) bool {
			if pred(v) {
				return yield(v)
			}
			return true
		})
	}
}

func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return func(yield func(U) bool) {
		s(func(v T) bool {
			return yield(f(v))
		})
	}
}

// Take yields at most n elements and stops pulling from the source once they
// are delivered; no work happens for elements beyond the bound.
func Take[T any](s Seq[T], n int) Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		s(func(v T) bool {
			if !yield(v) {
				return false
			}
			taken++
			return taken < n
		})
	}
}

func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		s(func(v T) bool {
			if !pred(v) {
				return false
			}
			return yield(v)
		})
	}
}

// Chunk groups elements into fixed-size slices; the final chunk may be short.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		buf := make([]T, 0, size)
		stopped := false
		s(func(v T) bool {
			buf = append(buf, v)
			if len(buf) == size {
				out := make([]T, size)
				copy(out, buf)
				buf = buf[:0]
				if !yield(out) {
					stopped = true
					return false
				}
			}
			return true
		})
		if !stopped && len(buf) > 0 {
			yield(buf)
		}
	}
}

// Collect forces the sequence into a slice.
func Collect[T any](s Seq[T]) []T {
	var out []T
	s(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
