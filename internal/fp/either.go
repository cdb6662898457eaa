// Package fp holds the functional building blocks the offer computation is
// assembled from: Either/Maybe sum types, input validators, and generic
// function combinators.
package fp

// Either is a closed success-or-failure sum type: exactly one side is
// populated, never both. Left carries the error branch, Right the value.
type Either[E, T any] struct {
	left    E
	right   T
	isRight bool
}

func Left[E, T any](e E) Either[E, T] {
	return Either[E, T]{left: e}
}

func Right[E, T any](v T) Either[E, T] {
	return Either[E, T]{right: v, isRight: true}
}

func (e Either[E, T]) IsLeft() bool  { return !e.isRight }
func (e Either[E, T]) IsRight() bool { return e.isRight }

// GetLeft returns the error branch; zero value when Right.
func (e Either[E, T]) GetLeft() E { return e.left }

// GetRight returns the success branch; zero value when Left.
func (e Either[E, T]) GetRight() T { return e.right }

func (e Either[E, T]) GetOrElse(def T) T {
	if e.isRight {
		return e.right
	}
	return def
}

// Map transforms the Right value, passing a Left through unchanged.
// Type-changing transforms live in MapEither; Go methods cannot introduce
// new type parameters.
func (e Either[E, T]) Map(f func(T) T) Either[E, T] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return e
}

// FlatMap chains a computation that may itself fail, short-circuiting on the
// first Left.
func (e Either[E, T]) FlatMap(f func(T) Either[E, T]) Either[E, T] {
	if e.isRight {
		return f(e.right)
	}
	return e
}

// MapEither is Map generalized over the result type.
func MapEither[E, T, U any](e Either[E, T], f func(T) U) Either[E, U] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, U](e.left)
}

// FlatMapEither is the monadic bind: associativity holds, so
// FlatMapEither(FlatMapEither(m, f), g) equals
// FlatMapEither(m, func(x) { return FlatMapEither(f(x), g) }).
func FlatMapEither[E, T, U any](e Either[E, T], f func(T) Either[E, U]) Either[E, U] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, U](e.left)
}
