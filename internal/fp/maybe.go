package fp

// Maybe represents optional presence without resorting to nil pointers.
type Maybe[T any] struct {
	value T
	ok    bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsJust() bool    { return m.ok }
func (m Maybe[T]) IsNothing() bool { return !m.ok }

// Get returns the contained value and whether one is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

func (m Maybe[T]) GetOrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// OrElse returns alt when empty.
func (m Maybe[T]) OrElse(alt Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return alt
}

func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) FlatMap(f func(T) Maybe[T]) Maybe[T] {
	if m.ok {
		return f(m.value)
	}
	return m
}

func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[U]()
}

func FlatMapMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.ok {
		return f(m.value)
	}
	return Nothing[U]()
}
