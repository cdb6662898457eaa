package fp

// Compose applies fns right to left: Compose(f, g)(x) == f(g(x)).
// With zero functions it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe applies fns left to right: Pipe(f, g)(x) == g(f(x)).
// With zero functions it is the identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// Partial binds the leading argument of a two-argument function.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C { return f(a, b) }
}

// Curry converts a two-argument function into two nested one-argument ones.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

func Identity[T any](v T) T { return v }

// Const returns a function that ignores its argument and always yields x;
// used as a pipeline no-op/default.
func Const[A, T any](x T) func(A) T {
	return func(A) T { return x }
}
