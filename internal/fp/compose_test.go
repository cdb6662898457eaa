package fp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayoffers/internal/fp"
)

func double(n int) int { return n * 2 }
func inc(n int) int    { return n + 1 }

func TestCompose_RightToLeft(t *testing.T) {
	// compose(f, g)(x) == f(g(x))
	assert.Equal(t, double(inc(5)), fp.Compose(double, inc)(5)) // 12
	assert.Equal(t, inc(double(5)), fp.Compose(inc, double)(5)) // 11
}

func TestPipe_LeftToRight(t *testing.T) {
	// pipe(f, g)(x) == g(f(x))
	assert.Equal(t, inc(double(5)), fp.Pipe(double, inc)(5))
	assert.Equal(t, double(inc(5)), fp.Pipe(inc, double)(5))
}

func TestComposeAndPipe_ZeroFunctionsAreIdentity(t *testing.T) {
	assert.Equal(t, 42, fp.Compose[int]()(42))
	assert.Equal(t, 42, fp.Pipe[int]()(42))
}

func TestPartial_BindsLeadingArgument(t *testing.T) {
	add := func(a, b int) int { return a + b }
	add10 := fp.Partial(add, 10)
	assert.Equal(t, 13, add10(3))
}

func TestCurry_NestsApplications(t *testing.T) {
	mul := func(a, b int) int { return a * b }
	assert.Equal(t, 12, fp.Curry(mul)(3)(4))
}

func TestIdentityAndConst(t *testing.T) {
	assert.Equal(t, "x", fp.Identity("x"))
	always7 := fp.Const[string](7)
	assert.Equal(t, 7, always7("ignored"))
	assert.Equal(t, 7, always7("also ignored"))
}
