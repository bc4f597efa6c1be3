package count

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// Stirling2Two returns S(n, 2) = 2ⁿ⁻¹ − 1, the number of bipartitions of
// n items, or 1 when n < 3.
func Stirling2Two(n int) (uint64, error) {
	if n < 3 {
		return 1, nil
	}
	if n-1 > 64 {
		return 0, errors.Wrapf(ErrOverflow, "stirling2two(%d)", n)
	}
	if n-1 == 64 {
		return ^uint64(0), nil
	}
	return uint64(1)<<(n-1) - 1, nil
}

// Factorial returns n!.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegative, "factorial(%d)", n)
	}
	f := uint64(1)
	for i := 2; i <= n; i++ {
		hi, lo := bits.Mul64(f, uint64(i))
		if hi != 0 {
			return 0, errors.Wrapf(ErrOverflow, "factorial(%d)", n)
		}
		f = lo
	}
	return f, nil
}

// PowerOfTwo returns 2ⁿ.
func PowerOfTwo(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, errors.Wrapf(ErrNegative, "pow2(%d)", n)
	case n >= 64:
		return 0, errors.Wrapf(ErrOverflow, "pow2(%d)", n)
	}
	return uint64(1) << n, nil
}

// Fib returns the n-th Fibonacci number, counting Fib(1) = Fib(2) = 1.
// It panics unless 1 ≤ n ≤ 93.
func Fib(n int) uint64 {
	if n <= 0 || n > 93 {
		panic(fmt.Sprintf("count: Fib(%d): position out of range [1, 93]", n))
	}
	a, b := uint64(0), uint64(1)
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}
	return b
}
