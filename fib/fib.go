package fib

import "math/big"

// Recursive returns the n-th Fibonacci number using the direct
// recursive definition. Exponential time, call depth proportional
// to n. It panics if n is negative.
func Recursive(n int) int64 {
	if n < 0 {
		panic("fib: negative index")
	}
	if n < 2 {
		return int64(n)
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Iterative returns the n-th Fibonacci number by advancing two
// rolling accumulators, in linear time and constant space. It
// panics if n is negative.
func Iterative(n int) int64 {
	if n < 0 {
		panic("fib: negative index")
	}
	if n <= 1 {
		return int64(n)
	}
	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Big returns the n-th Fibonacci number as an arbitrary-precision
// integer, using the same accumulation as Iterative. Valid for any
// n >= 0. It panics if n is negative.
func Big(n int) *big.Int {
	if n < 0 {
		panic("fib: negative index")
	}
	a, b := big.NewInt(0), big.NewInt(1)
	if n == 0 {
		return a
	}
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}
