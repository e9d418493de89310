/*
Package fib computes Fibonacci numbers.

The sequence is defined by fib(0) = 0, fib(1) = 1 and
fib(n) = fib(n-1) + fib(n-2) for n >= 2.

Two strategies are provided over int64: Recursive, the direct
recursive definition, and Iterative, a linear-time accumulation.
Both are exact up to fib(92), the largest Fibonacci number that
fits in an int64. Big provides the same iterative accumulation
over arbitrary-precision integers for indices beyond that.

Recursive takes exponential time and its call depth grows with n.
Indices in the demo range (up to about 28) are fine; large indices
can exhaust the stack. That limitation is inherent to the strategy
and is deliberately not worked around here. Use Iterative or Big
when the index is not small.
*/
package fib
