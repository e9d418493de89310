package fib_test

import (
	"fmt"
	"os"

	"github.com/axiomlang/fibdemo/fib"
)

func ExampleIterative() {
	n := 35
	fmt.Printf("fib(%d) = %d\n", n, fib.Iterative(n))
	// Output:
	// fib(35) = 9227465
}

func ExampleWriteSequence() {
	_ = fib.WriteSequence(os.Stdout, 0, 8)
	// Output:
	// fib(0) = 0
	// fib(1) = 1
	// fib(2) = 1
	// fib(3) = 2
	// fib(4) = 3
	// fib(5) = 5
	// fib(6) = 8
	// fib(7) = 13
}

func ExampleBig() {
	fmt.Println(fib.Big(100))
	// Output:
	// 354224848179261915075
}
