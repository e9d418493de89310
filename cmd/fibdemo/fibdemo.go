package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/axiomlang/fibdemo/fib"
)

func main() {
	var n int
	flag.IntVar(&n, "n", 28, "index of the Fibonacci number to compute")
	flag.Usage = func() {
		fmt.Println("Usage:", os.Args[0], "[options]")
		fmt.Println("Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if err := run(os.Stdout, n); err != nil {
		log.Fatal(err)
	}
}

// run writes the complete demo transcript for index n to w: header,
// result, the sequence from 0 through n, and footer.
func run(w io.Writer, n int) error {
	if _, err := fmt.Fprintf(w, "=== Axiom Fibonacci Demo ===\nCalculating fib(%d)...\nResult: %d\n", n, fib.Recursive(n)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\nSequence:\n"); err != nil {
		return err
	}
	if err := fib.WriteSequence(w, 0, n+1); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\nDemo Complete.\n")
	return err
}
