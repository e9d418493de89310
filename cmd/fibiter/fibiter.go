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
	flag.IntVar(&n, "n", 35, "index of the Fibonacci number to compute")
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

// run writes the single result line for index n to w.
func run(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "fib(%d) = %d\n", n, fib.Iterative(n))
	return err
}
