package fib

import (
	"fmt"
	"io"
)

// WriteSequence writes one line per index from i up to, but not
// including, limit, each in the form "fib(<i>) = <value>". It stops
// at the first write error. Values are computed with Recursive, so
// the cost grows quickly with limit.
func WriteSequence(w io.Writer, i, limit int) error {
	if i >= limit {
		return nil
	}
	if _, err := fmt.Fprintf(w, "fib(%d) = %d\n", i, Recursive(i)); err != nil {
		return err
	}
	return WriteSequence(w, i+1, limit)
}
