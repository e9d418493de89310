package main

import (
	"bytes"
	"testing"
)

func TestRunDefaultIndex(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, 35); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), "fib(35) = 9227465\n"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
