// --- lessons/internal/scope/explicit.go ---

package scope

import (
	"fmt"
	"io"
)

// Package-level state written by f. Go has no "global" keyword: a function
// that wants to change these simply does not declare locals with the same name.
var (
	globalX int
	globalY int
	f       func(w io.Writer)
)

// ExplicitDemo calls f twice. The first call flips globalX, sets globalY and
// rebinds f itself, so the second call no longer runs the original.
func ExplicitDemo(w io.Writer) {
	globalX, globalY = 12, 0
	f = flipGlobals

	f(w)
	fmt.Fprintf(w, "After f x=%d\n", globalX)
	fmt.Fprintf(w, "After f y=%d\n", globalY)
	f(w)
}

func flipGlobals(w io.Writer) {
	fmt.Fprintf(w, "1.) inside f x=%d\n", globalX)
	globalX = -globalX
	fmt.Fprintf(w, "2.) inside f x=%d\n", globalX)
	globalY = 9

	// Dangerous: every later caller of f gets this instead.
	f = func(w io.Writer) {
		fmt.Fprintln(w, "f is no longer the function it used to be")
	}
}
