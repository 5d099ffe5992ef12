// --- lessons/internal/scope/block.go ---

package scope

import (
	"fmt"
	"io"
)

var x int

// BlockDemo shows a nested block declaring its own x, which hides the
// package-level x until the block closes. y only lives inside the block.
func BlockDemo(w io.Writer) {
	x = 5

	{
		x := 7
		y := 12
		fmt.Fprintf(w, "Inside the block x=%d\n", x)
		fmt.Fprintf(w, "Inside the block y=%d\n", y)
	}

	fmt.Fprintf(w, "Outside the block x=%d\n", x)
	// y is not declared in this scope; using it here does not compile.
}
