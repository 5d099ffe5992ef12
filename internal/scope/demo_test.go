package scope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockDemo(t *testing.T) {
	var out bytes.Buffer
	BlockDemo(&out)

	assert.Equal(t,
		"Inside the block x=7\n"+
			"Inside the block y=12\n"+
			"Outside the block x=5\n",
		out.String())
	assert.Equal(t, 5, x, "the inner x must never reach the package-level x")
}

func TestExplicitDemo(t *testing.T) {
	want := "1.) inside f x=12\n" +
		"2.) inside f x=-12\n" +
		"After f x=-12\n" +
		"After f y=9\n" +
		"f is no longer the function it used to be\n"

	// Twice: the demo resets the package-level state it changes.
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		ExplicitDemo(&out)
		assert.Equal(t, want, out.String())
	}

	assert.Equal(t, -12, globalX)
	assert.Equal(t, 9, globalY)
}
