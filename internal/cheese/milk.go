// --- lessons/internal/cheese/milk.go ---

package cheese

// Cow gives the most milk.
type Cow struct{}

func (Cow) Milk() float64 {
	return 10
}

type Goat struct{}

func (Goat) Milk() float64 {
	return 4
}

// Soy is a plant, but it still has a Milk method, and that is all the
// factory looks at.
type Soy struct{}

func (Soy) Milk() float64 {
	return 2.5
}
