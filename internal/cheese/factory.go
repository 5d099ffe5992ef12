// --- lessons/internal/cheese/factory.go ---

package cheese

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/v4rm4n/lessons/internal/logger"
)

// Source is anything we try to make cheese from, with a name for the output.
type Source struct {
	Name  string
	Value any
}

// DefaultSources is the classic line-up. The string has no Milk method and
// makes the run fail.
func DefaultSources() []Source {
	return []Source{
		{Name: "cow", Value: Cow{}},
		{Name: "goat", Value: Goat{}},
		{Name: "soy plant", Value: Soy{}},
		{Name: "string", Value: "Hello"},
	}
}

type Factory struct {
	out io.Writer
	log *zap.SugaredLogger
}

func NewFactory(out io.Writer, log *zap.SugaredLogger) *Factory {
	if log == nil {
		log = logger.Nop()
	}
	return &Factory{out: out, log: log}
}

// Run makes cheese from every source in order. The first failure prints a
// generic message and ends the run; it never returns an error or panics.
// It reports how many sources made cheese.
func (f *Factory) Run(sources ...Source) int {
	for i, s := range sources {
		qty, err := makeCheese(s.Value, f.log)
		if err != nil {
			f.log.Warnw("cheese run aborted", "source", s.Name, "error", err)
			fmt.Fprintln(f.out, "Something went wrong")
			return i
		}
		fmt.Fprintf(f.out, "The %s helped us make %f cheese.\n", s.Name, qty)
	}
	return len(sources)
}
