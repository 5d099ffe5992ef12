// --- lessons/internal/person/person.go ---

// Package person shows encapsulation: the fields are unexported, so code
// outside the package can only reach them through the methods below.
package person

import (
	"fmt"
	"io"
)

type Person struct {
	name  string
	id    string
	email string
}

// New returns a blank Person.
func New() *Person {
	return &Person{}
}

func (p *Person) Name() string {
	return p.name
}

func (p *Person) SetName(name string) {
	p.name = name
}

func (p *Person) ID() string {
	return p.id
}

func (p *Person) SetID(id string) {
	p.id = id
}

func (p *Person) Email() string {
	return p.email
}

func (p *Person) SetEmail(email string) {
	p.email = email
}

// Print writes the person's fields one per line.
func Print(w io.Writer, p *Person) {
	fmt.Fprintf(w, "Name:  %s\n", p.Name())
	fmt.Fprintf(w, "ID:    %s\n", p.ID())
	fmt.Fprintf(w, "Email: %s\n", p.Email())
}
