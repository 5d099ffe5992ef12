package person

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New()

	assert.Empty(t, p.Name())
	assert.Empty(t, p.ID())
	assert.Empty(t, p.Email())
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		name string
		set  func(p *Person, v string)
		get  func(p *Person) string
	}{
		{name: "name", set: (*Person).SetName, get: (*Person).Name},
		{name: "id", set: (*Person).SetID, get: (*Person).ID},
		{name: "email", set: (*Person).SetEmail, get: (*Person).Email},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			for _, v := range []string{"first", "", "not an email", "last"} {
				tt.set(p, v)
				assert.Equal(t, v, tt.get(p))
			}
		})
	}
}

func TestFieldsAreIndependent(t *testing.T) {
	p := New()
	p.SetName("Ada")
	p.SetID("42")
	p.SetEmail("ada@example.com")

	p.SetName("Grace")

	assert.Equal(t, "Grace", p.Name())
	assert.Equal(t, "42", p.ID())
	assert.Equal(t, "ada@example.com", p.Email())
}

func TestIdentity(t *testing.T) {
	a, b := New(), New()
	a.SetName("same")
	b.SetName("same")

	assert.NotSame(t, a, b)

	alias := a
	alias.SetEmail("shared@example.com")
	assert.Equal(t, "shared@example.com", a.Email())
	assert.Empty(t, b.Email())
}

func TestPrint(t *testing.T) {
	p := New()
	p.SetName("Ada")
	p.SetID("42")
	p.SetEmail("ada@example.com")

	var out bytes.Buffer
	Print(&out, p)

	assert.Equal(t, "Name:  Ada\nID:    42\nEmail: ada@example.com\n", out.String())
}
