package scope

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Scopes(t *testing.T) {
	r := NewResolver()
	require.Equal(t, 0, r.Current.Depth)

	r.EnterScope()
	outer := &Symbol{Name: "x", Kind: KindVar}
	assert.Nil(t, r.Define(outer))

	r.EnterScope()
	inner := &Symbol{Name: "x", Kind: KindVar}
	assert.Same(t, outer, r.Define(inner))
	assert.Equal(t, 2, inner.Depth)

	got, ok := r.Lookup("x")
	require.True(t, ok)
	assert.Same(t, inner, got)

	r.Define(&Symbol{Name: "y", Kind: KindVar})
	assert.True(t, r.DeclaredHere("y"))

	r.ExitScope()
	got, ok = r.Lookup("x")
	require.True(t, ok)
	assert.Same(t, outer, got)

	_, ok = r.Lookup("y")
	assert.False(t, ok, "y must be gone once its scope closes")
	assert.False(t, r.DeclaredHere("y"))
}

func TestResolver_ExitScopeStopsAtUniverse(t *testing.T) {
	r := NewResolver()
	r.ExitScope()
	r.ExitScope()

	assert.Same(t, r.Universe, r.Current)
}

func TestResolver_Builtins(t *testing.T) {
	r := NewResolver()

	for _, name := range []string{"int", "len", "nil", "true", "iota", "any", "min"} {
		sym, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, KindBuiltin, sym.Kind)
		assert.Equal(t, 0, sym.Depth)
	}

	r.EnterScope()
	shadowed := r.Define(&Symbol{Name: "len", Kind: KindVar})
	require.NotNil(t, shadowed)
	assert.Equal(t, KindBuiltin, shadowed.Kind)
}

func TestResolver_DefineImports(t *testing.T) {
	src := `package p

import (
	"fmt"
	_ "embed"
	y "gopkg.in/yaml.v3"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)
`
	f, err := parser.ParseFile(token.NewFileSet(), "p.go", src, parser.ImportsOnly)
	require.NoError(t, err)

	r := NewResolver()
	r.EnterScope()
	dot := r.DefineImports(f)

	assert.False(t, dot)
	for _, name := range []string{"fmt", "y", "pgx", "zap"} {
		sym, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, KindPackage, sym.Kind)
	}
	_, ok := r.Lookup("embed")
	assert.False(t, ok)
}

func TestResolver_DefineImportsDot(t *testing.T) {
	f := &ast.File{
		Name: ast.NewIdent("p"),
		Decls: []ast.Decl{&ast.GenDecl{
			Tok: token.IMPORT,
			Specs: []ast.Spec{&ast.ImportSpec{
				Name: ast.NewIdent("."),
				Path: &ast.BasicLit{Kind: token.STRING, Value: `"strings"`},
			}},
		}},
	}

	r := NewResolver()
	r.EnterScope()

	assert.True(t, r.DefineImports(f))
	assert.Empty(t, r.Current.Symbols)
}

func TestImportName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "fmt", want: "fmt"},
		{path: "go/ast", want: "ast"},
		{path: "github.com/jackc/pgx/v5", want: "pgx"},
		{path: "gopkg.in/yaml.v3", want: "yaml"},
		{path: "github.com/gofiber/fiber/v2", want: "fiber"},
		{path: "v2", want: "v2"},
		{path: "github.com/mattn/go-isatty", want: "isatty"},
		{path: "github.com/davecgh/go-spew/spew", want: "spew"},
		{path: "github.com/mattn/go-sqlite3", want: "sqlite3"},
		{path: "github.com/example/client-go", want: "client"},
		{path: "github.com/example/ring.go", want: "ring"},
		{path: "github.com/example/some-lib", want: "somelib"},
		{path: "github.com/redis/go-redis/v9", want: "redis"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, importName(tt.path))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "var", KindVar.String())
	assert.Equal(t, "builtin", KindBuiltin.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
