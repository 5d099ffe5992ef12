// --- lessons/internal/scope/resolver.go ---

package scope

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
	"unicode"
)

type Kind int

const (
	KindVar Kind = iota
	KindConst
	KindType
	KindFunc
	KindPackage
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindType:
		return "type"
	case KindFunc:
		return "func"
	case KindPackage:
		return "package"
	case KindBuiltin:
		return "builtin"
	}
	return "unknown"
}

type Symbol struct {
	Name  string
	Kind  Kind
	Depth int       // depth of the declaring scope, 0 is the universe
	Pos   token.Pos // NoPos for builtins
}

type Scope struct {
	Parent  *Scope
	Depth   int
	Symbols map[string]*Symbol
}

func (s *Scope) lookup(name string) (*Symbol, bool) {
	for curr := s; curr != nil; curr = curr.Parent {
		if sym, ok := curr.Symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Resolver is a stack of lexical scopes. The bottom scope is the universe
// holding Go's predeclared identifiers.
type Resolver struct {
	Universe *Scope
	Current  *Scope
}

var universe = []string{
	// types
	"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
	"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
	"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	// constants
	"true", "false", "iota",
	// zero value
	"nil",
	// functions
	"append", "cap", "clear", "close", "complex", "copy", "delete", "imag",
	"len", "make", "max", "min", "new", "panic", "print", "println", "real",
	"recover",
}

func NewResolver() *Resolver {
	u := &Scope{Symbols: make(map[string]*Symbol, len(universe))}
	for _, name := range universe {
		u.Symbols[name] = &Symbol{Name: name, Kind: KindBuiltin}
	}
	return &Resolver{
		Universe: u,
		Current:  u,
	}
}

func (r *Resolver) EnterScope() {
	r.Current = &Scope{
		Parent:  r.Current,
		Depth:   r.Current.Depth + 1,
		Symbols: make(map[string]*Symbol),
	}
}

func (r *Resolver) ExitScope() {
	if r.Current.Parent != nil {
		r.Current = r.Current.Parent
	}
}

// Define puts sym in the current scope. When the name already resolves in an
// enclosing scope, the hidden symbol is returned.
func (r *Resolver) Define(sym *Symbol) (shadowed *Symbol) {
	sym.Depth = r.Current.Depth
	if r.Current.Parent != nil {
		shadowed, _ = r.Current.Parent.lookup(sym.Name)
	}
	r.Current.Symbols[sym.Name] = sym
	return shadowed
}

func (r *Resolver) Lookup(name string) (*Symbol, bool) {
	return r.Current.lookup(name)
}

// DeclaredHere reports whether name is declared in the innermost scope.
func (r *Resolver) DeclaredHere(name string) bool {
	_, ok := r.Current.Symbols[name]
	return ok
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// DefineImports declares the package names imported by f in the current
// scope. It reports whether f has a dot import, in which case unqualified
// names may come from another package and cannot be checked.
func (r *Resolver) DefineImports(f *ast.File) (dot bool) {
	// Walk Decls rather than f.Imports, which is only filled in by the parser.
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.IMPORT {
			continue
		}
		for _, spec := range genDecl.Specs {
			imp, ok := spec.(*ast.ImportSpec)
			if !ok {
				continue
			}
			path := strings.Trim(imp.Path.Value, `"`)
			name := importName(path)
			pos := imp.Path.Pos()
			if imp.Name != nil {
				name = imp.Name.Name // import g "github.com/..."
				pos = imp.Name.Pos()
			}
			switch name {
			case "_":
				continue
			case ".":
				dot = true
				continue
			}
			r.Current.Symbols[name] = &Symbol{Name: name, Kind: KindPackage, Depth: r.Current.Depth, Pos: pos}
		}
	}
	return dot
}

// importName guesses the package name from an import path: the last element,
// skipping a major version suffix ("/v2") and gopkg.in style ".v3", then the
// usual "go-" and "-go" decorations ("go-isatty" is package isatty).
// Anything that cannot appear in an identifier is dropped.
func importName(path string) string {
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	if majorVersion.MatchString(name) && len(parts) > 1 {
		name = parts[len(parts)-2]
	}
	if i := strings.Index(name, ".v"); i > 0 && majorVersion.MatchString(name[i+1:]) {
		name = name[:i]
	}

	trimmed := strings.TrimPrefix(name, "go-")
	trimmed = strings.TrimSuffix(trimmed, "-go")
	trimmed = strings.TrimSuffix(trimmed, ".go")
	trimmed = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, trimmed)
	if trimmed == "" {
		return name
	}
	return trimmed
}
