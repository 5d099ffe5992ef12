// --- lessons/internal/scope/analyze.go ---

package scope

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

var (
	ErrNoFiles       = errors.New("no files to analyze")
	ErrMixedPackages = errors.New("files belong to different packages")
)

// Use is an identifier that resolved to a declaration.
type Use struct {
	Name  string
	Pos   token.Position
	Kind  Kind
	Depth int // depth of the scope the declaration lives in
}

// Shadow is a declaration that hides a same-named one from an enclosing scope.
type Shadow struct {
	Name       string
	Pos        token.Position
	Depth      int
	Outer      token.Position // zero for builtins
	OuterDepth int
}

// Unresolved is an identifier used where no declaration of it is visible.
type Unresolved struct {
	Name string
	Pos  token.Position
}

type Report struct {
	Package    string
	Uses       []Use
	Shadows    []Shadow
	Unresolved []Unresolved
}

// UsesOf returns every resolved use of name, in source order.
func (r *Report) UsesOf(name string) []Use {
	var out []Use
	for _, u := range r.Uses {
		if u.Name == name {
			out = append(out, u)
		}
	}
	return out
}

// Analyze resolves every identifier in files against Go's lexical scopes.
// All files must belong to the same package. Struct field names, method
// names after a selector and labels live in other namespaces and are skipped.
func Analyze(fset *token.FileSet, files ...*ast.File) (*Report, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	pkg := files[0].Name.Name
	for _, f := range files[1:] {
		if f.Name.Name != pkg {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedPackages, pkg, f.Name.Name)
		}
	}

	a := &analyzer{
		fset:   fset,
		r:      NewResolver(),
		report: &Report{Package: pkg},
	}

	// Package-level names are visible in every file, before their declaration.
	a.r.EnterScope()
	for _, f := range files {
		a.declarePackage(f)
	}
	for _, f := range files {
		a.file(f)
	}
	a.r.ExitScope()

	return a.report, nil
}

// AnalyzeSource parses a single file and analyzes it. src follows the
// rules of parser.ParseFile: nil means read filename from disk.
func AnalyzeSource(filename string, src any) (*Report, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	return Analyze(fset, f)
}

type analyzer struct {
	fset   *token.FileSet
	r      *Resolver
	report *Report

	// set while walking a file with a dot import
	dotImport bool
}

func (a *analyzer) position(p token.Pos) token.Position {
	if !p.IsValid() {
		return token.Position{}
	}
	return a.fset.Position(p)
}

func (a *analyzer) declare(id *ast.Ident, kind Kind) {
	if id == nil || id.Name == "_" {
		return
	}
	sym := &Symbol{Name: id.Name, Kind: kind, Pos: id.Pos()}
	if outer := a.r.Define(sym); outer != nil {
		a.report.Shadows = append(a.report.Shadows, Shadow{
			Name:       id.Name,
			Pos:        a.position(id.Pos()),
			Depth:      sym.Depth,
			Outer:      a.position(outer.Pos),
			OuterDepth: outer.Depth,
		})
	}
}

func (a *analyzer) use(id *ast.Ident) {
	if id == nil || id.Name == "_" {
		return
	}
	sym, ok := a.r.Lookup(id.Name)
	if !ok {
		if !a.dotImport {
			a.report.Unresolved = append(a.report.Unresolved, Unresolved{
				Name: id.Name,
				Pos:  a.position(id.Pos()),
			})
		}
		return
	}
	a.report.Uses = append(a.report.Uses, Use{
		Name:  id.Name,
		Pos:   a.position(id.Pos()),
		Kind:  sym.Kind,
		Depth: sym.Depth,
	})
}

// ── Package and file level ───────────────────────────────────────────────────

func (a *analyzer) declarePackage(f *ast.File) {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					kind := KindVar
					if d.Tok == token.CONST {
						kind = KindConst
					}
					for _, name := range s.Names {
						a.declare(name, kind)
					}
				case *ast.TypeSpec:
					a.declare(s.Name, KindType)
				}
			}
		case *ast.FuncDecl:
			// Methods belong to their type; init cannot be referenced.
			if d.Recv == nil && d.Name.Name != "init" {
				a.declare(d.Name, KindFunc)
			}
		}
	}
}

func (a *analyzer) file(f *ast.File) {
	a.r.EnterScope()
	defer a.r.ExitScope()

	a.dotImport = a.r.DefineImports(f)
	defer func() { a.dotImport = false }()

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					a.expr(s.Type)
					a.exprs(s.Values)
				case *ast.TypeSpec:
					a.typeSpec(s)
				}
			}
		case *ast.FuncDecl:
			a.funcDecl(d)
		}
	}
}

func (a *analyzer) typeSpec(s *ast.TypeSpec) {
	if s.TypeParams != nil {
		a.r.EnterScope()
		defer a.r.ExitScope()
		a.typeParams(s.TypeParams)
	}
	a.expr(s.Type)
}

// typeParams declares all parameter names first; a constraint may mention
// any of them.
func (a *analyzer) typeParams(fl *ast.FieldList) {
	for _, field := range fl.List {
		for _, name := range field.Names {
			a.declare(name, KindType)
		}
	}
	for _, field := range fl.List {
		a.expr(field.Type)
	}
}

func (a *analyzer) funcDecl(d *ast.FuncDecl) {
	a.r.EnterScope()
	defer a.r.ExitScope()

	if d.Type.TypeParams != nil {
		a.typeParams(d.Type.TypeParams)
	}
	if d.Recv != nil {
		a.receiver(d.Recv)
	}
	a.params(d.Type.Params)
	a.params(d.Type.Results)

	// The body shares the function's scope with the parameters.
	if d.Body != nil {
		a.stmts(d.Body.List)
	}
}

// receiver handles func (l *List[T]) where T is declared, not used.
func (a *analyzer) receiver(fl *ast.FieldList) {
	for _, field := range fl.List {
		t := field.Type
		if star, ok := t.(*ast.StarExpr); ok {
			t = star.X
		}
		switch rt := t.(type) {
		case *ast.IndexExpr:
			a.expr(rt.X)
			a.declareTypeIdent(rt.Index)
		case *ast.IndexListExpr:
			a.expr(rt.X)
			for _, ix := range rt.Indices {
				a.declareTypeIdent(ix)
			}
		default:
			a.expr(t)
		}
		for _, name := range field.Names {
			a.declare(name, KindVar)
		}
	}
}

func (a *analyzer) declareTypeIdent(e ast.Expr) {
	if id, ok := e.(*ast.Ident); ok {
		a.declare(id, KindType)
	}
}

// params resolves the types of a parameter list, then declares its names.
func (a *analyzer) params(fl *ast.FieldList) {
	if fl == nil {
		return
	}
	for _, field := range fl.List {
		a.expr(field.Type)
	}
	for _, field := range fl.List {
		for _, name := range field.Names {
			a.declare(name, KindVar)
		}
	}
}

// ── Statements ───────────────────────────────────────────────────────────────

func (a *analyzer) block(b *ast.BlockStmt) {
	if b == nil {
		return
	}
	a.r.EnterScope()
	a.stmts(b.List)
	a.r.ExitScope()
}

func (a *analyzer) stmts(list []ast.Stmt) {
	for _, s := range list {
		a.stmt(s)
	}
}

func (a *analyzer) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case nil:

	case *ast.BlockStmt:
		a.block(s)

	case *ast.ExprStmt:
		a.expr(s.X)

	case *ast.AssignStmt:
		a.assign(s)

	case *ast.DeclStmt:
		if gd, ok := s.Decl.(*ast.GenDecl); ok {
			a.localDecl(gd)
		}

	case *ast.IncDecStmt:
		a.expr(s.X)

	case *ast.SendStmt:
		a.expr(s.Chan)
		a.expr(s.Value)

	case *ast.GoStmt:
		a.expr(s.Call)

	case *ast.DeferStmt:
		a.expr(s.Call)

	case *ast.ReturnStmt:
		a.exprs(s.Results)

	case *ast.LabeledStmt:
		a.stmt(s.Stmt)

	case *ast.IfStmt:
		a.r.EnterScope()
		a.stmt(s.Init)
		a.expr(s.Cond)
		a.block(s.Body)
		a.stmt(s.Else)
		a.r.ExitScope()

	case *ast.ForStmt:
		a.r.EnterScope()
		a.stmt(s.Init)
		a.expr(s.Cond)
		a.stmt(s.Post)
		a.block(s.Body)
		a.r.ExitScope()

	case *ast.RangeStmt:
		a.expr(s.X)
		a.r.EnterScope()
		if s.Tok == token.DEFINE {
			a.declareExpr(s.Key)
			a.declareExpr(s.Value)
		} else {
			a.expr(s.Key)
			a.expr(s.Value)
		}
		a.block(s.Body)
		a.r.ExitScope()

	case *ast.SwitchStmt:
		a.r.EnterScope()
		a.stmt(s.Init)
		a.expr(s.Tag)
		for _, c := range s.Body.List {
			if cc, ok := c.(*ast.CaseClause); ok {
				a.exprs(cc.List)
				a.clause(cc.Body, nil, true)
			}
		}
		a.r.ExitScope()

	case *ast.TypeSwitchStmt:
		a.typeSwitch(s)

	case *ast.SelectStmt:
		for _, c := range s.Body.List {
			cc, ok := c.(*ast.CommClause)
			if !ok {
				continue
			}
			a.r.EnterScope()
			a.stmt(cc.Comm)
			a.stmts(cc.Body)
			a.r.ExitScope()
		}

	case *ast.BranchStmt, *ast.EmptyStmt, *ast.BadStmt:
		// labels have their own namespace
	}
}

// assign handles := where only names new to the current scope are declared;
// the rest are plain assignments.
func (a *analyzer) assign(s *ast.AssignStmt) {
	a.exprs(s.Rhs)
	if s.Tok != token.DEFINE {
		a.exprs(s.Lhs)
		return
	}
	for _, lhs := range s.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			a.expr(lhs)
			continue
		}
		if a.r.DeclaredHere(id.Name) {
			a.use(id)
			continue
		}
		a.declare(id, KindVar)
	}
}

func (a *analyzer) declareExpr(e ast.Expr) {
	if id, ok := e.(*ast.Ident); ok {
		a.declare(id, KindVar)
	}
}

func (a *analyzer) localDecl(d *ast.GenDecl) {
	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.ValueSpec:
			a.expr(s.Type)
			a.exprs(s.Values)
			kind := KindVar
			if d.Tok == token.CONST {
				kind = KindConst
			}
			for _, name := range s.Names {
				a.declare(name, kind)
			}
		case *ast.TypeSpec:
			// Declared first so the type can refer to itself.
			a.declare(s.Name, KindType)
			a.typeSpec(s)
		}
	}
}

func (a *analyzer) typeSwitch(s *ast.TypeSwitchStmt) {
	a.r.EnterScope()
	defer a.r.ExitScope()

	a.stmt(s.Init)

	var bound *ast.Ident
	switch as := s.Assign.(type) {
	case *ast.AssignStmt: // v := x.(type)
		a.exprs(as.Rhs)
		if len(as.Lhs) == 1 {
			bound, _ = as.Lhs[0].(*ast.Ident)
		}
	case *ast.ExprStmt:
		a.expr(as.X)
	}

	for i, c := range s.Body.List {
		if cc, ok := c.(*ast.CaseClause); ok {
			a.exprs(cc.List)
			a.clause(cc.Body, bound, i == 0)
		}
	}
}

// clause walks a case body in its own scope. A type switch binds its
// variable afresh in every clause; shadowing is only reported once.
func (a *analyzer) clause(body []ast.Stmt, bound *ast.Ident, report bool) {
	a.r.EnterScope()
	defer a.r.ExitScope()

	if bound != nil && bound.Name != "_" {
		if report {
			a.declare(bound, KindVar)
		} else {
			a.r.Define(&Symbol{Name: bound.Name, Kind: KindVar, Pos: bound.Pos()})
		}
	}
	a.stmts(body)
}

// ── Expressions ──────────────────────────────────────────────────────────────

func (a *analyzer) exprs(list []ast.Expr) {
	for _, e := range list {
		a.expr(e)
	}
}

func (a *analyzer) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:

	case *ast.Ident:
		a.use(e)

	case *ast.BasicLit, *ast.BadExpr:

	case *ast.Ellipsis:
		a.expr(e.Elt)

	case *ast.FuncLit:
		a.r.EnterScope()
		a.params(e.Type.Params)
		a.params(e.Type.Results)
		if e.Body != nil {
			a.stmts(e.Body.List)
		}
		a.r.ExitScope()

	case *ast.CompositeLit:
		a.expr(e.Type)
		keyed := keysAreExprs(e.Type)
		for _, elt := range e.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				a.expr(elt)
				continue
			}
			// Without type information a bare identifier key in a struct (or
			// an elided) literal is taken to be a field name.
			if _, isIdent := kv.Key.(*ast.Ident); keyed || !isIdent {
				a.expr(kv.Key)
			}
			a.expr(kv.Value)
		}

	case *ast.ParenExpr:
		a.expr(e.X)

	case *ast.SelectorExpr:
		a.expr(e.X)

	case *ast.IndexExpr:
		a.expr(e.X)
		a.expr(e.Index)

	case *ast.IndexListExpr:
		a.expr(e.X)
		a.exprs(e.Indices)

	case *ast.SliceExpr:
		a.expr(e.X)
		a.expr(e.Low)
		a.expr(e.High)
		a.expr(e.Max)

	case *ast.TypeAssertExpr:
		a.expr(e.X)
		a.expr(e.Type)

	case *ast.CallExpr:
		a.expr(e.Fun)
		a.exprs(e.Args)

	case *ast.StarExpr:
		a.expr(e.X)

	case *ast.UnaryExpr:
		a.expr(e.X)

	case *ast.BinaryExpr:
		a.expr(e.X)
		a.expr(e.Y)

	case *ast.KeyValueExpr:
		a.expr(e.Key)
		a.expr(e.Value)

	case *ast.ArrayType:
		a.expr(e.Len)
		a.expr(e.Elt)

	case *ast.MapType:
		a.expr(e.Key)
		a.expr(e.Value)

	case *ast.ChanType:
		a.expr(e.Value)

	// Field, parameter and method names inside a type are not in scope
	// anywhere; only their types are resolved.
	case *ast.StructType:
		a.fieldTypes(e.Fields)

	case *ast.InterfaceType:
		a.fieldTypes(e.Methods)

	case *ast.FuncType:
		a.fieldTypes(e.Params)
		a.fieldTypes(e.Results)
	}
}

// keysAreExprs reports whether the keys of a literal of type t are values
// (map keys, array and slice indices) rather than field names.
func keysAreExprs(t ast.Expr) bool {
	switch t.(type) {
	case *ast.MapType, *ast.ArrayType:
		return true
	}
	return false
}

func (a *analyzer) fieldTypes(fl *ast.FieldList) {
	if fl == nil {
		return
	}
	for _, field := range fl.List {
		a.expr(field.Type)
	}
}
