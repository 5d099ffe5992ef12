// --- lessons/internal/scope/load.go ---

package scope

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
)

// ParseDir parses the non-test .go files of dir and groups them by package
// name. Packages come back sorted by name and their files by path.
func ParseDir(fset *token.FileSet, dir string) ([][]*ast.File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	byPkg := make(map[string][]*ast.File)
	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		byPkg[f.Name.Name] = append(byPkg[f.Name.Name], f)
	}
	if len(byPkg) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}

	names := make([]string, 0, len(byPkg))
	for name := range byPkg {
		names = append(names, name)
	}
	sort.Strings(names)

	pkgs := make([][]*ast.File, 0, len(names))
	for _, name := range names {
		pkgs = append(pkgs, byPkg[name])
	}
	return pkgs, nil
}
