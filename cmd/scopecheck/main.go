// --- lessons/cmd/scopecheck/main.go ---

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/v4rm4n/lessons/internal/config"
	"github.com/v4rm4n/lessons/internal/logger"
	"github.com/v4rm4n/lessons/internal/scope"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: scopecheck <input.go | input_dir>")
	}
	inputPath := os.Args[1]

	cfg := config.Load()
	zl, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zl.Sync()

	// 1. Determine if input is a file or a directory
	info, err := os.Stat(inputPath)
	if err != nil {
		log.Fatalf("Could not read input path: %v", err)
	}

	fset := token.NewFileSet()
	var pkgs [][]*ast.File

	if info.IsDir() {
		// 2A. Directory Mode: one analysis per package, test files skipped
		pkgs, err = scope.ParseDir(fset, inputPath)
		if err != nil {
			log.Fatalf("Failed to parse directory: %v", err)
		}
		zl.Debugw("parsed directory", "path", inputPath, "packages", len(pkgs))

	} else {
		// 2B. File Mode: Parse just the single file
		f, err := parser.ParseFile(fset, inputPath, nil, parser.SkipObjectResolution)
		if err != nil {
			log.Fatalf("Failed to parse file: %v", err)
		}
		pkgs = append(pkgs, []*ast.File{f})
		zl.Debugw("parsed file", "path", inputPath)
	}

	// 3. Resolve
	unresolved := 0
	for _, files := range pkgs {
		report, err := scope.Analyze(fset, files...)
		if err != nil {
			log.Fatalf("Failed to analyze: %v", err)
		}
		printReport(report)
		unresolved += len(report.Unresolved)
	}

	if unresolved > 0 {
		zl.Sync()
		os.Exit(1)
	}
}

func printReport(r *scope.Report) {
	fmt.Printf("package %s: %d uses, %d shadowed, %d unresolved\n",
		r.Package, len(r.Uses), len(r.Shadows), len(r.Unresolved))

	for _, s := range r.Shadows {
		if s.Outer.IsValid() {
			fmt.Printf("  %s: %s shadows declaration at %s\n", s.Pos, s.Name, s.Outer)
		} else {
			fmt.Printf("  %s: %s shadows the predeclared %s\n", s.Pos, s.Name, s.Name)
		}
	}
	for _, u := range r.Unresolved {
		fmt.Printf("  %s: %s is not declared in this scope\n", u.Pos, u.Name)
	}
}
