package dataflow

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/seml-dk/ibex/analysis/cfg"
)

const reachingSrc = `package p

func f(cond bool) {
	x := 1
	if cond {
		x = 2
	} else {
		y := 3
		_ = y
	}
	_ = x
	x++
}
`

func analyze(t *testing.T) map[cfg.Node]Domain {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "f.go", reachingSrc, 0)
	if err != nil {
		t.Fatal(err)
	}

	var body *ast.BlockStmt
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == "f" {
			body = fd.Body
		}
	}
	if body == nil {
		t.Fatal("function f not found")
	}

	result, err := ReachingDefinitions(fset, body)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

// findStmt locates the inner result of the statement printing as label.
func findStmt(t *testing.T, result map[cfg.Node]Domain, label string) Domain {
	t.Helper()
	for n, d := range result {
		if _, ok := n.(*cfg.Stmt); ok && n.String() == label {
			return d
		}
	}
	t.Fatalf("no statement %q in the result", label)
	return Domain{}
}

func TestReachingDefinitions(t *testing.T) {
	result := analyze(t)

	// Both branch definitions of x reach the statement after the join.
	atUse := findStmt(t, result, "_ = x")
	if got := atUse.DefinitionsOf("x"); len(got) != 2 {
		t.Errorf("expected 2 reaching definitions of x, got %v", got)
	}

	// The increment kills both and generates a fresh definition.
	atInc := findStmt(t, result, "x++")
	if got := atInc.DefinitionsOf("x"); len(got) != 1 {
		t.Errorf("expected the increment to kill prior definitions, got %v", got)
	}

	// y is only defined on the else branch.
	atElse := findStmt(t, result, "_ = y")
	if got := atElse.DefinitionsOf("y"); len(got) != 1 {
		t.Errorf("expected a single definition of y, got %v", got)
	}
}

func TestReachingDefinitionsBlocksPresent(t *testing.T) {
	result := analyze(t)

	blocks, stmts := 0, 0
	for n := range result {
		switch n.(type) {
		case *cfg.Block:
			blocks++
		case *cfg.Stmt:
			stmts++
		}
	}
	if blocks < 3 {
		t.Errorf("expected branch and join blocks in the result, got %d", blocks)
	}
	if stmts < 5 {
		t.Errorf("expected per-statement results, got %d", stmts)
	}
}

func TestReachingDefinitionsNoBody(t *testing.T) {
	fset := token.NewFileSet()
	if _, err := ReachingDefinitions(fset, nil); err == nil {
		t.Error("expected an error for a missing body")
	}
}
