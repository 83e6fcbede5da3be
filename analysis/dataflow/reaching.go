package dataflow

import (
	"go/ast"
	"go/token"

	"github.com/seml-dk/ibex/analysis/cfg"
	"github.com/seml-dk/ibex/analysis/fixpoint"
	L "github.com/seml-dk/ibex/analysis/lattice"
	"github.com/seml-dk/ibex/utils/worklist"
)

// ReachingDefinitions computes, for every basic block and every statement
// of the given function body, the set of assignments that may reach it.
// Block entries map to the state holding after the block executed;
// statement entries map to the state holding just after the statement.
func ReachingDefinitions(fset *token.FileSet, body *ast.BlockStmt) (map[cfg.Node]Domain, error) {
	g, entry, err := cfg.FromBody[Domain](fset, body)
	if err != nil {
		return nil, err
	}

	semantics := func(n cfg.Node, entry Domain, _ fixpoint.CallGraph, store *L.MutMap[cfg.Node, Domain]) (Domain, error) {
		block := n.(*cfg.Block)
		cur := entry
		for _, stmt := range block.Stmts() {
			cur = transfer(fset, stmt, cur)
			store.Put(stmt, cur)
		}
		return cur, nil
	}

	return fixpoint.Fixpoint[cfg.Node, Domain, *L.MutMap[cfg.Node, Domain]](
		g,
		map[cfg.Node]Domain{entry: Empty()},
		nil,
		worklist.Empty[cfg.Node](),
		fixpoint.DefaultWideningThreshold,
		semantics,
	)
}

// transfer applies the gen/kill effect of a single statement.
func transfer(fset *token.FileSet, n cfg.Node, d Domain) Domain {
	stmt, ok := n.(*cfg.Stmt)
	if !ok {
		return d
	}

	at := func(pos token.Pos) string {
		p := fset.Position(pos)
		return p.String()
	}

	switch s := stmt.Ast().(type) {
	case *ast.AssignStmt:
		for _, lhs := range s.Lhs {
			if id, ok := lhs.(*ast.Ident); ok && id.Name != "_" {
				d = d.Assign(id.Name, at(id.Pos()))
			}
		}
	case *ast.IncDecStmt:
		if id, ok := s.X.(*ast.Ident); ok {
			d = d.Assign(id.Name, at(id.Pos()))
		}
	case *ast.DeclStmt:
		if gd, ok := s.Decl.(*ast.GenDecl); ok && gd.Tok == token.VAR {
			for _, spec := range gd.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, id := range vs.Names {
						if id.Name != "_" {
							d = d.Assign(id.Name, at(id.Pos()))
						}
					}
				}
			}
		}
	}

	return d
}
