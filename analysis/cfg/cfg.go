package cfg

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"github.com/seml-dk/ibex/analysis/fixpoint"
	L "github.com/seml-dk/ibex/analysis/lattice"
	"github.com/seml-dk/ibex/utils"

	xcfg "golang.org/x/tools/go/cfg"
)

var errNoBody = errors.New("cannot build a control flow graph without a function body")

// Node is implemented by all control flow graph node types: basic blocks
// (outer nodes of fixpoint computations) and the statements nested within
// them (inner nodes).
type Node interface {
	fmt.Stringer

	// Pos returns the source position of the node, if known.
	Pos() token.Pos

	cfgNode()
}

// A Block is a basic block of a function's control flow graph.
type Block struct {
	block *xcfg.Block
	stmts []Node
}

func (b *Block) cfgNode() {}

// Index returns the stable index of the block within its function.
func (b *Block) Index() int32 {
	return b.block.Index
}

// Live reports whether the block is reachable from the function entry.
func (b *Block) Live() bool {
	return b.block.Live
}

// Stmts returns the statement nodes of the block in execution order.
func (b *Block) Stmts() []Node {
	return b.stmts
}

func (b *Block) Pos() token.Pos {
	if len(b.stmts) > 0 {
		return b.stmts[0].Pos()
	}
	return token.NoPos
}

func (b *Block) String() string {
	return fmt.Sprintf("b%d", b.block.Index)
}

// A Stmt is a statement or expression nested within a basic block.
type Stmt struct {
	node ast.Node
	fset *token.FileSet
}

func (s *Stmt) cfgNode() {}

// Ast returns the underlying syntax node.
func (s *Stmt) Ast() ast.Node {
	return s.node
}

func (s *Stmt) Pos() token.Pos {
	return s.node.Pos()
}

func (s *Stmt) String() string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.fset, s.node); err != nil {
		return fmt.Sprintf("<%T>", s.node)
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}

// FromBody builds a fixpoint graph from the control flow graph of the
// given function body. Outer nodes are basic blocks, inner nodes are their
// statements; every edge is an identity traversal. The returned entry node
// is the block function execution starts at.
func FromBody[S L.Element[S]](fset *token.FileSet, body *ast.BlockStmt) (
	g *fixpoint.AdjacencyGraph[Node, S, *L.MutMap[Node, S]],
	entry Node,
	err error,
) {
	if body == nil {
		return nil, nil, errNoBody
	}

	// Calls are pessimistically assumed to return.
	xg := xcfg.New(body, func(*ast.CallExpr) bool { return true })

	g = fixpoint.NewAdjacencyGraph[Node, S](func(S) *L.MutMap[Node, S] {
		return L.MakeMutMap[Node, S](utils.PointerHasher[Node]{})
	})

	blocks := make([]*Block, len(xg.Blocks))
	for i, xb := range xg.Blocks {
		b := &Block{block: xb}
		for _, n := range xb.Nodes {
			b.stmts = append(b.stmts, &Stmt{node: n, fset: fset})
		}
		blocks[i] = b
		g.AddNode(b)
	}

	for i, xb := range xg.Blocks {
		for _, succ := range xb.Succs {
			src, dst := Node(blocks[i]), Node(blocks[int(succ.Index)])
			if _, dup := g.EdgeConnecting(src, dst); dup {
				continue
			}
			if err := g.AddEdge(fixpoint.Connect[Node, S](src, dst)); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, blocks[0], nil
}
