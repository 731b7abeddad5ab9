package green_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/kind"
)

const (
	kRoot kind.SyntaxKind = iota
	kIdent
	kPlus
	kExpr
)

func TestBuilderFlatShiftReduce(t *testing.T) {
	src := "a+a"
	b := green.NewBuilder(src)
	b.StartNode(kRoot)
	b.Token(kIdent, 0, 1)
	b.Token(kPlus, 1, 1)
	b.Token(kIdent, 2, 1)
	root := b.FinishNode()
	tree := b.Build(root)

	if tree.Text(tree.Root()) != src {
		t.Errorf("Text(root) = %q, want %q", tree.Text(tree.Root()), src)
	}
	if got := len(tree.Node(tree.Root()).Children); got != 3 {
		t.Errorf("children = %d, want 3", got)
	}
}

func TestStartNodeAtWrapsTrailingChildren(t *testing.T) {
	src := "a+a"
	b := green.NewBuilder(src)
	b.StartNode(kRoot)
	b.Token(kIdent, 0, 1)

	cp := b.Checkpoint()
	b.Token(kPlus, 1, 1)
	b.Token(kIdent, 2, 1)
	b.StartNodeAt(kExpr, cp)
	exprID := b.FinishNode()

	root := b.FinishNode()
	tree := b.Build(root)

	rootNode := tree.Node(tree.Root())
	if len(rootNode.Children) != 2 {
		t.Fatalf("root children = %d, want 2 (ident, expr)", len(rootNode.Children))
	}
	expr := tree.Node(rootNode.Children[1])
	if expr.Kind != kExpr || len(expr.Children) != 2 {
		t.Fatalf("wrapped node = %+v, want kExpr with 2 children", expr)
	}
	if got := tree.Text(exprID); got != "+a" {
		t.Errorf("Text(expr) = %q, want %q", got, "+a")
	}
	if tree.Text(tree.Root()) != src {
		t.Errorf("lossless round-trip broken: got %q, want %q", tree.Text(tree.Root()), src)
	}
}

func TestRangeOfEmptyInternalNodeIsZero(t *testing.T) {
	b := green.NewBuilder("")
	b.StartNode(kRoot)
	root := b.FinishNode()
	tree := b.Build(root)
	start, end := tree.Range(tree.Root())
	if start != 0 || end != 0 {
		t.Errorf("Range(empty root) = (%d,%d), want (0,0)", start, end)
	}
}
