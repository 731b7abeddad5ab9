package cursor_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/cursor"
	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/shaper"
)

const (
	kRoot kind.SyntaxKind = iota
	kIdent
	kComma
)

// buildShaped builds Root -> (a , b , c) as a flat shaped tree, mirroring
// what shaper.ShapeLossless would produce for an already-flattened list.
func buildShaped(src string) *shaper.Tree {
	b := green.NewBuilder(src)
	b.StartNode(kRoot)
	b.Token(kIdent, 0, 1)
	b.Token(kComma, 1, 1)
	b.Token(kIdent, 2, 1)
	b.Token(kComma, 3, 1)
	b.Token(kIdent, 4, 1)
	root := b.FinishNode()
	gt := b.Build(root)
	return shaper.ShapeLossless(gt, shaper.Config{})
}

func TestTreeCursorWalksChildrenAndBack(t *testing.T) {
	tree := buildShaped("a,b,c")
	c := cursor.NewTreeCursor(tree)

	if c.Node().Kind() != kRoot {
		t.Fatalf("initial cursor kind = %v, want kRoot", c.Node().Kind())
	}
	if !c.GotoFirstChild() {
		t.Fatal("GotoFirstChild() = false, want true")
	}
	if c.Node().Text() != "a" {
		t.Fatalf("first child text = %q, want %q", c.Node().Text(), "a")
	}

	var texts []string
	texts = append(texts, c.Node().Text())
	for c.GotoNextSibling() {
		texts = append(texts, c.Node().Text())
	}
	want := []string{"a", ",", "b", ",", "c"}
	if len(texts) != len(want) {
		t.Fatalf("visited %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}

	if c.GotoNextSibling() {
		t.Error("GotoNextSibling() at last child = true, want false")
	}
	if !c.GotoDirectPrevSibling() {
		t.Fatal("GotoDirectPrevSibling() = false, want true")
	}
	if c.Node().Text() != "," {
		t.Errorf("prev sibling text = %q, want %q", c.Node().Text(), ",")
	}
	if !c.GotoParent() {
		t.Fatal("GotoParent() = false, want true")
	}
	if c.Node().Kind() != kRoot {
		t.Errorf("after GotoParent kind = %v, want kRoot", c.Node().Kind())
	}
	if c.GotoParent() {
		t.Error("GotoParent() at root = true, want false")
	}
}

func TestNodeNextSiblingAndIsComment(t *testing.T) {
	reg := kind.NewRegistry()
	b := green.NewBuilder("a/*c*/,b")
	b.StartNode(kRoot)
	b.Token(kIdent, 0, 1)
	b.Token(reg.CComment, 1, 5)
	b.Token(kComma, 6, 1)
	b.Token(kIdent, 7, 1)
	root := b.FinishNode()
	gt := b.Build(root)
	tree := shaper.ShapeLossless(gt, shaper.Config{})

	rootNode := cursor.NewNode(tree, tree.Root())
	first, ok := rootNode.Child(0)
	if !ok {
		t.Fatal("Child(0) ok = false")
	}
	second, ok := first.NextSibling()
	if !ok {
		t.Fatal("NextSibling() ok = false")
	}
	if !second.IsComment(reg) {
		t.Errorf("second child IsComment() = false, want true for %q", second.Text())
	}
	if first.IsComment(reg) {
		t.Error("ident child IsComment() = true, want false")
	}

	third, ok := second.NextSibling()
	if !ok || third.Text() != "," {
		t.Fatalf("NextSibling() of comment = %q, ok=%v, want \",\", true", third.Text(), ok)
	}
	if _, ok := rootNode.NextSibling(); ok {
		t.Error("root.NextSibling() ok = true, want false (no parent)")
	}

	c := cursor.NewTreeCursor(tree)
	c.GotoFirstChild()
	c.GotoNextSibling()
	if !c.IsComment(reg) {
		t.Error("cursor.IsComment() = false at comment token, want true")
	}
}

func TestNodeChildAndParentAccessors(t *testing.T) {
	tree := buildShaped("a,b,c")
	root := cursor.NewNode(tree, tree.Root())
	if root.ChildCount() != 5 {
		t.Fatalf("ChildCount() = %d, want 5", root.ChildCount())
	}
	first, ok := root.Child(0)
	if !ok || first.Text() != "a" {
		t.Fatalf("Child(0) = %q, ok=%v, want \"a\", true", first.Text(), ok)
	}
	parent, ok := first.Parent()
	if !ok || parent.Kind() != kRoot {
		t.Fatalf("Parent() kind = %v, ok=%v, want kRoot, true", parent.Kind(), ok)
	}
	if _, ok := root.Parent(); ok {
		t.Error("root.Parent() ok = true, want false")
	}
	if _, ok := root.Child(99); ok {
		t.Error("Child(99) ok = true, want false")
	}
}
