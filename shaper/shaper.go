// Package shaper implements the tree-shaping pass (C7): it turns the
// raw, fully lossless green tree the driver produces into a
// tree-sitter-compatible shape — flattening left-recursive list
// non-terminals, dropping "optional wrapper" non-terminals, and
// (in the tree-sitter-facing variant) computing row/column ranges and
// optionally dropping whitespace. Grounded on the original
// implementation's tree_sitter/convert.rs (flatten + wrapper removal)
// and tree_sitter/transform.rs (range map, whitespace drop), expressed
// over this module's green.Tree instead of rewriting in place.
package shaper

import (
	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/kind"
)

// Config names the grammar-specific kinds the shaper must recognize.
// A grammar package (e.g. pgsql) builds one from its own registry.
type Config struct {
	// ListKinds are non-terminals produced by left recursion (A -> A
	// sep? B | B) that should be flattened into one flat node with all
	// elements (and separators) as direct children.
	ListKinds map[kind.SyntaxKind]bool
	// WrapperKinds are non-terminals whose only purpose is optionality
	// (opt_foo -> foo | /* empty */) and that should vanish from the
	// shaped tree, splicing their (zero or one) children in directly.
	WrapperKinds map[kind.SyntaxKind]bool
	// Whitespace identifies the trivia kind dropped by ShapeTreeSitter.
	Whitespace kind.SyntaxKind
}

// NodeID indexes a node in a Shaped tree's own arena — a fresh arena
// per spec.md §9 ("the shaper allocates a new arena; it never mutates
// the input").
type NodeID int32

// Range is a node's span in both byte offsets and 0-based row/column
// positions.
type Range struct {
	StartByte, EndByte                 uint32
	StartRow, StartCol, EndRow, EndCol uint32
}

// Node is a shaped tree node: either an internal node with Children,
// or a leaf token.
type Node struct {
	Kind     kind.SyntaxKind
	Parent   NodeID
	Children []NodeID
	IsToken  bool
	Range    Range
}

// Tree is the output of the shaping pass.
type Tree struct {
	Src   string
	nodes []Node
	root  NodeID
}

func (t *Tree) Root() NodeID         { return t.root }
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }
func (t *Tree) NumNodes() int        { return len(t.nodes) }

// RangeMap is every node's byte/row/column span, keyed by NodeID,
// standing on its own (spec.md §3's data model names a range map as a
// collaborator of the shaped tree, not a field folded into each node's
// own bookkeeping).
type RangeMap map[NodeID]Range

// BuildRangeMap collects tree's per-node ranges into a standalone
// RangeMap, for callers that want to query ranges without walking the
// tree itself (e.g. tree-sitter-style byte-offset lookups).
func BuildRangeMap(tree *Tree) RangeMap {
	rm := make(RangeMap, tree.NumNodes())
	for i := 0; i < tree.NumNodes(); i++ {
		id := NodeID(i)
		rm[id] = tree.Node(id).Range
	}
	return rm
}

func (t *Tree) Text(id NodeID) string {
	n := t.Node(id)
	return t.Src[n.Range.StartByte:n.Range.EndByte]
}

// ShapeLossless flattens list kinds and removes wrapper kinds but
// otherwise keeps every token — including whitespace and comments —
// so the shaped tree remains byte-for-byte round-trippable. Byte offsets
// are set, but row/column positions are not computed (those Range
// fields are left zero); use ShapeTreeSitter when they are needed.
func ShapeLossless(src *green.Tree, cfg Config) *Tree {
	b := &shapeBuilder{src: src, cfg: cfg}
	root := b.shapeNode(src.Root(), -1)
	return &Tree{Src: src.Src, nodes: b.nodes, root: root}
}

// ShapeTreeSitter runs the same flatten/remove-wrapper pass as
// ShapeLossless, then computes row/column ranges for every node and
// drops whitespace tokens (comments are kept — spec.md's scenarios
// only ever mention dropping whitespace, never comments).
func ShapeTreeSitter(src *green.Tree, cfg Config) *Tree {
	b := &shapeBuilder{src: src, cfg: cfg, dropWhitespace: true}
	root := b.shapeNode(src.Root(), -1)
	tree := &Tree{Src: src.Src, nodes: b.nodes, root: root}
	starts := lineStarts(src.Src)
	for i := range tree.nodes {
		n := &tree.nodes[i]
		sr, sc := rowColOf(starts, n.Range.StartByte)
		er, ec := rowColOf(starts, n.Range.EndByte)
		n.Range.StartRow, n.Range.StartCol = sr, sc
		n.Range.EndRow, n.Range.EndCol = er, ec
	}
	return tree
}

type shapeBuilder struct {
	src            *green.Tree
	cfg            Config
	dropWhitespace bool
	nodes          []Node
}

// shapeNode shapes the subtree rooted at g (a green.ID) and appends it
// (and its descendants) to b.nodes, returning its new NodeID. parent is
// the NodeID of the already-allocated parent, or -1 for the root.
func (b *shapeBuilder) shapeNode(g green.ID, parent NodeID) NodeID {
	gn := b.src.Node(g)

	if gn.IsToken {
		start, end := b.src.Range(g)
		id := NodeID(len(b.nodes))
		b.nodes = append(b.nodes, Node{
			Kind:    gn.Kind,
			Parent:  parent,
			IsToken: true,
			Range:   Range{StartByte: start, EndByte: end},
		})
		return id
	}

	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Kind: gn.Kind, Parent: parent})

	var children []NodeID
	if b.cfg.ListKinds[gn.Kind] {
		// gn is itself a list occurrence: flatten only nested
		// occurrences of this same kind underneath it (the no-nest
		// guarantee), but keep gn's own node — exactly one node per
		// list occurrence survives, per spec.md §4.6/§8.
		children = b.shapeListChildren(gn.Kind, gn.Children, id)
	} else {
		children = b.shapeChildren(gn.Children, id)
	}
	if len(children) > 0 {
		first, last := b.nodes[children[0]], b.nodes[children[len(children)-1]]
		b.nodes[id].Range = Range{StartByte: first.Range.StartByte, EndByte: last.Range.EndByte}
	}
	b.nodes[id].Children = children
	return id
}

// shapeChildren shapes a raw child list that is not itself inside a
// list-kind chain, splicing dropped wrapper children in place and
// omitting whitespace tokens when dropWhitespace is set. A ListKind
// child is shaped (and flattened internally) by its own shapeNode
// call, so it survives here as exactly one node.
func (b *shapeBuilder) shapeChildren(raw []green.ID, parent NodeID) []NodeID {
	var out []NodeID
	for _, c := range raw {
		cn := b.src.Node(c)

		if b.dropWhitespace && cn.IsToken && cn.Kind == b.cfg.Whitespace {
			continue
		}

		if !cn.IsToken && b.cfg.WrapperKinds[cn.Kind] {
			out = append(out, b.shapeChildren(cn.Children, parent)...)
			continue
		}

		out = append(out, b.shapeNode(c, parent))
	}
	return out
}

// shapeListChildren shapes the raw children of a node whose own kind is
// listKind (A -> A sep B | B), dissolving only nested occurrences of
// that exact same kind so the chain collapses into one flat node with
// no intervening A node, while any other child (including a
// differently-kinded list) is shaped normally through shapeNode.
func (b *shapeBuilder) shapeListChildren(listKind kind.SyntaxKind, raw []green.ID, parent NodeID) []NodeID {
	var out []NodeID
	for _, c := range raw {
		cn := b.src.Node(c)

		if b.dropWhitespace && cn.IsToken && cn.Kind == b.cfg.Whitespace {
			continue
		}

		if !cn.IsToken && b.cfg.WrapperKinds[cn.Kind] {
			out = append(out, b.shapeChildren(cn.Children, parent)...)
			continue
		}

		if !cn.IsToken && cn.Kind == listKind {
			out = append(out, b.shapeListChildren(listKind, cn.Children, parent)...)
			continue
		}

		out = append(out, b.shapeNode(c, parent))
	}
	return out
}
