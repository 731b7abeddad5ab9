// Package green implements the immutable, lossless concrete syntax
// tree produced by the LR driver: the "green tree" of spec.md's
// GLOSSARY ("the underlying immutable tree data; Root is the synthetic
// top").
//
// Nodes live in a single append-only arena and are referenced by a
// dense 32-bit id, never by pointer, so the tree is a DAG of ids with
// no owning references and can be shared freely (spec.md §9 "Cyclic
// parent/child references ... represent nodes as immutable records
// inside an arena indexed by a 32-bit id; parent is an id, never an
// owning reference"). Grounded structurally on
// odvcencio-mane/gotreesitter's arena.go (slab allocation) and
// tree.go's Node (byte/point ranges, parent/children), generalized
// from a pointer-linked *Node to an id-indexed immutable record.
package green

import "github.com/nbpillmayer-student/pgcst/kind"

// ID indexes a node (internal or token) within a Tree's arena.
type ID int32

// Nil is the id of "no node" — the parent of the root, or an absent
// optional child.
const Nil ID = -1

// Node is either an internal (non-terminal) node with Children, or a
// leaf token with a byte span into the source text. Every green tree
// is lossless: concatenating every token's text in order reproduces
// the original source byte-for-byte, including whitespace and
// comments (spec.md §8 "Round-trip (lossless)").
type Node struct {
	Kind     kind.SyntaxKind
	Parent   ID
	Children []ID // nil for tokens

	IsToken bool
	Start   uint32 // byte offset, tokens only
	Len     uint32 // byte length, tokens only
}

// Tree is a built, immutable green tree over a source text.
type Tree struct {
	Src   string
	nodes []Node
	root  ID
}

// Root returns the id of the tree's root node.
func (t *Tree) Root() ID { return t.root }

// Node returns the record for id. Panics if id is out of range — every
// id handed to callers originates from this same Tree.
func (t *Tree) Node(id ID) *Node { return &t.nodes[id] }

// Range returns the [start, end) byte range spanned by id: for a
// token, its own span; for an internal node, the span from its first
// descendant token to its last.
func (t *Tree) Range(id ID) (start, end uint32) {
	n := t.Node(id)
	if n.IsToken {
		return n.Start, n.Start + n.Len
	}
	// Empty internal descendants (epsilon reductions) hold no token and
	// are skipped; a node with no descendant token at all spans (0,0).
	var first, last *Node
	var visit func(ID)
	visit = func(c ID) {
		cn := t.Node(c)
		if cn.IsToken {
			if first == nil {
				first = cn
			}
			last = cn
			return
		}
		for _, cc := range cn.Children {
			visit(cc)
		}
	}
	visit(id)
	if first == nil {
		return 0, 0
	}
	return first.Start, last.Start + last.Len
}

// Text returns the source slice spanned by id.
func (t *Tree) Text(id ID) string {
	start, end := t.Range(id)
	return t.Src[start:end]
}

// NumNodes returns the number of arena entries (internal nodes and
// tokens combined).
func (t *Tree) NumNodes() int { return len(t.nodes) }
