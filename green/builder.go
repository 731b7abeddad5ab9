package green

import "github.com/nbpillmayer-student/pgcst/kind"

// Builder accumulates start_node/token/finish_node events into a Tree
// (spec.md §4.4: "a green_builder accumulating tree events (start_node,
// finish_node, token)"). It is single-use: call Build once after the
// matching Finish for the outermost StartNode.
type Builder struct {
	src   string
	nodes []Node
	open  []openFrame
}

type openFrame struct {
	kind     kind.SyntaxKind
	children []ID
}

// NewBuilder creates a Builder over src, the exact source text the
// driver is parsing — every token's Start/Len is an offset into it.
func NewBuilder(src string) *Builder {
	return &Builder{src: src}
}

// Checkpoint identifies a point in the event stream that StartNodeAt
// can retroactively wrap in a new parent — used by the driver to
// install a node around already-emitted events once it discovers, a
// few tokens later, that it needed one (e.g. wrapping an expression in
// a wider production after a reduce). Unused checkpoints are harmless.
type Checkpoint int

// Checkpoint returns a mark at the current position in the innermost
// open frame's children.
func (b *Builder) Checkpoint() Checkpoint {
	if len(b.open) == 0 {
		return Checkpoint(0)
	}
	return Checkpoint(len(b.open[len(b.open)-1].children))
}

// StartNode opens a new internal node of the given kind.
func (b *Builder) StartNode(k kind.SyntaxKind) {
	b.open = append(b.open, openFrame{kind: k})
}

// StartNodeAt opens a new internal node that adopts every child emitted
// since checkpoint was taken in the current frame.
func (b *Builder) StartNodeAt(k kind.SyntaxKind, cp Checkpoint) {
	cur := &b.open[len(b.open)-1]
	adopted := append([]ID(nil), cur.children[cp:]...)
	cur.children = cur.children[:cp]
	b.open = append(b.open, openFrame{kind: k, children: adopted})
}

// Token appends a leaf token of the given kind spanning
// src[start:start+length].
func (b *Builder) Token(k kind.SyntaxKind, start, length uint32) ID {
	id := ID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Kind: k, Parent: Nil, IsToken: true, Start: start, Len: length})
	b.attach(id)
	return id
}

// FinishNode closes the innermost open node, attaching it to its
// parent frame (or recording it as the tree root if it was the
// outermost).
func (b *Builder) FinishNode() ID {
	n := len(b.open)
	frame := b.open[n-1]
	b.open = b.open[:n-1]

	id := ID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Kind: frame.kind, Parent: Nil, Children: frame.children})
	for _, c := range frame.children {
		b.nodes[c].Parent = id
	}
	b.attach(id)
	return id
}

func (b *Builder) attach(id ID) {
	if len(b.open) == 0 {
		return
	}
	top := &b.open[len(b.open)-1]
	top.children = append(top.children, id)
}

// Build finalizes the tree. root is the id of the single top-level
// node left after every StartNode has a matching FinishNode.
func (b *Builder) Build(root ID) *Tree {
	return &Tree{Src: b.src, nodes: b.nodes, root: root}
}
