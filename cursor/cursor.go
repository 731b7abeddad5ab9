// Package cursor implements the user-facing traversal façade (C8) over
// a shaped tree: Node wraps a shaper.Tree position with stable byte and
// row/column ranges, and TreeCursor provides the
// goto_first_child/goto_next_sibling/goto_parent walk spec.md requires.
// Grounded on odvcencio-mane/gotreesitter/tree.go's Node API
// (Child/ChildCount/Parent/Range/Text), generalized from a
// pointer-linked *Node into an id-indexed view over shaper.Tree, plus
// an explicit cursor type gotreesitter itself does not have (its
// traversal happens by direct Node method calls instead).
package cursor

import (
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/shaper"
)

// Node is a read-only view of one shaped-tree node.
type Node struct {
	tree *shaper.Tree
	id   shaper.NodeID
}

// NewNode wraps id in tree as a Node. id must be a valid id in tree.
func NewNode(tree *shaper.Tree, id shaper.NodeID) Node {
	return Node{tree: tree, id: id}
}

// Kind returns the node's grammar symbol or pseudo-kind.
func (n Node) Kind() kind.SyntaxKind { return n.tree.Node(n.id).Kind }

// IsToken reports whether n is a leaf token rather than an internal
// production node.
func (n Node) IsToken() bool { return n.tree.Node(n.id).IsToken }

// Text returns the exact source text spanned by n.
func (n Node) Text() string { return n.tree.Text(n.id) }

// Range returns n's byte and row/column span.
func (n Node) Range() shaper.Range { return n.tree.Node(n.id).Range }

// ChildCount returns the number of direct children (0 for tokens).
func (n Node) ChildCount() int { return len(n.tree.Node(n.id).Children) }

// Child returns the i-th direct child, or the zero Node and false if i
// is out of range.
func (n Node) Child(i int) (Node, bool) {
	ch := n.tree.Node(n.id).Children
	if i < 0 || i >= len(ch) {
		return Node{}, false
	}
	return Node{tree: n.tree, id: ch[i]}, true
}

// Parent returns n's parent, or the zero Node and false if n is the
// tree root.
func (n Node) Parent() (Node, bool) {
	p := n.tree.Node(n.id).Parent
	if p < 0 {
		return Node{}, false
	}
	return Node{tree: n.tree, id: p}, true
}

// NextSibling returns n's next sibling among its parent's children, or
// the zero Node and false if n has no parent or is its parent's last
// child (spec.md §4.7 next_sibling()).
func (n Node) NextSibling() (Node, bool) {
	parent, ok := n.Parent()
	if !ok {
		return Node{}, false
	}
	siblings := n.tree.Node(parent.id).Children
	idx := indexOf(siblings, n.id)
	if idx < 0 || idx+1 >= len(siblings) {
		return Node{}, false
	}
	return Node{tree: n.tree, id: siblings[idx+1]}, true
}

// IsComment reports whether n is a comment token (spec.md §4.7
// is_comment()).
func (n Node) IsComment(reg *kind.Registry) bool {
	return n.IsToken() && reg.IsComment(n.Kind())
}

// TreeCursor is a mutable traversal position over a shaper.Tree,
// matching tree-sitter's cursor protocol (spec.md §1 "a cursor API
// exposes goto_first_child / goto_next_sibling / goto_parent
// traversal").
type TreeCursor struct {
	tree *shaper.Tree
	// path holds the chain of ancestor ids from the root down to, but
	// not including, the current node; current is the node the cursor
	// is positioned at.
	path    []shaper.NodeID
	current shaper.NodeID
}

// NewTreeCursor creates a cursor positioned at tree's root.
func NewTreeCursor(tree *shaper.Tree) *TreeCursor {
	return &TreeCursor{tree: tree, current: tree.Root()}
}

// Node returns the node the cursor currently points at.
func (c *TreeCursor) Node() Node {
	return Node{tree: c.tree, id: c.current}
}

// IsComment reports whether the cursor's current node is a comment
// token (spec.md §4.7 is_comment()).
func (c *TreeCursor) IsComment(reg *kind.Registry) bool {
	return c.Node().IsComment(reg)
}

// GotoFirstChild moves to the current node's first child, returning
// true on success, or leaves the cursor unmoved and returns false if
// the current node has no children.
func (c *TreeCursor) GotoFirstChild() bool {
	ch := c.tree.Node(c.current).Children
	if len(ch) == 0 {
		return false
	}
	c.path = append(c.path, c.current)
	c.current = ch[0]
	return true
}

// GotoNextSibling moves to the next sibling of the current node,
// returning false (unmoved) if the current node is the last child or
// the root.
func (c *TreeCursor) GotoNextSibling() bool {
	if len(c.path) == 0 {
		return false
	}
	parent := c.path[len(c.path)-1]
	siblings := c.tree.Node(parent).Children
	idx := indexOf(siblings, c.current)
	if idx < 0 || idx+1 >= len(siblings) {
		return false
	}
	c.current = siblings[idx+1]
	return true
}

// GotoDirectPrevSibling moves to the previous sibling of the current
// node, returning false (unmoved) if the current node is the first
// child or the root.
func (c *TreeCursor) GotoDirectPrevSibling() bool {
	if len(c.path) == 0 {
		return false
	}
	parent := c.path[len(c.path)-1]
	siblings := c.tree.Node(parent).Children
	idx := indexOf(siblings, c.current)
	if idx <= 0 {
		return false
	}
	c.current = siblings[idx-1]
	return true
}

// GotoParent moves to the current node's parent, returning false
// (unmoved) if the cursor is already at the root.
func (c *TreeCursor) GotoParent() bool {
	if len(c.path) == 0 {
		return false
	}
	c.current = c.path[len(c.path)-1]
	c.path = c.path[:len(c.path)-1]
	return true
}

func indexOf(ids []shaper.NodeID, id shaper.NodeID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
