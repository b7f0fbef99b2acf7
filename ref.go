package sapling

import "weak"

// NodeRef is a weak, checked reference to a node for systems outside the
// tree (gameplay code, lookup tables). It does not keep the node alive, and
// Get only returns the node while it is still attached to the tree the ref
// was taken from.
type NodeRef struct {
	ptr  weak.Pointer[Node]
	tree *SceneTree
}

// Ref returns a NodeRef for n in t.
func (t *SceneTree) Ref(n *Node) NodeRef {
	if n == nil {
		return NodeRef{tree: t}
	}
	return NodeRef{ptr: weak.Make(n), tree: t}
}

// Get returns the node if it is still attached to the ref's tree.
func (r NodeRef) Get() (*Node, bool) {
	n := r.ptr.Value()
	if n == nil || n.tree != r.tree || r.tree == nil {
		return nil, false
	}
	return n, true
}

// Valid reports whether Get would succeed.
func (r NodeRef) Valid() bool {
	_, ok := r.Get()
	return ok
}
