package sapling

import "github.com/phanxgames/sapling/list"

// frame is one entry of the traversal stack: a node whose children are being
// visited and the index of the next child to visit.
type frame struct {
	node *Node
	next int
}

// visitFunc receives each node together with its parent, its index among the
// parent's children and its depth (the start node has parent nil, index -1
// and depth 0). Returning false stops the walk.
type visitFunc func(n, parent *Node, index, depth int) bool

// walkTree visits start and all of its descendants in pre-order without
// recursion, using a linked list as the frame stack. The stack never grows
// beyond the depth of the subtree. It reports whether the walk ran to
// completion.
//
// The tree must not be mutated while walking.
func walkTree(start *Node, visit visitFunc) bool {
	if start == nil {
		return true
	}
	if !visit(start, nil, -1, 0) {
		return false
	}
	var stack list.List[frame]
	stack.PushBack(frame{node: start})
	for !stack.Empty() {
		top := stack.BackPtr()
		if top.next >= len(top.node.children) {
			// Subtree exhausted: backtrack to the nearest ancestor with
			// unvisited children.
			_, _ = stack.PopBack()
			continue
		}
		parent, index := top.node, top.next
		child := parent.children[index]
		top.next++
		if !visit(child, parent, index, stack.Len()) {
			stack.Clear()
			return false
		}
		if len(child.children) > 0 {
			stack.PushBack(frame{node: child})
		}
	}
	return true
}

// collectSubtree returns start and its descendants in pre-order.
func collectSubtree(start *Node) []*Node {
	var out []*Node
	walkTree(start, func(n, _ *Node, _, _ int) bool {
		out = append(out, n)
		return true
	})
	return out
}

// subtreeContains reports whether target is start or one of its descendants.
func subtreeContains(start, target *Node) bool {
	if target == nil {
		return false
	}
	found := false
	walkTree(start, func(n, _ *Node, _, _ int) bool {
		found = n == target
		return !found
	})
	return found
}
