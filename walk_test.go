package sapling

import "testing"

func TestWalkTreeReportsParentIndexDepth(t *testing.T) {
	root := NewNode("root")
	a, b, a1 := NewNode("a"), NewNode("b"), NewNode("a1")
	root.children = []*Node{a, b}
	a.children = []*Node{a1}

	type visit struct {
		name, parent string
		index, depth int
	}
	var got []visit
	walkTree(root, func(n, p *Node, i, d int) bool {
		name := ""
		if p != nil {
			name = p.Name
		}
		got = append(got, visit{n.Name, name, i, d})
		return true
	})
	want := []visit{
		{"root", "", -1, 0},
		{"a", "root", 0, 1},
		{"a1", "a", 0, 2},
		{"b", "root", 1, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d visits, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWalkTreeNilStart(t *testing.T) {
	if !walkTree(nil, func(*Node, *Node, int, int) bool {
		t.Error("visit called for nil start")
		return true
	}) {
		t.Error("nil walk should complete")
	}
}

func TestSubtreeContains(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.children = []*Node{a}
	a.children = []*Node{b}

	if !subtreeContains(root, b) || !subtreeContains(a, a) {
		t.Error("expected subtree to contain node")
	}
	if subtreeContains(b, root) || subtreeContains(root, nil) {
		t.Error("unexpected containment")
	}
	if got := collectSubtree(a); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("collectSubtree = %v", got)
	}
}
