package sapling

import "testing"

func TestNodeRefFollowsMembership(t *testing.T) {
	tree := NewSceneTree()
	root := NewNode("root")
	mustAttach(t, tree, root, nil)
	enemy := NewNode("enemy")
	mustAttach(t, tree, enemy, root)

	ref := tree.Ref(enemy)
	if n, ok := ref.Get(); !ok || n != enemy {
		t.Fatal("ref should resolve while attached")
	}

	if err := tree.Detach(enemy); err != nil {
		t.Fatal(err)
	}
	if ref.Valid() {
		t.Error("ref should be invalid after detach")
	}

	other := NewSceneTree()
	mustAttach(t, other, enemy, nil)
	if ref.Valid() {
		t.Error("ref should not resolve in a different tree")
	}
}

func TestNodeRefNil(t *testing.T) {
	tree := NewSceneTree()
	if tree.Ref(nil).Valid() {
		t.Error("nil ref should be invalid")
	}
	var zero NodeRef
	if zero.Valid() {
		t.Error("zero ref should be invalid")
	}
}
