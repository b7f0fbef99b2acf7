package sapling

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is the paint capability. A node whose Drawable is non-nil when it
// is attached is registered in the tree's draw order.
type Drawable interface {
	Draw(dst *ebiten.Image)
}

// DrawFunc adapts a plain function to the Drawable interface.
type DrawFunc func(dst *ebiten.Image)

// Draw calls f(dst).
func (f DrawFunc) Draw(dst *ebiten.Image) { f(dst) }

// InputEvent is an opaque input payload. The tree forwards it unchanged to
// every node's OnInput handler. See KeyEvent, PointerEvent and WheelEvent for
// the events produced by InputPoller.
type InputEvent any

// --- ID counter ---

// nodeIDCounter is a plain counter; sapling is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is an element of the scene hierarchy. Behavior is selected by
// composition: any combination of OnUpdate, OnInput and Drawable may be set.
//
// A node owns its children. There is no parent pointer; a node's parent is
// implied by its position in the tree.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Metadata
	UserData any

	// OnUpdate is called once per update pass with the elapsed seconds.
	OnUpdate func(dt float64)

	// OnInput is called once per input pass. Returning true marks the event
	// as handled, which stops DispatchUntilHandled; Dispatch ignores it.
	OnInput func(ev InputEvent) bool

	// Drawable is sampled when the node is attached. Setting it afterwards
	// does not register the node for painting.
	Drawable Drawable

	children []*Node

	// tree is the membership marker: the tree this node is attached to, or
	// nil. It is not an ownership edge.
	tree *SceneTree
}

// NewNode creates a structural node with no behavior.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name}
}

// NewDrawableNode creates a node with the given paint behavior.
func NewDrawableNode(name string, d Drawable) *Node {
	n := NewNode(name)
	n.Drawable = d
	return n
}

// NewSpriteNode creates a drawable node backed by a Sprite. A nil img draws a
// solid rectangle of size ScaleX by ScaleY.
func NewSpriteNode(name string, img *ebiten.Image) *Node {
	return NewDrawableNode(name, NewSprite(img))
}

// Sprite returns the node's Sprite, or nil if its Drawable is something else.
func (n *Node) Sprite() *Sprite {
	s, _ := n.Drawable.(*Sprite)
	return s
}

// IsUpdatable reports whether the node has update behavior.
func (n *Node) IsUpdatable() bool { return n.OnUpdate != nil }

// IsInputHandler reports whether the node handles input.
func (n *Node) IsInputHandler() bool { return n.OnInput != nil }

// IsDrawable reports whether the node has paint behavior.
func (n *Node) IsDrawable() bool { return n.Drawable != nil }

// Attached reports whether the node currently belongs to a tree.
func (n *Node) Attached() bool { return n.tree != nil }

// Tree returns the tree the node is attached to, or nil.
func (n *Node) Tree() *SceneTree { return n.tree }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", n.Name, n.ID)
}

// --- Helpers ---

// removeChildAt removes the child at index i.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildAt(i int) {
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}
