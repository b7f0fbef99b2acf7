package sapling

import (
	"fmt"
	"iter"
	"log/slog"
	"time"
	"weak"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling/internal/logging"
	"github.com/phanxgames/sapling/list"
)

// FrameObserver receives timing for each traversal pass. The metrics package
// provides a Prometheus-backed implementation.
type FrameObserver interface {
	ObserveStep(elapsed time.Duration, visited int)
	ObserveDispatch(elapsed time.Duration, visited int)
}

// EventSink receives every event passed to Dispatch after the nodes have seen
// it. The ecs module bridges it to a Donburi world.
type EventSink interface {
	EmitEvent(ev InputEvent)
}

// Option configures a SceneTree.
type Option func(*SceneTree)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(t *SceneTree) {
		if logger != nil {
			t.log = logger
		}
	}
}

// WithObserver sets the frame observer.
func WithObserver(obs FrameObserver) Option {
	return func(t *SceneTree) { t.observer = obs }
}

// WithEventSink sets the event sink.
func WithEventSink(sink EventSink) Option {
	return func(t *SceneTree) { t.sink = sink }
}

type mutationOp uint8

const (
	opAttach mutationOp = iota
	opDetach
)

// mutation is an Attach or Detach requested during a traversal.
type mutation struct {
	op     mutationOp
	node   *Node
	parent *Node
}

// SceneTree owns the root node and the draw order. It is driven by an
// external scheduler that calls Step at a fixed rate and Dispatch when input
// arrives, and by a renderer that calls Draw (or ranges over DrawOrder) once
// per frame.
//
// A SceneTree is not safe for concurrent use.
type SceneTree struct {
	root  *Node
	count int

	// drawOrder holds weak references: membership in the tree, not the
	// registry, keeps a node alive.
	drawOrder list.List[weak.Pointer[Node]]

	log      *slog.Logger
	observer FrameObserver
	sink     EventSink
	debug    bool

	walking      int // nesting depth of in-progress walks
	pending      list.List[mutation]
	deferredErrs []error
}

// NewSceneTree creates an empty tree.
func NewSceneTree(opts ...Option) *SceneTree {
	t := &SceneTree{log: logging.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root node, or nil if the tree is empty.
func (t *SceneTree) Root() *Node {
	return t.root
}

// Len returns the number of nodes reachable from the root.
func (t *SceneTree) Len() int {
	return t.count
}

// Contains reports whether n is attached to this tree.
func (t *SceneTree) Contains(n *Node) bool {
	return n != nil && n.tree == t
}

// SetEventSink sets the event sink; nil removes it.
func (t *SceneTree) SetEventSink(sink EventSink) {
	t.sink = sink
}

// SetObserver sets the frame observer; nil removes it.
func (t *SceneTree) SetObserver(obs FrameObserver) {
	t.observer = obs
}

// --- Attach / Detach ---

// Attach adds node to the tree. A nil parent makes node the root, releasing
// the previous root and its subtree. Otherwise node is appended to parent's
// children. Every drawable node in node's subtree is appended to the draw
// order in pre-order.
//
// Called during a traversal, Attach is queued and applied after the
// traversal finishes; it then returns nil and any failure is reported by
// DeferredErrors.
func (t *SceneTree) Attach(node, parent *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if t.walking > 0 {
		t.pending.PushBack(mutation{op: opAttach, node: node, parent: parent})
		return nil
	}
	return t.attach(node, parent)
}

func (t *SceneTree) attach(node, parent *Node) error {
	// One walk over node's subtree both collects it and checks for parent
	// inside it (which covers node == parent).
	var sub []*Node
	cycle, claimed := false, false
	walkTree(node, func(n, _ *Node, _, _ int) bool {
		if n == parent {
			cycle = true
			return false
		}
		if n.tree != nil {
			claimed = true
		}
		sub = append(sub, n)
		return true
	})
	if cycle {
		return fmt.Errorf("attach %s under %s: %w", node, parent, ErrCycleDetected)
	}
	if parent != nil && parent.tree != t {
		return fmt.Errorf("attach %s under %s: parent: %w", node, parent, ErrNotAttached)
	}
	if claimed {
		return fmt.Errorf("attach %s: %w", node, ErrAlreadyAttached)
	}

	if parent == nil {
		if t.root != nil {
			old := t.root
			t.release(old)
			t.log.Debug("root replaced", "old", old.String(), "new", node.String())
		}
		t.drawOrder.Clear()
		t.count = 0
		t.root = node
	} else {
		parent.children = append(parent.children, node)
	}

	for _, n := range sub {
		n.tree = t
		if n.Drawable != nil {
			t.drawOrder.PushBack(weak.Make(n))
		}
	}
	t.count += len(sub)

	if t.debug {
		if parent != nil {
			t.debugCheckChildCount(parent)
		}
		t.debugCheckTreeDepth(node)
	}
	t.log.Debug("attached", "node", node.String(), "parent", parent.String(), "subtree", len(sub))
	return nil
}

// Detach removes node and its subtree from the tree, dropping node and every
// drawable descendant from the draw order. The subtree keeps its shape and
// may be attached again.
//
// Called during a traversal, Detach is queued like Attach.
func (t *SceneTree) Detach(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if t.walking > 0 {
		t.pending.PushBack(mutation{op: opDetach, node: node})
		return nil
	}
	return t.detach(node)
}

func (t *SceneTree) detach(node *Node) error {
	if node.tree != t {
		return fmt.Errorf("detach %s: %w", node, ErrNotAttached)
	}
	if node == t.root {
		t.root = nil
		t.release(node)
		t.drawOrder.Clear()
		t.count = 0
		t.log.Debug("detached root", "node", node.String())
		return nil
	}

	parent, index := t.locate(node)
	if parent == nil {
		// Membership says attached but the node is unreachable.
		return fmt.Errorf("detach %s: unreachable: %w", node, ErrNotAttached)
	}
	parent.removeChildAt(index)

	removed := t.release(node)
	t.count -= len(removed)
	gone := make(map[*Node]struct{}, len(removed))
	for _, n := range removed {
		gone[n] = struct{}{}
	}
	t.drawOrder.DeleteFunc(func(wp weak.Pointer[Node]) bool {
		n := wp.Value()
		if n == nil {
			return true
		}
		_, ok := gone[n]
		return ok
	})
	t.log.Debug("detached", "node", node.String(), "parent", parent.String(), "subtree", len(removed))
	return nil
}

// release clears the membership marker on start's subtree and returns it.
func (t *SceneTree) release(start *Node) []*Node {
	sub := collectSubtree(start)
	for _, n := range sub {
		n.tree = nil
	}
	return sub
}

// locate finds target's parent and its index among the parent's children.
// It returns a nil parent for the root or a node outside the tree.
func (t *SceneTree) locate(target *Node) (parent *Node, index int) {
	walkTree(t.root, func(n, p *Node, i, _ int) bool {
		if n == target {
			parent, index = p, i
			return false
		}
		return true
	})
	return parent, index
}

// Find returns the first node in pre-order with the given name, or nil.
func (t *SceneTree) Find(name string) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Depth returns the number of levels in the tree (0 when empty).
func (t *SceneTree) Depth() int {
	if t.root == nil {
		return 0
	}
	depth := 0
	walkTree(t.root, func(_, _ *Node, _, d int) bool {
		depth = max(depth, d)
		return true
	})
	return depth + 1
}

// --- Traversal ---

// Walk calls visit on every node reachable from the root in pre-order
// depth-first order. Returning false from visit stops the walk. Walk reports
// whether every node was visited.
//
// The walk uses a heap-allocated frame stack, so tree depth is not limited by
// the goroutine stack. Attach and Detach called from visit are deferred until
// the walk ends.
func (t *SceneTree) Walk(visit func(n *Node) bool) bool {
	t.beginWalk()
	defer t.endWalk()
	return walkTree(t.root, func(n, _ *Node, _, _ int) bool {
		return visit(n)
	})
}

// beginWalk and endWalk bracket a traversal. endWalk is always deferred so
// the counter unwinds when a visitor panics.
func (t *SceneTree) beginWalk() {
	t.walking++
}

func (t *SceneTree) endWalk() {
	t.walking--
	if t.walking == 0 {
		t.flushPending()
	}
}

// WalkFrom is Walk over the subtree rooted at start, which must be attached
// to this tree.
func (t *SceneTree) WalkFrom(start *Node, visit func(n *Node) bool) (bool, error) {
	if start == nil {
		return false, ErrNilNode
	}
	if start.tree != t {
		return false, fmt.Errorf("walk from %s: %w", start, ErrNotAttached)
	}
	t.beginWalk()
	defer t.endWalk()
	return walkTree(start, func(n, _ *Node, _, _ int) bool {
		return visit(n)
	}), nil
}

// pass runs a full Step or Dispatch traversal and returns the number of
// nodes visited and the elapsed time.
func (t *SceneTree) pass(name string, visit func(n *Node) bool) (visited int, elapsed time.Duration) {
	if t.walking > 0 {
		panic("sapling: " + name + " called during a traversal")
	}
	start := time.Now()
	t.Walk(func(n *Node) bool {
		visited++
		return visit(n)
	})
	elapsed = time.Since(start)
	if t.debug {
		t.log.Debug(name, "visited", visited, "elapsed", elapsed)
	}
	return visited, elapsed
}

// Step runs the update pass: every reachable node's OnUpdate is called once
// with dt, the seconds elapsed since the previous Step.
func (t *SceneTree) Step(dt float64) {
	visited, elapsed := t.pass("step", func(n *Node) bool {
		if n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
		return true
	})
	if t.observer != nil {
		t.observer.ObserveStep(elapsed, visited)
	}
}

// Dispatch runs the input pass: every reachable node's OnInput is called once
// with ev. The handled flag returned by OnInput is ignored. The event is then
// forwarded to the event sink, if any.
func (t *SceneTree) Dispatch(ev InputEvent) {
	visited, elapsed := t.pass("dispatch", func(n *Node) bool {
		if n.OnInput != nil {
			n.OnInput(ev)
		}
		return true
	})
	if t.observer != nil {
		t.observer.ObserveDispatch(elapsed, visited)
	}
	if t.sink != nil {
		t.sink.EmitEvent(ev)
	}
}

// DispatchUntilHandled is Dispatch that stops at the first node whose OnInput
// returns true. It returns that node, or nil if no node handled the event.
// Handled events are not forwarded to the event sink.
func (t *SceneTree) DispatchUntilHandled(ev InputEvent) *Node {
	var handler *Node
	visited, elapsed := t.pass("dispatch", func(n *Node) bool {
		if n.OnInput != nil && n.OnInput(ev) {
			handler = n
			return false
		}
		return true
	})
	if t.observer != nil {
		t.observer.ObserveDispatch(elapsed, visited)
	}
	if handler == nil && t.sink != nil {
		t.sink.EmitEvent(ev)
	}
	return handler
}

// flushPending applies mutations queued during a traversal in FIFO order.
func (t *SceneTree) flushPending() {
	for !t.pending.Empty() {
		m, _ := t.pending.PopFront()
		var err error
		switch m.op {
		case opAttach:
			err = t.attach(m.node, m.parent)
		case opDetach:
			err = t.detach(m.node)
		}
		if err != nil {
			t.log.Warn("deferred mutation failed", "error", err)
			t.deferredErrs = append(t.deferredErrs, err)
		}
	}
}

// Pending returns the number of queued mutations. It is non-zero only while
// a traversal is in progress.
func (t *SceneTree) Pending() int {
	return t.pending.Len()
}

// DeferredErrors returns and clears the errors from deferred Attach and
// Detach calls.
func (t *SceneTree) DeferredErrors() []error {
	errs := t.deferredErrs
	t.deferredErrs = nil
	return errs
}

// --- Draw order ---

// DrawOrder returns an iterator over the drawable nodes in attach order.
// The tree must not be mutated during iteration.
func (t *SceneTree) DrawOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for wp := range t.drawOrder.Values() {
			n := wp.Value()
			if n == nil {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// DrawOrderLen returns the number of entries in the draw order.
func (t *SceneTree) DrawOrderLen() int {
	return t.drawOrder.Len()
}

// Draw paints every node in the draw order onto dst.
func (t *SceneTree) Draw(dst *ebiten.Image) {
	for n := range t.DrawOrder() {
		if n.Drawable != nil {
			n.Drawable.Draw(dst)
		}
	}
}
