// Package sapling is a minimal scene-graph runtime for [Ebitengine].
//
// A [SceneTree] owns a hierarchy of [Node] values. Once per frame an external
// scheduler calls [SceneTree.Step], which visits every node in pre-order and
// runs its OnUpdate behavior; when input arrives it calls
// [SceneTree.Dispatch], which runs every node's OnInput. Painting does not
// follow the tree: drawable nodes are painted in the order they were attached
// (see [SceneTree.DrawOrder]), so paint order stays stable while the tree is
// rearranged.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and uses
// Ebitengine as the scheduler:
//
//	tree := sapling.NewSceneTree()
//	root := sapling.NewNode("root")
//	tree.Attach(root, nil)
//
//	box := sapling.NewSpriteNode("box", nil)
//	box.Sprite().SetScale(40, 40)
//	box.OnUpdate = func(dt float64) { box.Sprite().Rotation += dt }
//	tree.Attach(box, root)
//
//	sapling.Run(tree, sapling.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For headless simulation, drive the tree with a [Ticker] instead, or call
// Step and Dispatch directly.
//
// # Capabilities
//
// Nodes are composed rather than subclassed. A node is updatable if OnUpdate
// is set, an input handler if OnInput is set, and drawable if Drawable is
// set when it is attached. [Sprite] is the built-in 2-D drawable.
//
// # Traversal
//
// Walks are iterative and keep their frame stack on the heap in a
// [list.List], so arbitrarily deep trees cannot exhaust the goroutine stack.
// Attach and Detach called from inside a walk are queued and applied when
// the walk finishes.
//
// [Ebitengine]: https://ebitengine.org
package sapling
