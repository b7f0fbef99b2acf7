package sapling

// Thresholds above which debug mode logs a warning.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// SetDebugMode enables or disables debug mode. When enabled, every Step and
// Dispatch logs its visit count and duration at debug level, and Attach warns
// when the tree grows deeper than 32 levels or a node gets more than 1000
// children.
func (t *SceneTree) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (t *SceneTree) DebugMode() bool {
	return t.debug
}

// debugCheckTreeDepth warns if the deepest path through n exceeds the threshold.
func (t *SceneTree) debugCheckTreeDepth(n *Node) {
	depth := t.Depth()
	if depth > debugMaxTreeDepth {
		t.log.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.String())
	}
}

// debugCheckChildCount warns if n has more children than the threshold.
func (t *SceneTree) debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		t.log.Warn("child count exceeds threshold",
			"node", n.String(), "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
