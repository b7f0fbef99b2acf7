package sapling

import (
	"errors"

	"github.com/phanxgames/sapling/list"
)

var (
	// ErrNilNode is returned when a nil node is attached or detached.
	ErrNilNode = errors.New("sapling: nil node")
	// ErrCycleDetected is returned when attaching a node under one of its own
	// descendants (or under itself).
	ErrCycleDetected = errors.New("sapling: attach would create a cycle")
	// ErrNotAttached is returned when a node (or the requested parent) is not
	// part of the tree.
	ErrNotAttached = errors.New("sapling: node is not attached to this tree")
	// ErrAlreadyAttached is returned when a node, or one of its descendants,
	// already belongs to a tree. Detach it first; re-parenting is not supported.
	ErrAlreadyAttached = errors.New("sapling: node is already attached")

	// ErrEmptyCollection and ErrIndexOutOfRange are the list package errors,
	// re-exported for callers that only import sapling.
	ErrEmptyCollection = list.ErrEmpty
	ErrIndexOutOfRange = list.ErrIndexOutOfRange
)
