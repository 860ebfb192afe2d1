package bsp

import "errors"

var (
	// ErrEmptyTree indicates an operation was attempted against a tree
	// with no built nodes (e.g. Save on a nil *Node).
	ErrEmptyTree = errors.New("bsp: empty tree")

	// ErrCorruptDump indicates a JSON debug dump could not be decoded
	// back into a tree.
	ErrCorruptDump = errors.New("bsp: corrupt tree dump")
)
