package core

// Test-only hooks for building malformed node graphs that the public API can
// never produce.

// Attach sets the left and right children of n directly.
func Attach[T any](n, left, right *Node[T]) {
	n.left, n.right = left, right
}

// ForceSize overwrites the recorded node count.
func ForceSize[T any](t *Tree[T], size int) {
	t.size = size
}
