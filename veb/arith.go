package veb

// sizeOfHeight returns the number of entries (internal nodes plus leaves) of
// a complete binary tree of height h: 2^h - 1.
func sizeOfHeight(h int) int {
	return 1<<uint(h) - 1
}

// leavesOfHeight returns the number of leaves of a complete binary tree of
// height h: 2^(h-1).
func leavesOfHeight(h int) int {
	return 1 << uint(h-1)
}

// isOdd reports whether h is odd.
func isOdd(h int) bool {
	return h%2 == 1
}

// splitTopHeight returns the height of the upper half of a vEB split of a
// tree with height h. When h is odd the top half is taller by one level;
// when h is even both halves are equal. The builder and the search engine
// must agree on this tie-break, since the search engine re-derives the same
// split the builder used to lay the array out.
func splitTopHeight(h int) int {
	top := h / 2
	if isOdd(h) {
		top++
	}
	return top
}
