package veb

// Tree is an immutable cache-oblivious search tree: a flat array of keys in
// van Emde Boas order plus the height of the conceptual complete binary
// tree it encodes. The zero Tree is not usable; obtain one through Build or
// BuildFromSlice. A *Tree is safe for concurrent use by any number of
// readers -- there is no mutator on the public API.
type Tree[K Integer] struct {
	array  []K
	height int
}

// Height returns the number of levels of the tree, h >= 1.
func (t *Tree[K]) Height() int {
	return t.height
}

// LeafCount returns the number of leaves, 2^(h-1).
func (t *Tree[K]) LeafCount() int {
	return leavesOfHeight(t.height)
}

// LeafAt returns the key stored at the given in-order leaf rank, 0-based.
// It runs in O(h) without touching any array entry outside the path to that
// leaf. LeafAt panics if rank is outside [0, LeafCount()) -- a rank out of
// range is a programmer error, not a recoverable condition.
func (t *Tree[K]) LeafAt(rank int) K {
	n := t.LeafCount()
	assert(rank >= 0 && rank < n, "veb: leaf rank %d out of range [0,%d)", rank, n)
	return t.array[leafIndexForRank(t.height, rank)]
}

// leafIndexForRank computes the flat-array offset of the leaf with the given
// in-order rank within a tree of the given height, by descending the same
// vEB split the builder used, without touching the array itself.
func leafIndexForRank(h, rank int) int {
	if h == 1 {
		return 0
	}
	hTop := splitTopHeight(h)
	hBot := h - hTop
	topSize := sizeOfHeight(hTop)
	botSize := sizeOfHeight(hBot)
	leavesPerBottom := leavesOfHeight(hBot)

	subtreeNumber := rank / leavesPerBottom
	rankInSubtree := rank % leavesPerBottom
	start := topSize + botSize*subtreeNumber
	return start + leafIndexForRank(hBot, rankInSubtree)
}
