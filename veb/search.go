package veb

// Result identifies a located leaf: its offset in the flat array and its
// 0-based in-order rank among leaves. The zero Result carries no meaning
// outside a call that reported ok == true.
type Result struct {
	Index      int
	LeafNumber int
}

// notInTree is the internal sentinel leaf number used by searchRec and the
// base cases to signal "strictly below the tree's minimum leaf" without a
// second return channel, matching the branch-free base cases' natural
// encoding. Search converts it to the two-result-shape (Result, bool) at the
// public boundary, per the design's resolution of the NotInTree/sentinel
// tension described for the base cases.
const notInTree = -1

// Search returns the lower bound of x: the greatest stored key <= x,
// identified by its flat-array offset and in-order leaf rank. It reports
// ok == false if x is strictly less than the tree's minimum leaf; otherwise
// it reports ok == true, clamping to the rightmost leaf if x exceeds the
// maximum.
//
// Search is pure and allocates nothing.
func (t *Tree[K]) Search(x K) (result Result, ok bool) {
	index, leafNumber := searchRec(t.array, t.height, x)
	if leafNumber == notInTree {
		return Result{}, false
	}
	return Result{Index: index, LeafNumber: leafNumber}, true
}

// searchRec answers the lower-bound query against a, a vEB-laid-out array of
// length sizeOfHeight(h), returning (0, notInTree) if x is below a's
// minimum. It splits at the same height the builder used (§4.1
// splitTopHeight), recurses into the top half to learn which pair of bottom
// subtrees straddles x, reads that pair's right root to pick a side, then
// recurses into the chosen bottom subtree -- one comparison per split, plus
// those of the height-1/2/3 base cases the recursion ends in.
func searchRec[K Integer](a []K, h int, x K) (index, leafNumber int) {
	switch h {
	case 1:
		return searchHeight1(a, x)
	case 2:
		return searchHeight2(a, x)
	case 3:
		return searchHeight3(a, x)
	}

	hTop := splitTopHeight(h)
	hBot := h - hTop
	topSize := sizeOfHeight(hTop)
	botSize := sizeOfHeight(hBot)

	_, lf := searchRec(a[:topSize], hTop, x)
	if lf == notInTree {
		return 0, notInTree
	}

	rightRootIdx := topSize + botSize*(2*lf+1)
	subtreeNumber := 2 * lf
	if x >= a[rightRootIdx] {
		subtreeNumber++
	}

	start := topSize + botSize*subtreeNumber
	subIndex, subLeaf := searchRec(a[start:start+botSize], hBot, x)
	if subLeaf == notInTree {
		return 0, notInTree
	}
	return start + subIndex, leavesOfHeight(hBot)*subtreeNumber + subLeaf
}

// searchHeight1 handles the single-node tree [r]: r is simultaneously the
// sole leaf and the sole node.
func searchHeight1[K Integer](a []K, x K) (int, int) {
	if x >= a[0] {
		return 0, 0
	}
	return 0, notInTree
}

// searchHeight2 handles the 3-entry tree [r, a, b] where r equals a (both
// the subtree's overall minimum); a and b are the two leaves at indices 1
// and 2.
func searchHeight2[K Integer](a []K, x K) (int, int) {
	switch {
	case x < a[1]:
		return 0, notInTree
	case x < a[2]:
		return 1, 0
	default:
		return 2, 1
	}
}

// searchHeight3 handles the 7-entry tree whose four leaves sit consecutively
// at a[3:7]. It delegates to the branch-free variant, which the test suite
// checks agrees bit-for-bit with searchHeight3Scalar on every input -- the
// two are alternative encodings of the same comparisons, not alternative
// semantics.
func searchHeight3[K Integer](a []K, x K) (int, int) {
	return searchHeight3Branchless(a, x)
}

// searchHeight3Scalar is the direct chain of comparisons against the four
// leaves a[3], a[4], a[5], a[6] -- equivalent to, but simpler than, routing
// through the two height-2 subtree roots at a[1] and a[2], since the leaves
// of a complete tree are already sorted in-order.
func searchHeight3Scalar[K Integer](a []K, x K) (int, int) {
	switch {
	case x < a[3]:
		return 0, notInTree
	case x < a[4]:
		return 3, 0
	case x < a[5]:
		return 4, 1
	case x < a[6]:
		return 5, 2
	default:
		return 6, 3
	}
}

// searchHeight3Branchless selects the smallest leaf offset among {3,4,5,6}
// whose key is strictly greater than x -- every lane is compared regardless
// of the others' outcome, then one final reduction picks the minimum
// selected lane. This is the branch-free shape a 4-lane SIMD compare and
// horizontal-min would take; it is a performance specialization of
// searchHeight3Scalar, required only to match it bit-for-bit.
func searchHeight3Branchless[K Integer](a []K, x K) (int, int) {
	const null = 7 // one past the last real leaf offset; never a winning lane
	lanes := [4]int{3, 4, 5, 6}
	selected := [4]int{null, null, null, null}
	for i, off := range lanes {
		if x < a[off] {
			selected[i] = off
		}
	}
	idx := null
	for _, s := range selected {
		if s < idx {
			idx = s
		}
	}
	switch idx {
	case null:
		return 6, 3
	case 3:
		return 0, notInTree
	default:
		return idx - 1, idx - 4
	}
}
