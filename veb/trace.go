package veb

// SearchTrace behaves like Search but additionally returns, in the order
// they were read, every flat-array index the search touched. It exists to
// demonstrate and measure the O(log_B n) block-transfer bound of §1 for a
// chosen block size; unlike Search it allocates, so it is a debugging and
// benchmarking aid, not part of the hot path.
func (t *Tree[K]) SearchTrace(x K) (result Result, ok bool, visited []int) {
	index, leafNumber := searchRecTrace(t.array, 0, t.height, x, &visited)
	if leafNumber == notInTree {
		return Result{}, false, visited
	}
	return Result{Index: index, LeafNumber: leafNumber}, true, visited
}

func searchRecTrace[K Integer](a []K, base, h int, x K, visited *[]int) (index, leafNumber int) {
	switch h {
	case 1:
		*visited = append(*visited, base+0)
		return searchHeight1(a, x)
	case 2:
		*visited = append(*visited, base+1, base+2)
		return searchHeight2(a, x)
	case 3:
		*visited = append(*visited, base+3, base+4, base+5, base+6)
		return searchHeight3(a, x)
	}

	hTop := splitTopHeight(h)
	hBot := h - hTop
	topSize := sizeOfHeight(hTop)
	botSize := sizeOfHeight(hBot)

	_, lf := searchRecTrace(a[:topSize], base, hTop, x, visited)
	if lf == notInTree {
		return 0, notInTree
	}

	rightRootIdx := topSize + botSize*(2*lf+1)
	*visited = append(*visited, base+rightRootIdx)
	subtreeNumber := 2 * lf
	if x >= a[rightRootIdx] {
		subtreeNumber++
	}

	start := topSize + botSize*subtreeNumber
	subIndex, subLeaf := searchRecTrace(a[start:start+botSize], base+start, hBot, x, visited)
	if subLeaf == notInTree {
		return 0, notInTree
	}
	return start + subIndex, leavesOfHeight(hBot)*subtreeNumber + subLeaf
}
