package veb

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScenarioHeight4Dense(t *testing.T) {
	leaves := []int{0, 1, 2, 3, 4, 5, 6, 7}
	tree, err := BuildFromSlice(leaves)
	assert.NoError(t, err)
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, []int{0, 0, 4, 0, 0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7}, tree.array)
}

func TestBuildErrors(t *testing.T) {
	_, err := BuildFromSlice([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrCountNotPowerOfTwo)

	_, err = Build[int](NewSliceSource([]int{1, 2, 3}), 4)
	assert.ErrorIs(t, err, ErrStreamTooShort)

	_, err = Build[int](NewSliceSource([]int{1, 2, 3, 4, 5}), 4)
	assert.ErrorIs(t, err, ErrStreamTooLong)

	_, err = Build[int](NewSliceSource(nil), 0)
	assert.ErrorIs(t, err, ErrCountNotPowerOfTwo)
}

func TestBuildLeafRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for h := 1; h <= 12; h++ {
		n := leavesOfHeight(h)
		leaves := sortedRandomInts(r, n)
		tree, err := BuildFromSlice(leaves)
		assert.NoError(t, err, "h=%d", h)
		assert.Equal(t, sizeOfHeight(h), len(tree.array), "h=%d: layout length (P1)", h)

		got := make([]int, n)
		for rank := 0; rank < n; rank++ {
			got[rank] = tree.LeafAt(rank)
		}
		assert.Equal(t, leaves, got, "h=%d: leaf round trip (P2)", h)
	}
}

func TestBuildMatchesReferenceLayout(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for h := 1; h <= 10; h++ {
		n := leavesOfHeight(h)
		leaves := sortedRandomInts(r, n)
		tree, err := BuildFromSlice(leaves)
		assert.NoError(t, err)

		want := referenceLayout(leaves)
		assert.Equal(t, want, tree.array, "h=%d", h)
	}
}

// sortedRandomInts returns n strictly increasing (hence sorted) ints.
func sortedRandomInts(r *rand.Rand, n int) []int {
	leaves := make([]int, n)
	v := r.Intn(10)
	for i := range leaves {
		leaves[i] = v
		v += 1 + r.Intn(5)
	}
	return leaves
}

// referenceLayout is a second, independently written implementation of the
// vEB layout algorithm operating directly on a leaves slice instead of a
// pull-based Source, used as a cross-check oracle for Build.
func referenceLayout(leaves []int) []int {
	n := len(leaves)
	h := bits.Len(uint(n))
	arr := make([]int, 2*n-1)
	fillReferenceLayout(arr, h, leaves)
	return arr
}

func fillReferenceLayout(dst []int, h int, leaves []int) int {
	if h == 1 {
		dst[0] = leaves[0]
		return leaves[0]
	}
	hTop := h / 2
	if h%2 == 1 {
		hTop++
	}
	hBot := h - hTop
	topSize := 1<<uint(hTop) - 1
	botSize := 1<<uint(hBot) - 1
	numBottom := 1 << uint(hTop)
	leavesPerBottom := 1 << uint(hBot-1)

	minima := make([]int, 1<<uint(hTop-1))
	var overallMin int
	for i := 0; i < numBottom; i++ {
		start := topSize + i*botSize
		subLeaves := leaves[i*leavesPerBottom : (i+1)*leavesPerBottom]
		m := fillReferenceLayout(dst[start:start+botSize], hBot, subLeaves)
		if i == 0 {
			overallMin = m
		}
		if i%2 == 0 {
			minima[i/2] = m
		}
	}
	fillReferenceLayout(dst[:topSize], hTop, minima)
	return overallMin
}
