package veb

import "math/bits"

// Build consumes exactly count keys from src -- which must yield them in
// non-decreasing order -- and lays them out in van Emde Boas order. count
// must be a positive power of two, or Build returns ErrCountNotPowerOfTwo
// without touching src. If src yields fewer keys than count, Build returns
// ErrStreamTooShort (or whatever src.Err reports, if non-nil); if it yields
// more, ErrStreamTooLong.
//
// Behavior is undefined, though not required to be detected, if src yields
// keys out of order: it corrupts the split-key invariant Search relies on.
func Build[K Integer](src Source[K], count int) (*Tree[K], error) {
	if count <= 0 || count&(count-1) != 0 {
		return nil, ErrCountNotPowerOfTwo
	}
	height := bits.TrailingZeros(uint(count)) + 1
	array := make([]K, sizeOfHeight(height))

	if _, err := buildLayout(array, height, src); err != nil {
		return nil, err
	}
	if _, ok := src.Next(); ok {
		return nil, ErrStreamTooLong
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return &Tree[K]{array: array, height: height}, nil
}

// BuildFromSlice is a convenience wrapper around Build for keys already held
// in a sorted slice.
func BuildFromSlice[K Integer](keys []K) (*Tree[K], error) {
	return Build[K](NewSliceSource(keys), len(keys))
}

// buildLayout fills dst, of length sizeOfHeight(h), with the vEB layout of
// the next leavesOfHeight(h) keys pulled from src, and returns the minimum
// key it wrote: the subtree's leftmost leaf, which by construction is always
// the first key it consumes.
//
// The recursive case cannot fill the top half's internal slots until the
// bottom subtrees' minima are known, so it builds the bottom subtrees first
// (in left-to-right order, preserving src's consumption order) and then
// recurses into the top half using those minima as its own key stream --
// every other one, since each leaf of the top half straddles a pair of
// adjacent bottom subtrees and only the left of the pair contributes the
// split key the top half needs (the right one's own root, read directly at
// search time, is what distinguishes the pair).
func buildLayout[K Integer](dst []K, h int, src Source[K]) (K, error) {
	var zero K
	if h == 1 {
		k, ok := src.Next()
		if !ok {
			if err := src.Err(); err != nil {
				return zero, err
			}
			return zero, ErrStreamTooShort
		}
		dst[0] = k
		return k, nil
	}

	hTop := splitTopHeight(h)
	hBot := h - hTop
	topSize := sizeOfHeight(hTop)
	botSize := sizeOfHeight(hBot)
	numBottom := 1 << uint(hTop)

	minima := make([]K, leavesOfHeight(hTop))
	var overallMin K
	for i := 0; i < numBottom; i++ {
		start := topSize + i*botSize
		min, err := buildLayout(dst[start:start+botSize], hBot, src)
		if err != nil {
			return zero, err
		}
		if i == 0 {
			overallMin = min
		}
		if i%2 == 0 {
			minima[i/2] = min
		}
	}
	if _, err := buildLayout(dst[:topSize], hTop, NewSliceSource(minima)); err != nil {
		return zero, err
	}
	return overallMin, nil
}
