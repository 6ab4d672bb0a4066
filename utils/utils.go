// Package utils provides the deterministic key-sequence generators shared
// by cmd/vebbench and the benchmark test suites: dense ranges, gapped
// ranges, and random arrays, plus an in-place Fisher-Yates shuffle for
// building the baseline B-tree in worst-case insertion order.
package utils

import "math/rand"

var seed *rand.Rand

func init() {
	seed = rand.New(rand.NewSource(0))
}

// GetSequenceRange returns the dense, already-sorted sequence 0..n-1 -- the
// shape a veb.BuildFromSlice caller needs directly.
func GetSequenceRange(n int) []int {
	s := make([]int, n)
	for i := range n {
		s[i] = i
	}
	return s
}

// GetGappedSequence returns a sorted sequence of n keys spaced stride apart,
// 0, stride, 2*stride, ..., the same shape the original benchmark's
// (min..max).step_by(stride) generator produces.
func GetGappedSequence(n, stride int) []int {
	s := make([]int, n)
	for i := range n {
		s[i] = i * stride
	}
	return s
}

// GetRandomArray returns n values drawn from the package's deterministic
// source, in no particular order; callers that need a sorted stream should
// sort the result themselves.
func GetRandomArray(n int) []int {
	s := make([]int, n)
	for i := range n {
		s[i] = seed.Int()
	}
	return s
}

// Shuffle permutes s in place using the package's deterministic source.
func Shuffle[T any](s []T) {
	seed.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
