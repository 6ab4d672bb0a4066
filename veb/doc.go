// Package veb implements a static, immutable cache-oblivious search tree
// over a sorted sequence of fixed-width integer keys, laid out in van Emde
// Boas (vEB) order.
//
// A tree of height h holds n = 2^(h-1) leaves and 2n-1 entries total, packed
// into one flat array. The layout recursively splits the conceptual complete
// binary tree at height ceil(h/2):
//
//	                top (height ceil(h/2))
//	        .-----------'-----------.
//	     bottom_0   bottom_1   ...   bottom_{2^htop - 1}
//	    (height h - ceil(h/2), each)
//
// stored left to right as: [ top | bottom_0 | bottom_1 | ... ]. Applied
// recursively, a root-to-leaf path touches O(log_B n) memory blocks for
// every block size B simultaneously, without B ever appearing in the code.
//
// Build constructs the layout once from a sorted key stream; Search answers
// "lower bound of x" queries against it in O(h) comparisons. The tree is
// read-only after construction: any number of goroutines may call Search
// concurrently.
package veb
