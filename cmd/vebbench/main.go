// Command vebbench is the demonstration driver for the vebtree module: it
// builds a static cache-oblivious search tree over a generated key sequence,
// fires random lower-bound queries at it, and maps every array entry each
// query reads to a memory block of a chosen size, printing a histogram of
// how many block accesses passed between successive touches of the same
// block -- a view of the locality the vEB layout exists to provide. Passing
// -compare also grows the baseline
// dynamic B-tree over the same keys and reports its own access histogram,
// echoing the original benchmark's comparison against a std::collections
// ordered map.
//
// This is a thin demonstration tool, not a statistical benchmarking
// framework: for that, use `go test -bench` against the veb and baseline
// packages directly.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"vebtree/baseline"
	"vebtree/utils"
	"vebtree/veb"

	"github.com/fatih/color"
)

func main() {
	flagN := flag.Int("n", 1<<16, "number of leaves; rounded up to the next power of two")
	flagGap := flag.Int("gap", 1, "stride between consecutive keys (1 = dense, >1 = gapped)")
	flagQueries := flag.Int("queries", 100_000, "number of random lower-bound queries to issue")
	flagBlock := flag.Int("block", 8, "block size, in array entries, used for the access histogram")
	flagCompare := flag.Bool("compare", false, "also build the baseline B-tree and report its access histogram")
	flagOrder := flag.Int("order", 4, "order of the baseline B-tree, used only with -compare")
	flag.Parse()

	n := nextPowerOfTwo(*flagN)
	keys := utils.GetGappedSequence(n, *flagGap)

	tree, err := veb.BuildFromSlice(keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build vebtree:", err)
		os.Exit(1)
	}

	color.New(color.FgCyan, color.Bold).Fprintf(os.Stderr, "# vebtree: n=%d height=%d gap=%d queries=%d block=%d\n",
		n, tree.Height(), *flagGap, *flagQueries, *flagBlock)

	queries := randomQueriesWithin(keys[0], keys[len(keys)-1], *flagQueries)
	hist := newBlockAccessCounter()
	for _, q := range queries {
		_, _, visited := tree.SearchTrace(q)
		for _, idx := range visited {
			hist.count(idx / *flagBlock)
		}
	}
	hist.writeHistogram(os.Stdout)

	if !*flagCompare {
		return
	}

	color.New(color.FgYellow, color.Bold).Fprintf(os.Stderr, "# baseline: n=%d order=%d\n", n, *flagOrder)
	insertionOrder := slices.Clone(keys)
	utils.Shuffle(insertionOrder)

	nodeHist := newNodeAccessCounter()
	b := baseline.NewWithAccessCounter[int, int](*flagOrder, nodeHist.count)
	for _, k := range insertionOrder {
		b.Insert(k, k)
	}
	nodeHist.writeHistogram(os.Stdout)
}

// nextPowerOfTwo rounds n up to the nearest power of two, with a floor of 1,
// so a casually chosen -n still produces a buildable tree.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func randomQueriesWithin(min, max, count int) []int {
	span := max - min + 1
	if span <= 0 {
		span = 1
	}
	out := make([]int, count)
	for i := range out {
		out[i] = min + pseudoRandom(i)%span
	}
	return out
}

// pseudoRandom is a tiny splitmix-style generator so the driver has no
// dependency on a seeded math/rand.Rand living across the query loop; it
// only needs to scatter query values across the key range.
func pseudoRandom(i int) int {
	x := uint64(i) + 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	x &= 1<<62 - 1
	return int(x)
}

// blockAccessCounter tallies, on each block access, how many block accesses
// have passed since the same block (index/blockSize) was last touched.
type blockAccessCounter struct {
	ts         int
	lastAccess map[int]int
	hist       map[int]int
}

func newBlockAccessCounter() *blockAccessCounter {
	return &blockAccessCounter{lastAccess: make(map[int]int), hist: make(map[int]int)}
}

func (c *blockAccessCounter) count(block int) {
	c.ts++
	if prevTs, ok := c.lastAccess[block]; ok {
		dt := c.ts - prevTs
		c.hist[dt]++
	}
	c.lastAccess[block] = c.ts
}

func (c *blockAccessCounter) writeHistogram(w io.Writer) {
	writeTsHistogram(w, c.hist)
}

// nodeAccessCounter is the baseline B-tree's node-identity access counter:
// it tallies, on each node access, how many node accesses have passed since
// the same node pointer was last touched.
type nodeAccessCounter struct {
	ts         int
	lastAccess map[any]int
	hist       map[int]int
}

func newNodeAccessCounter() *nodeAccessCounter {
	return &nodeAccessCounter{lastAccess: make(map[any]int), hist: make(map[int]int)}
}

func (c *nodeAccessCounter) count(n any) {
	c.ts++
	if prevTs, ok := c.lastAccess[n]; ok {
		dt := c.ts - prevTs
		c.hist[dt]++
	}
	c.lastAccess[n] = c.ts
}

func (c *nodeAccessCounter) writeHistogram(w io.Writer) {
	writeTsHistogram(w, c.hist)
}

func writeTsHistogram(w io.Writer, hist map[int]int) {
	timestamps := make([]int, 0, len(hist))
	for ts := range hist {
		timestamps = append(timestamps, ts)
	}
	slices.Sort(timestamps)
	fmt.Fprintf(w, "ts\tcount\n")
	for _, ts := range timestamps {
		fmt.Fprintf(w, "%d\t%d\n", ts, hist[ts])
	}
}
