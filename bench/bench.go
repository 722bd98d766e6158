// Package bench is a comparative throughput harness: it runs rbtree.Map
// and hashtable.Map against real third-party counterparts (google/btree,
// tidwall/btree, hashicorp/golang-lru/v2) on the same workload, on the
// same goroutine, since these containers carry no concurrency
// guarantees of their own.
package bench

import (
	"math/rand"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"

	"github.com/skipor/gostl"
	"github.com/skipor/gostl/hashtable"
	"github.com/skipor/gostl/log"
	"github.com/skipor/gostl/rbtree"
)

// Result is one container's measured throughput over a single workload.
type Result struct {
	Name    string
	Insert  time.Duration
	Find    time.Duration
	Erase   time.Duration
	Entries int
}

// googleBTreeDegree is the branching factor ReplaceOrInsert/Get/Delete
// use; 32 is google/btree's own recommended default for integer keys.
const googleBTreeDegree = 32

func shuffledKeys(n int, r *rand.Rand) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	r.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

func timeOps(n int, op func(i int)) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		op(i)
	}
	return time.Since(start)
}

// RunRBTreeVsBTree drives n inserts/finds/erases of distinct int keys
// through rbtree.Map, github.com/google/btree and github.com/tidwall/btree
// in turn, on one goroutine, and reports each one's throughput.
func RunRBTreeVsBTree(n int, logger log.Logger) []Result {
	r := rand.New(rand.NewSource(1))
	keys := shuffledKeys(n, r)
	var results []Result

	logger.Infof("bench: rbtree.Map, n=%d", n)
	results = append(results, benchRBTree(keys, logger))

	logger.Infof("bench: google/btree, n=%d", n)
	results = append(results, benchGoogleBTree(keys))

	logger.Infof("bench: tidwall/btree, n=%d", n)
	results = append(results, benchTidwallBTree(keys))

	return results
}

func benchRBTree(keys []int, logger log.Logger) Result {
	m := rbtree.New[int, int](gostl.Less[int]())
	var res Result
	res.Name = "rbtree.Map"
	res.Entries = len(keys)
	res.Insert = timeOps(len(keys), func(i int) { _, _ = m.Insert(keys[i], keys[i]) })
	res.Find = timeOps(len(keys), func(i int) { _, _ = m.Get(keys[i]) })
	res.Erase = timeOps(len(keys), func(i int) { _, _ = m.Erase(keys[i]) })
	// A post-erase Get is expected to fail with NoSuchElement; logged
	// through LogErr rather than discarded, to exercise the Kind-aware
	// routing a real caller would want.
	if len(keys) > 0 {
		if _, err := m.Get(keys[0]); err != nil {
			log.LogErr(logger, err)
		}
	}
	return res
}

func benchGoogleBTree(keys []int) Result {
	less := func(a, b int) bool { return a < b }
	t := gbtree.NewG(googleBTreeDegree, less)
	var res Result
	res.Name = "google/btree"
	res.Entries = len(keys)
	res.Insert = timeOps(len(keys), func(i int) { t.ReplaceOrInsert(keys[i]) })
	res.Find = timeOps(len(keys), func(i int) { t.Get(keys[i]) })
	res.Erase = timeOps(len(keys), func(i int) { t.Delete(keys[i]) })
	return res
}

func benchTidwallBTree(keys []int) Result {
	less := func(a, b int) bool { return a < b }
	t := tbtree.NewBTreeG(less)
	var res Result
	res.Name = "tidwall/btree"
	res.Entries = len(keys)
	res.Insert = timeOps(len(keys), func(i int) { t.Set(keys[i]) })
	res.Find = timeOps(len(keys), func(i int) { t.Get(keys[i]) })
	res.Erase = timeOps(len(keys), func(i int) { t.Delete(keys[i]) })
	return res
}

// RunHashTableVsLRU drives n inserts/finds/erases of distinct int keys
// through hashtable.Map and a capacity-n github.com/hashicorp/golang-lru/v2
// cache in turn, on one goroutine, and reports each one's throughput.
func RunHashTableVsLRU(n int, logger log.Logger) []Result {
	r := rand.New(rand.NewSource(2))
	keys := shuffledKeys(n, r)
	var results []Result

	logger.Infof("bench: hashtable.Map, n=%d", n)
	results = append(results, benchHashTable(keys, logger))

	logger.Infof("bench: hashicorp/golang-lru, n=%d", n)
	results = append(results, benchHashicorpLRU(keys))

	return results
}

func benchHashTable(keys []int, logger log.Logger) Result {
	m := hashtable.New[int, int](gostl.FNV1a[int])
	var res Result
	res.Name = "hashtable.Map"
	res.Entries = len(keys)
	res.Insert = timeOps(len(keys), func(i int) { _, _ = m.Insert(keys[i], keys[i]) })
	res.Find = timeOps(len(keys), func(i int) { _, _ = m.Get(keys[i]) })
	res.Erase = timeOps(len(keys), func(i int) { _, _ = m.Erase(keys[i]) })
	if len(keys) > 0 {
		if _, err := m.Get(keys[0]); err != nil {
			log.LogErr(logger, err)
		}
	}
	return res
}

func benchHashicorpLRU(keys []int) Result {
	c, err := lru.New[int, int](len(keys))
	if err != nil {
		panic(err)
	}
	var res Result
	res.Name = "hashicorp/golang-lru"
	res.Entries = len(keys)
	res.Insert = timeOps(len(keys), func(i int) { c.Add(keys[i], keys[i]) })
	res.Find = timeOps(len(keys), func(i int) { c.Get(keys[i]) })
	res.Erase = timeOps(len(keys), func(i int) { c.Remove(keys[i]) })
	return res
}

// Run drives both comparative workloads in sequence, returning every
// Result in the order the containers ran.
func Run(n int, logger log.Logger) []Result {
	var all []Result
	all = append(all, RunRBTreeVsBTree(n, logger)...)
	all = append(all, RunHashTableVsLRU(n, logger)...)
	return all
}
