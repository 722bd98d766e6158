package skiplist

import (
	"math/rand"
	"sync"
	"time"
)

// maxLevelCap bounds how many times randomLevel will flip the coin, so a
// pathological run of heads cannot grow the head's forward-pointer vector
// without bound. 32 levels comfortably covers any n a single-threaded,
// in-memory container will ever hold (2^32 elements).
const maxLevelCap = 32

var (
	defaultOnce sync.Once
	defaultRand *rand.Rand
)

// defaultSource lazily seeds a package-level generator from the wall
// clock the first time a SkipList is created without an explicit source.
func defaultSource() *rand.Rand {
	defaultOnce.Do(func() {
		defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return defaultRand
}

// randomLevel draws L by repeatedly flipping a fair coin and stopping on
// the first tails, using r as the coin. L is at least 1.
func randomLevel(r *rand.Rand) int {
	level := 1
	for level < maxLevelCap && r.Float64() < 0.5 {
		level++
	}
	return level
}
