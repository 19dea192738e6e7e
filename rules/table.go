package rules

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// DefaultCacheSize holds every one of the 512 possible neighborhoods twice over
const DefaultCacheSize = 1024

// TransitionTable looks up the next state of a neighborhood's center cell
type TransitionTable interface {
	Lookup(n Neighborhood) Cell
}

// Direct evaluates Transition on every lookup without caching
type Direct struct{}

// Lookup implements TransitionTable
func (Direct) Lookup(n Neighborhood) Cell {
	return Transition(n)
}

// CacheInfo is a snapshot of a MemoTable's counters
type CacheInfo struct {
	Hits     uint64
	Misses   uint64
	MaxSize  int
	CurrSize int
}

func (i CacheInfo) String() string {
	return fmt.Sprintf("CacheInfo(hits=%d, misses=%d, maxsize=%d, currsize=%d)",
		i.Hits, i.Misses, i.MaxSize, i.CurrSize)
}

// MemoTable memoizes Transition in a bounded LRU cache keyed by Neighborhood.Key.
// It is safe for concurrent use, so several engines may share one.
type MemoTable struct {
	cache  *lru.Cache[uint16, Cell]
	size   int
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemoTable creates a MemoTable holding at most size entries
func NewMemoTable(size int) (*MemoTable, error) {
	cache, err := lru.New[uint16, Cell](size)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewMemoTable] failed to create cache of size %d", size)
	}
	return &MemoTable{cache: cache, size: size}, nil
}

// Lookup implements TransitionTable
func (t *MemoTable) Lookup(n Neighborhood) Cell {
	key := n.Key()
	if c, ok := t.cache.Get(key); ok {
		t.hits.Add(1)
		return c
	}
	t.misses.Add(1)
	c := Transition(n)
	t.cache.Add(key, c)
	return c
}

// Info returns the current hit/miss counters and cache occupancy
func (t *MemoTable) Info() CacheInfo {
	return CacheInfo{
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		MaxSize:  t.size,
		CurrSize: t.cache.Len(),
	}
}

// Clear empties the cache and resets the counters
func (t *MemoTable) Clear() {
	t.cache.Purge()
	t.hits.Store(0)
	t.misses.Store(0)
}
