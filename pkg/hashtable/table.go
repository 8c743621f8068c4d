package hashtable

import (
	"fmt"

	"github.com/bastiangx/namecmp/pkg/chain"
)

// Table is a fixed array of sorted chains. All buckets share one arena owned
// by the table.
type Table struct {
	arena   *chain.Arena
	buckets [TableSize]*chain.Chain
}

// Stats describes how names are spread over the buckets.
type Stats struct {
	Names       int
	UsedBuckets int
	Longest     int
	// LongestBucket is -1 for an empty table.
	LongestBucket int
}

// New returns a table with every bucket empty. maxNodes caps the total number
// of names the table can hold, 0 for no cap.
func New(maxNodes int) *Table {
	t := &Table{arena: chain.NewArena(maxNodes)}
	for i := range t.buckets {
		t.buckets[i] = t.arena.NewChain()
	}
	return t
}

// Insert adds name to its bucket and returns the bucket index.
func (t *Table) Insert(name string) (int, error) {
	b := BucketIndex(name)
	if err := t.buckets[b].Insert(name); err != nil {
		return b, fmt.Errorf("bucket %d: %w", b, err)
	}
	return b, nil
}

// Lookup searches the bucket name hashes to, and only that bucket.
func (t *Table) Lookup(name string) (int, chain.Lookup) {
	b := BucketIndex(name)
	return b, t.buckets[b].Search(name)
}

// Bucket returns the chain for bucket i. It panics if i is out of range.
func (t *Table) Bucket(i int) *chain.Chain {
	return t.buckets[i]
}

// Len returns the number of names stored across all buckets.
func (t *Table) Len() int {
	return t.arena.Len()
}

func (t *Table) Stats() Stats {
	s := Stats{LongestBucket: -1}
	for i, b := range t.buckets {
		n := b.Len()
		if n == 0 {
			continue
		}
		s.Names += n
		s.UsedBuckets++
		if n > s.Longest {
			s.Longest = n
			s.LongestBucket = i
		}
	}
	return s
}

// Release frees every bucket. The table is empty and usable afterwards.
func (t *Table) Release() {
	for _, b := range t.buckets {
		b.Reset()
	}
	t.arena.Release()
}
