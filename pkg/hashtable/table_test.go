package hashtable

import (
	"testing"

	"github.com/bastiangx/namecmp/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{"bob", "amy", "zoe", "amy", "Christopher Columbus", "eve", "mallory", "trent"}

func loaded(t *testing.T) *Table {
	t.Helper()
	tbl := New(0)
	for _, name := range sample {
		b, err := tbl.Insert(name)
		require.NoError(t, err)
		require.Equal(t, BucketIndex(name), b)
	}
	return tbl
}

func TestNewTableIsEmpty(t *testing.T) {
	tbl := New(0)
	for i := 0; i < TableSize; i++ {
		assert.True(t, tbl.Bucket(i).Empty())
	}
	b, l := tbl.Lookup("amy")
	assert.Equal(t, 70, b)
	assert.False(t, l.Found)
	assert.Zero(t, l.Comparisons)
}

func TestTableRouting(t *testing.T) {
	tbl := loaded(t)

	for _, name := range sample {
		home, l := tbl.Lookup(name)
		require.True(t, l.Found, name)
		for i := 0; i < TableSize; i++ {
			if i == home {
				continue
			}
			assert.False(t, tbl.Bucket(i).Search(name).Found, "%s found outside bucket %d", name, home)
		}
	}
}

func TestTableBucketsSorted(t *testing.T) {
	tbl := loaded(t)
	for i := 0; i < TableSize; i++ {
		assert.True(t, tbl.Bucket(i).Sorted())
	}
	assert.Equal(t, []string{"amy", "amy"}, tbl.Bucket(BucketIndex("amy")).Names())
}

func TestTableStats(t *testing.T) {
	s := loaded(t).Stats()
	assert.Equal(t, len(sample), s.Names)
	assert.Equal(t, 2, s.Longest)
	assert.Equal(t, BucketIndex("amy"), s.LongestBucket)
	assert.Equal(t, len(sample)-1, s.UsedBuckets)

	empty := New(0).Stats()
	assert.Equal(t, -1, empty.LongestBucket)
	assert.Zero(t, empty.UsedBuckets)
}

func TestTableNodeBudget(t *testing.T) {
	tbl := New(1)
	_, err := tbl.Insert("amy")
	require.NoError(t, err)

	b, err := tbl.Insert("bob")
	assert.ErrorIs(t, err, chain.ErrArenaExhausted)
	assert.Equal(t, BucketIndex("bob"), b)
	assert.True(t, tbl.Bucket(b).Empty())
	assert.Equal(t, 1, tbl.Len())
}

func TestTableRelease(t *testing.T) {
	tbl := loaded(t)
	tbl.Release()
	assert.Zero(t, tbl.Len())
	assert.Zero(t, tbl.Stats().Names)
	_, l := tbl.Lookup("amy")
	assert.False(t, l.Found)
}
