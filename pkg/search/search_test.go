package search

import (
	"fmt"
	"testing"

	"github.com/bastiangx/namecmp/pkg/chain"
	"github.com/bastiangx/namecmp/pkg/hashtable"
	"github.com/bastiangx/namecmp/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T, input ...string) *Index {
	t.Helper()
	x := NewIndex(0)
	for _, name := range input {
		require.NoError(t, x.Add(name))
	}
	return x
}

func TestScenarios(t *testing.T) {
	testCases := []struct {
		input       []string
		term        string
		outcome     Outcome
		list        int
		table       int
		description string
	}{
		{[]string{"bob", "amy", "zoe"}, "amy", Found, 1, 1, "Head of giant chain"},
		{[]string{"amy", "amy"}, "amy", Found, 1, 1, "Duplicate name"},
		{[]string{"amy", "bob"}, "zzz", NotFound, 2, 0, "Never inserted"},
		{[]string{"bob", "amy", "zoe"}, "zoe", Found, 3, 1, "Tail of giant chain"},
		{[]string{"bob", "amy", "zoe"}, "zoe\n", Found, 3, 1, "Term is normalized"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			x := newIndex(t, tc.input...)
			r, err := x.Search(tc.term)
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, r.Outcome)
			assert.Equal(t, tc.list, r.List.Comparisons)
			assert.Equal(t, tc.table, r.Table.Comparisons)
			assert.Equal(t, names.Clean(tc.term), r.Name)
			assert.Equal(t, hashtable.BucketIndex(r.Name), r.Bucket)
		})
	}
}

func TestGiantChainOrder(t *testing.T) {
	x := newIndex(t, "bob", "amy", "zoe")
	assert.Equal(t, []string{"amy", "bob", "zoe"}, x.List().Names())
	assert.Equal(t, 3, x.Len())
	assert.Equal(t, 3, x.Table().Len())
}

func TestCrossStructureAgreement(t *testing.T) {
	var input []string
	for i := 0; i < 500; i++ {
		input = append(input, fmt.Sprintf("name%03d", i%350))
	}
	x := newIndex(t, input...)

	for _, name := range input {
		r, err := x.Search(name)
		require.NoError(t, err)
		assert.Equal(t, Found, r.Outcome, name)
		assert.LessOrEqual(t, r.Table.Comparisons, r.List.Comparisons)
	}
	for _, miss := range []string{"", "name", "name999", "zzz", "a"} {
		r, err := x.Search(miss)
		require.NoError(t, err)
		assert.Equal(t, NotFound, r.Outcome, miss)
	}
	assert.True(t, x.List().Sorted())
}

func TestDualInconsistent(t *testing.T) {
	a := chain.NewArena(0)
	list, bucket := a.NewChain(), a.NewChain()
	require.NoError(t, list.Insert("amy"))

	r, err := Dual("amy", list, bucket)
	require.ErrorIs(t, err, ErrInconsistent)

	var ie *InconsistentError
	require.ErrorAs(t, err, &ie)
	assert.True(t, ie.Result.List.Found)
	assert.False(t, ie.Result.Table.Found)
	assert.Equal(t, 1, r.List.Comparisons)
	assert.Equal(t, 0, r.Table.Comparisons)
}

func TestAddRejectsInvalid(t *testing.T) {
	x := NewIndex(0)
	assert.ErrorIs(t, x.Add(""), names.ErrEmpty)
	assert.ErrorIs(t, x.Add("this name is far too long"), names.ErrTooLong)
	assert.Zero(t, x.Len())
}

func TestAddNodeBudget(t *testing.T) {
	x := NewIndex(2)
	assert.Equal(t, 2, x.Budget())
	assert.Zero(t, NewIndex(0).Budget())
	assert.Zero(t, NewIndex(-3).Budget())
	require.NoError(t, x.Add("amy"))
	require.NoError(t, x.Add("bob"))

	err := x.Add("cat")
	require.ErrorIs(t, err, chain.ErrArenaExhausted)
	assert.Contains(t, err.Error(), "linked list")
	assert.Contains(t, err.Error(), "hash table")

	r, err := x.Search("cat")
	require.NoError(t, err)
	assert.Equal(t, NotFound, r.Outcome)
}

func TestIndexRelease(t *testing.T) {
	x := newIndex(t, "amy", "bob")
	x.Release()
	assert.Zero(t, x.Len())
	r, err := x.Search("amy")
	require.NoError(t, err)
	assert.Equal(t, NotFound, r.Outcome)
}

func TestSessionTotals(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Totals{}, s.Finalize())

	for _, ll := range []int{2, 1, 3} {
		s.Record(ll, 1)
	}

	want := Totals{Searches: 3, ListComparisons: 6, HashComparisons: 3}
	assert.Equal(t, want, s.Finalize())
	assert.Equal(t, want, s.Finalize(), "finalize does not mutate")
}

func TestSessionRecordResult(t *testing.T) {
	x := newIndex(t, "bob", "amy", "zoe")
	s := NewSession()
	for _, term := range []string{"amy", "zoe", "nobody"} {
		r, err := x.Search(term)
		require.NoError(t, err)
		s.RecordResult(r)
	}
	got := s.Finalize()
	assert.Equal(t, 3, got.Searches)
	assert.Equal(t, 1+3+2, got.ListComparisons)
}
