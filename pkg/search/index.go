package search

import (
	"errors"
	"fmt"

	"github.com/bastiangx/namecmp/pkg/chain"
	"github.com/bastiangx/namecmp/pkg/hashtable"
	"github.com/bastiangx/namecmp/pkg/names"
)

// Index owns the giant chain and the hash table. Every name is copied into
// each of them separately.
type Index struct {
	arena *chain.Arena
	list  *chain.Chain
	table *hashtable.Table
}

// NewIndex returns an empty index. maxNodes caps each structure separately,
// 0 for no cap.
func NewIndex(maxNodes int) *Index {
	arena := chain.NewArena(maxNodes)
	return &Index{
		arena: arena,
		list:  arena.NewChain(),
		table: hashtable.New(maxNodes),
	}
}

// Add inserts name into both structures. A failure on one side does not undo
// the other; both failures are returned joined.
func (x *Index) Add(name string) error {
	if err := names.Validate(name); err != nil {
		return fmt.Errorf("add %q: %w", name, err)
	}
	var errs []error
	if err := x.list.Insert(name); err != nil {
		errs = append(errs, fmt.Errorf("linked list: %w", err))
	}
	if _, err := x.table.Insert(name); err != nil {
		errs = append(errs, fmt.Errorf("hash table: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("add %q: %w", name, errors.Join(errs...))
	}
	return nil
}

// Search cleans term the same way input lines are cleaned, then runs Dual
// against the giant chain and the term's bucket.
func (x *Index) Search(term string) (Result, error) {
	name := names.Clean(term)
	b := hashtable.BucketIndex(name)
	r, err := Dual(name, x.list, x.table.Bucket(b))
	r.Bucket = b
	var ie *InconsistentError
	if errors.As(err, &ie) {
		ie.Result.Bucket = b
	}
	return r, err
}

// List returns the giant chain.
func (x *Index) List() *chain.Chain {
	return x.list
}

// Table returns the hash table.
func (x *Index) Table() *hashtable.Table {
	return x.table
}

// Len returns the number of names in the giant chain.
func (x *Index) Len() int {
	return x.list.Len()
}

// Budget returns the per-structure node cap, 0 when there is none.
func (x *Index) Budget() int {
	return x.arena.Limit()
}

// Release frees both structures.
func (x *Index) Release() {
	x.list.Reset()
	x.arena.Release()
	x.table.Release()
}
