// Package search runs one term against both structures, the giant chain and
// the term's hash bucket, and keeps the session totals.
package search

import (
	"errors"
	"fmt"

	"github.com/bastiangx/namecmp/pkg/chain"
)

// ErrInconsistent means one structure holds a name the other does not. Both
// are built from the same insertions, so this only happens after a failed
// insert.
var ErrInconsistent = errors.New("search: structures disagree")

// Outcome classifies a search that both structures agree on.
type Outcome int

const (
	NotFound Outcome = iota
	Found
)

func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "not found"
}

// Result holds both lookups for one term.
type Result struct {
	Name    string
	Bucket  int
	List    chain.Lookup
	Table   chain.Lookup
	Outcome Outcome
}

// InconsistentError carries the result that failed the agreement check.
type InconsistentError struct {
	Result Result
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("search: %q found in list=%t, table=%t", e.Result.Name, e.Result.List.Found, e.Result.Table.Found)
}

func (e *InconsistentError) Unwrap() error {
	return ErrInconsistent
}

// Dual searches name in list and in bucket. The comparison counts are filled in
// even when the two disagree.
func Dual(name string, list, bucket *chain.Chain) (Result, error) {
	r := Result{
		Name:  name,
		List:  list.Search(name),
		Table: bucket.Search(name),
	}
	switch {
	case r.List.Found && r.Table.Found:
		r.Outcome = Found
	case !r.List.Found && !r.Table.Found:
		r.Outcome = NotFound
	default:
		return r, &InconsistentError{Result: r}
	}
	return r, nil
}
