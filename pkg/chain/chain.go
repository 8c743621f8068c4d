/*
Package chain implements sorted singly-linked chains of names.

Nodes live in an Arena and link to each other by index, so a chain is only a
head index plus a pointer to its arena. Several chains may share one arena
(the hash table keeps all of its buckets in a single arena), and releasing the
arena drops every node at once.

A chain is kept in non-decreasing byte order. A new name is linked in front of
the first node that is greater than or equal to it, so a duplicate lands in
front of the copies inserted before it.

Search counts key comparisons the way the benchmark reports them: one for
every node passed over because it sorts before the term, plus one when the
stopping node matches.
*/
package chain

import (
	"errors"
	"strings"
)

const nilRef = -1

// ErrArenaExhausted is returned by Insert when the arena has reached its node
// budget. The chain is left unchanged.
var ErrArenaExhausted = errors.New("chain: arena exhausted")

type node struct {
	name string
	next int
}

// Arena is the backing store for one or more chains.
type Arena struct {
	nodes []node
	limit int
}

// NewArena returns an arena that holds at most limit nodes. A limit of 0 or
// less means no limit.
func NewArena(limit int) *Arena {
	return &Arena{limit: limit}
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Limit returns the node budget, 0 when unlimited.
func (a *Arena) Limit() int {
	if a.limit < 0 {
		return 0
	}
	return a.limit
}

// NewChain returns an empty chain backed by a.
func (a *Arena) NewChain() *Chain {
	return &Chain{arena: a, head: nilRef}
}

// Release drops every node. Chains built on a must be Reset before reuse.
func (a *Arena) Release() {
	a.nodes = nil
}

func (a *Arena) alloc(name string) (int, error) {
	if a.limit > 0 && len(a.nodes) >= a.limit {
		return nilRef, ErrArenaExhausted
	}
	a.nodes = append(a.nodes, node{name: strings.Clone(name), next: nilRef})
	return len(a.nodes) - 1, nil
}

// Chain is a sorted singly-linked sequence of names.
type Chain struct {
	arena  *Arena
	head   int
	length int
}

// Lookup is the outcome of a Search.
type Lookup struct {
	Found bool
	// Index is the 0-based position of the matching node, -1 on a miss.
	Index       int
	Comparisons int
}

// Insert links a copy of name into the chain, keeping it sorted.
func (c *Chain) Insert(name string) error {
	ref, err := c.arena.alloc(name)
	if err != nil {
		return err
	}
	nodes := c.arena.nodes

	switch {
	case c.head == nilRef:
		c.head = ref
	case nodes[c.head].name >= name:
		nodes[ref].next = c.head
		c.head = ref
	default:
		prev := c.head
		cur := nodes[prev].next
		for cur != nilRef && nodes[cur].name < name {
			prev = cur
			cur = nodes[cur].next
		}
		nodes[ref].next = cur
		nodes[prev].next = ref
	}
	c.length++
	return nil
}

// Search walks the chain from the head and stops at the first node that is not
// less than name. It never scans past the position name would sort into.
func (c *Chain) Search(name string) Lookup {
	l := Lookup{Index: -1}
	nodes := c.arena.nodes
	ref, pos := c.head, 0
	for ref != nilRef && nodes[ref].name < name {
		l.Comparisons++
		ref = nodes[ref].next
		pos++
	}
	if ref != nilRef && nodes[ref].name == name {
		l.Comparisons++
		l.Found = true
		l.Index = pos
	}
	return l
}

// Len returns the number of names in the chain.
func (c *Chain) Len() int {
	return c.length
}

// Empty reports whether the chain holds no names.
func (c *Chain) Empty() bool {
	return c.head == nilRef
}

// Walk calls fn for each name in order until fn returns false.
func (c *Chain) Walk(fn func(i int, name string) bool) {
	nodes := c.arena.nodes
	for ref, i := c.head, 0; ref != nilRef; ref, i = nodes[ref].next, i+1 {
		if !fn(i, nodes[ref].name) {
			return
		}
	}
}

// Names returns the chain contents in order.
func (c *Chain) Names() []string {
	out := make([]string, 0, c.length)
	c.Walk(func(_ int, name string) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Sorted reports whether the chain is in non-decreasing order end to end.
func (c *Chain) Sorted() bool {
	sorted := true
	prev := ""
	c.Walk(func(i int, name string) bool {
		if i > 0 && name < prev {
			sorted = false
			return false
		}
		prev = name
		return true
	})
	return sorted
}

// Reset detaches the chain from its nodes, leaving it empty.
func (c *Chain) Reset() {
	c.head = nilRef
	c.length = 0
}
