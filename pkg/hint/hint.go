// Package hint indexes loaded names in a patricia trie so a missed search can
// point at the names that share the longest prefix with the term.
package hint

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index maps each distinct name to the number of times it was loaded.
type Index struct {
	trie  *patricia.Trie
	names int
}

func New() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Add records one occurrence of name.
func (h *Index) Add(name string) {
	key := patricia.Prefix(name)
	if !h.trie.Insert(key, 1) {
		count, _ := h.trie.Get(key).(int)
		h.trie.Set(key, count+1)
		return
	}
	h.names++
}

// Distinct returns the number of distinct names.
func (h *Index) Distinct() int {
	return h.names
}

// Count returns how many times name was added.
func (h *Index) Count(name string) int {
	count, _ := h.trie.Get(patricia.Prefix(name)).(int)
	return count
}

// Suggest returns up to limit names sharing the longest possible prefix with
// term, in byte order. It returns nil when not even the first byte matches.
func (h *Index) Suggest(term string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	for n := len(term); n > 0; n-- {
		var found []string
		err := h.trie.VisitSubtree(patricia.Prefix(term[:n]), func(p patricia.Prefix, _ patricia.Item) error {
			found = append(found, string(p))
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting hint subtree: %v", err)
			return nil
		}
		if len(found) == 0 {
			continue
		}
		sort.Strings(found)
		if len(found) > limit {
			found = found[:limit]
		}
		return found
	}
	return nil
}
