package search

// Totals is the end-of-session report.
type Totals struct {
	Searches        int
	ListComparisons int
	HashComparisons int
}

// Session accumulates comparison counts across searches.
type Session struct {
	totals Totals
}

func NewSession() *Session {
	return &Session{}
}

// Record counts one search and adds its comparisons to the running totals.
func (s *Session) Record(listComparisons, hashComparisons int) {
	s.totals.Searches++
	s.totals.ListComparisons += listComparisons
	s.totals.HashComparisons += hashComparisons
}

// RecordResult is Record for a Result.
func (s *Session) RecordResult(r Result) {
	s.Record(r.List.Comparisons, r.Table.Comparisons)
}

// Finalize returns the totals. It does not change the session.
func (s *Session) Finalize() Totals {
	return s.totals
}
