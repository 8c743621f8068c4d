/*
Package server implements msgpack IPC for the name search benchmark.

The server reads requests from stdin and writes responses to stdout. Frames
are MessagePack values back to back, or one JSON object per line when the
json codec is selected. Every request carries an ID that is echoed in the
response.

	{"id": "1", "a": "search", "n": "amy"}

A search answers with both comparison counts:

	{"id": "1", "n": "amy", "f": true, "ll": 1, "ht": 1, "b": 70}

Actions:

	search   search one name, counted in the session totals
	totals   session totals so far
	stats    hash table bucket usage
	health   liveness check
	end      reply with the totals and stop

A search whose name starts with '.' ends the session like the console does.
EOF, or an end request, closes the session.
*/
package server

// Request is a single client request.
type Request struct {
	ID     string `msgpack:"id" json:"id"`
	Action string `msgpack:"a" json:"a"`
	Name   string `msgpack:"n,omitempty" json:"n,omitempty"`
}

// SearchResponse reports one search against both structures.
type SearchResponse struct {
	ID              string `msgpack:"id" json:"id"`
	Name            string `msgpack:"n" json:"n"`
	Found           bool   `msgpack:"f" json:"f"`
	ListComparisons int    `msgpack:"ll" json:"ll"`
	HashComparisons int    `msgpack:"ht" json:"ht"`
	Bucket          int    `msgpack:"b" json:"b"`
}

// TotalsResponse carries the session totals.
type TotalsResponse struct {
	ID              string `msgpack:"id" json:"id"`
	Searches        int    `msgpack:"s" json:"s"`
	ListComparisons int    `msgpack:"ll" json:"ll"`
	HashComparisons int    `msgpack:"ht" json:"ht"`
}

// StatsResponse describes the hash table.
type StatsResponse struct {
	ID            string `msgpack:"id" json:"id"`
	Names         int    `msgpack:"names" json:"names"`
	TableSize     int    `msgpack:"size" json:"size"`
	UsedBuckets   int    `msgpack:"used" json:"used"`
	Longest       int    `msgpack:"longest" json:"longest"`
	LongestBucket int    `msgpack:"longest_bucket" json:"longest_bucket"`
}

// StatusResponse answers health checks and signals readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty" json:"id,omitempty"`
	Status string `msgpack:"status" json:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id" json:"id"`
	Error string `msgpack:"e" json:"e"`
	Code  int    `msgpack:"c" json:"c"`
}
