// Package hashtable implements the fixed-size bucket table: a djb2 digest
// picks one of TableSize buckets, and each bucket is a sorted chain.
package hashtable

// TableSize is the number of buckets. The table is never resized.
const TableSize = 127

const djb2Seed uint64 = 5381

// Hash returns the djb2 digest of name. Bytes are taken as unsigned and the
// arithmetic wraps at 64 bits.
func Hash(name string) uint64 {
	h := djb2Seed
	for i := 0; i < len(name); i++ {
		h = (h << 5) + h + uint64(name[i])
	}
	return h
}

// BucketIndex maps name to a bucket in [0, TableSize).
func BucketIndex(name string) int {
	return int(Hash(name) % TableSize)
}
