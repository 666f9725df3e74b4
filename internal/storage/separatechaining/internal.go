package separatechaining

import (
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/hash"
	"github.com/gostonefire/hashmap/internal/linkedlist"
)

// newTable - Returns a table of capacity empty lists
func newTable[V any](capacity int) *dynarray.Array[*linkedlist.List[V]] {
	table := dynarray.New[*linkedlist.List[V]]()
	for i := 0; i < capacity; i++ {
		table.Append(linkedlist.New[V]())
	}

	return table
}

// getBucketNo - Returns which bucket number that the given key results in
func (S *SCMap[V]) getBucketNo(key string) int {
	return hash.BucketIndex(S.hashFunc(key), S.capacity)
}

// getBucket - Returns the list of the bucket that the given key results in
func (S *SCMap[V]) getBucket(key string) *linkedlist.List[V] {
	return S.getBucketList(S.getBucketNo(key))
}

// getBucketList - Returns the list of a given bucket.
// Bucket numbers are always reduced modulo the capacity, so an error here means the table is corrupt.
func (S *SCMap[V]) getBucketList(bucketNo int) *linkedlist.List[V] {
	list, err := S.table.Get(bucketNo)
	if err != nil {
		panic(err)
	}

	return list
}
