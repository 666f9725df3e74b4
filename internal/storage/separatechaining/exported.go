package separatechaining

import (
	"fmt"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/conf"
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/linkedlist"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage"
	"github.com/gostonefire/hashmap/internal/utils"
	"go.uber.org/zap"
)

// SCMap - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket holds a singly linked list with all records whose key hashes to that bucket, so a collision just
// adds one more node to the list and a delete unlinks the node.
// The table is doubled before an insert that would bring the load factor to 1.0 or above.
type SCMap[V any] struct {
	table    *dynarray.Array[*linkedlist.List[V]]
	size     int
	capacity int
	hashFunc hashfunc.HashFunc
	logger   *zap.Logger
}

// NewSCMap - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing the requested capacity and hash function
//
// It returns:
//   - scMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCMap[V any](crtConf model.CRTConf) (scMap *SCMap[V], err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashFunc was given then use the default internal
	if crtConf.HashFunc == nil {
		crtConf.HashFunc = hashfunc.CRC32
	}

	capacity := utils.NextPrime(crtConf.Capacity)

	scMap = &SCMap[V]{
		table:    newTable[V](capacity),
		size:     0,
		capacity: capacity,
		hashFunc: crtConf.HashFunc,
		logger:   storage.Logger(crtConf.Logger),
	}

	return
}

// Size - Returns the number of records
func (S *SCMap[V]) Size() int {
	return S.size
}

// Capacity - Returns the number of buckets
func (S *SCMap[V]) Capacity() int {
	return S.capacity
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// Adding a record that would bring the load factor to 1.0 or above first doubles the table.
//   - key is the identifier of a record
//   - value is the value to store along with the key
func (S *SCMap[V]) Put(key string, value V) {
	if node := S.getBucket(key).Contains(key); node != nil {
		node.Value = value
		return
	}

	if storage.ExceedsLoad(S.size, S.capacity, conf.SeparateChainingLoadLimit) {
		S.ResizeTable(S.capacity * conf.GrowthFactor)
	}

	S.getBucket(key).Insert(key, value)
	S.size++
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value
//   - ok is true if the key was found
func (S *SCMap[V]) Get(key string) (value V, ok bool) {
	node := S.getBucket(key).Contains(key)
	if node == nil {
		return
	}

	return node.Value, true
}

// ContainsKey - Returns true if the key is in the map. An empty map contains no keys.
func (S *SCMap[V]) ContainsKey(key string) bool {
	if S.size == 0 {
		return false
	}

	return S.getBucket(key).Contains(key) != nil
}

// Remove - Unlinks the record that corresponds to key. Nothing happens if the key is not in the map.
func (S *SCMap[V]) Remove(key string) {
	if S.size == 0 {
		return
	}

	if S.getBucket(key).Remove(key) {
		S.size--
	}
}

// ResizeTable - Changes the capacity of the table and rehashes all records into it.
// Nothing happens if newCapacity is lower than 1. Otherwise, newCapacity is rounded up to a prime
// (a request for exactly 2 buckets is kept as is).
// Records are re-inserted by Put, so inserts that reach the load limit during the rehash grow the table further.
func (S *SCMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		return
	}
	newCapacity = utils.TableCapacity(newCapacity)

	oldTable := S.table
	oldCapacity := S.capacity

	// Swap in the new table before any record is re-inserted
	S.table = newTable[V](newCapacity)
	S.capacity = newCapacity
	S.size = 0

	iter := newRecords(oldTable)
	for iter.HasNext() {
		record, err := iter.Next()
		if err != nil {
			break
		}
		S.Put(record.Key, record.Value)
	}

	storage.LogResize(S.logger, crt.Name(crt.SeparateChaining), oldCapacity, S.capacity, S.size)
}

// TableLoad - Returns the current load factor, records divided by number of buckets
func (S *SCMap[V]) TableLoad() float64 {
	return storage.Load(S.size, S.capacity)
}

// EmptyBuckets - Returns the number of buckets with an empty list
func (S *SCMap[V]) EmptyBuckets() (n int) {
	for i := 0; i < S.capacity; i++ {
		if S.getBucketList(i).Length() == 0 {
			n++
		}
	}

	return
}

// GetKeysAndValues - Returns an array with one entry per record, in bucket order
func (S *SCMap[V]) GetKeysAndValues() *dynarray.Array[model.KeyValue[V]] {
	kvs := dynarray.New[model.KeyValue[V]]()

	for i := 0; i < S.capacity; i++ {
		for n := S.getBucketList(i).Front(); n != nil; n = n.Next() {
			kvs.Append(model.KeyValue[V]{Key: n.Key, Value: n.Value})
		}
	}

	return kvs
}

// Clear - Removes all records, capacity is unchanged
func (S *SCMap[V]) Clear() {
	S.table = newTable[V](S.capacity)
	S.size = 0
}

// Iterator - Returns a new iterator over the records of the current table
func (S *SCMap[V]) Iterator() *Records[V] {
	return newRecords(S.table)
}
