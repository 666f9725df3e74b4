package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/conf"
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage"
	"github.com/gostonefire/hashmap/internal/utils"
	"go.uber.org/zap"
)

// OAMap - Represents an implementation of the Open Addressing Collision Resolution Technique using quadratic probing.
// Each bucket holds at most one record. In case of a collision, it probes through the table visiting buckets at
// offsets 0, 1, 4, 9, ... from the base bucket until an available bucket is found. Deleted records are kept as
// tombstones so that probe chains passing through them stay intact.
// The table is doubled before an insert that would bring the load factor to 0.5 or above.
type OAMap[V any] struct {
	table    *dynarray.Array[model.Record[V]]
	size     int
	capacity int
	hashFunc hashfunc.HashFunc
	logger   *zap.Logger
}

// NewOAMap - Returns a pointer to a new instance of the Open Addressing implementation.
//   - crtConf is a model.CRTConf struct providing the requested capacity and hash function
//
// It returns:
//   - oaMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOAMap[V any](crtConf model.CRTConf) (oaMap *OAMap[V], err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashFunc was given then use the default internal
	if crtConf.HashFunc == nil {
		crtConf.HashFunc = hashfunc.CRC32
	}

	capacity := utils.NextPrime(crtConf.Capacity)

	oaMap = &OAMap[V]{
		table:    newTable[V](capacity),
		size:     0,
		capacity: capacity,
		hashFunc: crtConf.HashFunc,
		logger:   storage.Logger(crtConf.Logger),
	}

	return
}

// Size - Returns the number of live records
func (Q *OAMap[V]) Size() int {
	return Q.size
}

// Capacity - Returns the number of buckets
func (Q *OAMap[V]) Capacity() int {
	return Q.capacity
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// Adding a record that would bring the load factor to 0.5 or above first doubles the table.
//   - key is the identifier of a record
//   - value is the value to store along with the key
func (Q *OAMap[V]) Put(key string, value V) {
	bucketNo, state, ok := Q.probingForSet(key)

	if ok && state == model.RecordOccupied {
		record := Q.getBucketRecord(bucketNo)
		record.Value = value
		Q.setBucketRecord(bucketNo, record)
		return
	}

	if !ok || storage.ExceedsLoad(Q.size, Q.capacity, conf.QuadraticProbingLoadLimit) {
		Q.ResizeTable(Q.capacity * conf.GrowthFactor)
		Q.Put(key, value)
		return
	}

	Q.setBucketRecord(bucketNo, model.Record[V]{State: model.RecordOccupied, Key: key, Value: value})
	Q.size++
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value
//   - ok is true if the key was found
func (Q *OAMap[V]) Get(key string) (value V, ok bool) {
	bucketNo, ok := Q.probingForGet(key)
	if !ok {
		return
	}

	value = Q.getBucketRecord(bucketNo).Value

	return
}

// ContainsKey - Returns true if the key is in the map. An empty map contains no keys.
func (Q *OAMap[V]) ContainsKey(key string) bool {
	if Q.size == 0 {
		return false
	}

	_, ok := Q.probingForGet(key)

	return ok
}

// Remove - Marks the record that corresponds to key as deleted. Nothing happens if the key is not in the map.
func (Q *OAMap[V]) Remove(key string) {
	if Q.size == 0 {
		return
	}

	bucketNo, ok := Q.probingForGet(key)
	if !ok {
		return
	}

	record := Q.getBucketRecord(bucketNo)
	record.State = model.RecordDeleted
	record.Value = *new(V)
	Q.setBucketRecord(bucketNo, record)
	Q.size--
}

// ResizeTable - Changes the capacity of the table and rehashes all live records into it.
// Nothing happens if newCapacity is lower than the number of live records. Otherwise, newCapacity is
// rounded up to a prime (a request for exactly 2 buckets is kept as is).
// Records are re-inserted by Put, so inserts that reach the load limit during the rehash grow the table further.
func (Q *OAMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < Q.size {
		return
	}
	newCapacity = utils.TableCapacity(newCapacity)

	oldTable := Q.table
	oldCapacity := Q.capacity

	// Swap in the new table before any record is re-inserted
	Q.table = newTable[V](newCapacity)
	Q.capacity = newCapacity
	Q.size = 0

	iter := newRecords(oldTable)
	for iter.HasNext() {
		record, err := iter.Next()
		if err != nil {
			break
		}
		Q.Put(record.Key, record.Value)
	}

	storage.LogResize(Q.logger, crt.Name(crt.QuadraticProbing), oldCapacity, Q.capacity, Q.size)
}

// TableLoad - Returns the current load factor, live records divided by number of buckets
func (Q *OAMap[V]) TableLoad() float64 {
	return storage.Load(Q.size, Q.capacity)
}

// EmptyBuckets - Returns the number of buckets that have never been used since the table was allocated.
// Tombstones are not counted as empty.
func (Q *OAMap[V]) EmptyBuckets() (n int) {
	for i := 0; i < Q.capacity; i++ {
		if Q.getBucketRecord(i).State == model.RecordEmpty {
			n++
		}
	}

	return
}

// GetKeysAndValues - Returns an array with one entry per live record, in bucket order
func (Q *OAMap[V]) GetKeysAndValues() *dynarray.Array[model.KeyValue[V]] {
	kvs := dynarray.New[model.KeyValue[V]]()

	iter := Q.Iterator()
	for iter.HasNext() {
		record, err := iter.Next()
		if err != nil {
			break
		}
		kvs.Append(model.KeyValue[V]{Key: record.Key, Value: record.Value})
	}

	return kvs
}

// Clear - Removes all records, capacity is unchanged
func (Q *OAMap[V]) Clear() {
	Q.table = newTable[V](Q.capacity)
	Q.size = 0
}

// Iterator - Returns a new iterator over the live records of the current table
func (Q *OAMap[V]) Iterator() *Records[V] {
	return newRecords(Q.table)
}
