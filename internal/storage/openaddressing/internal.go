package openaddressing

import (
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/hash"
	"github.com/gostonefire/hashmap/internal/model"
)

// newTable - Returns a table of capacity empty records
func newTable[V any](capacity int) *dynarray.Array[model.Record[V]] {
	return dynarray.NewFilled(capacity, model.Record[V]{})
}

// getBucketRecord - Returns the record in a given bucket.
// Bucket numbers are always reduced modulo the capacity, so an error here means the table is corrupt.
func (Q *OAMap[V]) getBucketRecord(bucketNo int) model.Record[V] {
	record, err := Q.table.Get(bucketNo)
	if err != nil {
		panic(err)
	}

	return record
}

// setBucketRecord - Sets the record in a given bucket
func (Q *OAMap[V]) setBucketRecord(bucketNo int, record model.Record[V]) {
	if err := Q.table.Set(bucketNo, record); err != nil {
		panic(err)
	}
}

// probingForGet - Is the Quadratic Probing algorithm for getting a record.
// Probing stops at the first empty bucket, tombstones are passed.
func (Q *OAMap[V]) probingForGet(key string) (bucketNo int, ok bool) {
	base := hash.BucketIndex(Q.hashFunc(key), Q.capacity)

	// Squares repeat after capacity iterations
	for i := 0; i < Q.capacity; i++ {
		bucketNo = hash.QuadraticProbe(base, i, Q.capacity)
		record := Q.getBucketRecord(bucketNo)

		switch record.State {
		case model.RecordEmpty:
			return 0, false

		case model.RecordOccupied:
			if record.Key == key {
				return bucketNo, true
			}
		}
	}

	return 0, false
}

// probingForSet - Is the Quadratic Probing algorithm for finding the bucket to set a record in.
//
// It returns:
//   - bucketNo is the bucket holding a live record with the same key, otherwise the first tombstone or
//     empty bucket passed
//   - state is the state of the record in bucketNo
//   - ok is false if neither a matching record nor an available bucket was reached
func (Q *OAMap[V]) probingForSet(key string) (bucketNo int, state uint8, ok bool) {
	var deletedBucketNo int
	var hasDeleted bool

	base := hash.BucketIndex(Q.hashFunc(key), Q.capacity)

	for i := 0; i < Q.capacity; i++ {
		probe := hash.QuadraticProbe(base, i, Q.capacity)
		record := Q.getBucketRecord(probe)

		switch record.State {
		case model.RecordEmpty:
			// The key is not further along, prefer reusing an earlier tombstone
			if hasDeleted {
				return deletedBucketNo, model.RecordDeleted, true
			}
			return probe, model.RecordEmpty, true

		case model.RecordOccupied:
			if record.Key == key {
				return probe, model.RecordOccupied, true
			}

		case model.RecordDeleted:
			if !hasDeleted {
				deletedBucketNo = probe
				hasDeleted = true
			}
		}
	}

	if hasDeleted {
		return deletedBucketNo, model.RecordDeleted, true
	}

	return 0, model.RecordEmpty, false
}
