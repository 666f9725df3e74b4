package model

import (
	"github.com/gostonefire/hashmap/hashfunc"
	"go.uber.org/zap"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted (a tombstone)
const RecordDeleted uint8 = 2

// Record - Represents one key/value entry in a bucket.
// The zero value is an empty record, which is what a newly allocated bucket table is filled with.
type Record[V any] struct {
	State uint8
	Key   string
	Value V
}

// IsLive - Returns true if the record holds a key that has not been deleted
func (R Record[V]) IsLive() bool {
	return R.State == RecordOccupied
}

// CRTConf - Is a struct to be passed in the call to NewXXMap and contains configuration that affects
// table sizing and hashing.
//   - Capacity is the requested number of buckets, it is rounded up to the nearest odd prime
//   - HashFunc is the hash function to use
//   - Logger receives debug information on resizes, nil means no logging
type CRTConf struct {
	Capacity int
	HashFunc hashfunc.HashFunc
	Logger   *zap.Logger
}

// KeyValue - A key and its value as returned when listing the contents of a map
type KeyValue[V any] struct {
	Key   string
	Value V
}
