package hashmap

import (
	"fmt"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage/openaddressing"
	"github.com/gostonefire/hashmap/internal/storage/separatechaining"
	"go.uber.org/zap"
)

// Storage - Interface for any collision resolution technique implementation
type Storage[V any] interface {
	Size() int
	Capacity() int
	Put(key string, value V)
	Get(key string) (value V, ok bool)
	ContainsKey(key string) bool
	Remove(key string)
	ResizeTable(newCapacity int)
	TableLoad() float64
	EmptyBuckets() int
	GetKeysAndValues() *dynarray.Array[model.KeyValue[V]]
	Clear()
}

// RecordIterator - Interface for iterators over the records of a Storage implementation
type RecordIterator[V any] interface {
	HasNext() bool
	Next() (record model.Record[V], err error)
}

// KeyValue - A key and its value as returned by GetKeysAndValues
type KeyValue[V any] struct {
	Key   string
	Value V
}

// Option - Configures optional settings of a HashMap
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger - Sets a logger that receives debug information whenever the table is resized
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// HashMap - The main implementation struct.
// A HashMap is not safe for concurrent use, callers sharing one between goroutines must serialize access.
type HashMap[V any] struct {
	storage     Storage[V]
	technique   int
	newIterator func() RecordIterator[V]
}

// NewHashMap - Returns a new hash map using the given collision resolution technique.
//   - technique is either crt.QuadraticProbing or crt.SeparateChaining
//   - capacity is the requested initial number of buckets, it is rounded up to the nearest odd prime
//   - hashFunc is an optional hash function, if nil hashfunc.CRC32 is used
//   - opts are optional settings such as WithLogger
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[V any](technique int, capacity int, hashFunc hashfunc.HashFunc, opts ...Option) (hashMap *HashMap[V], err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	crtConf := model.CRTConf{
		Capacity: capacity,
		HashFunc: hashFunc,
		Logger:   o.logger,
	}

	hashMap = &HashMap[V]{technique: technique}

	switch technique {
	case crt.QuadraticProbing:
		var oaMap *openaddressing.OAMap[V]
		oaMap, err = openaddressing.NewOAMap[V](crtConf)
		if err != nil {
			hashMap = nil
			return
		}
		hashMap.storage = oaMap
		hashMap.newIterator = func() RecordIterator[V] { return oaMap.Iterator() }

	case crt.SeparateChaining:
		var scMap *separatechaining.SCMap[V]
		scMap, err = separatechaining.NewSCMap[V](crtConf)
		if err != nil {
			hashMap = nil
			return
		}
		hashMap.storage = scMap
		hashMap.newIterator = func() RecordIterator[V] { return scMap.Iterator() }

	default:
		hashMap = nil
		err = fmt.Errorf("collision resolution technique %d not implemented", technique)
	}

	return
}

// Technique - Returns the collision resolution technique used by the hash map
func (H *HashMap[V]) Technique() int {
	return H.technique
}
