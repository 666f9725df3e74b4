//go:build unit

package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/utils"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

// constantHash - Sends every key to bucket 0 so that all keys collide
func constantHash(string) uint64 {
	return 0
}

func newTestMap(t *testing.T, capacity int, hashFunc hashfunc.HashFunc) *OAMap[int] {
	oaMap, err := NewOAMap[int](model.CRTConf{Capacity: capacity, HashFunc: hashFunc})
	assert.NoError(t, err, "create new OAMap instance")
	return oaMap
}

func TestNewOAMap(t *testing.T) {
	t.Run("creates an OAMap with prime capacity", func(t *testing.T) {
		// Prepare
		tests := []struct{ requested, expected int }{{1, 3}, {2, 3}, {3, 3}, {10, 11}, {11, 11}, {100, 101}}

		for _, test := range tests {
			t.Run(fmt.Sprintf("capacity %d", test.requested), func(t *testing.T) {
				// Execute
				oaMap := newTestMap(t, test.requested, nil)

				// Check
				assert.Equal(t, test.expected, oaMap.Capacity(), "capacity rounded to prime")
				assert.Equal(t, 0, oaMap.Size(), "map is empty")
				assert.Equal(t, test.expected, oaMap.EmptyBuckets(), "all buckets empty")
				assert.NotNil(t, oaMap.hashFunc, "hash function is assigned")
				assert.NotNil(t, oaMap.logger, "logger is assigned")
			})
		}
	})

	t.Run("fails on non positive capacity", func(t *testing.T) {
		// Execute
		_, err := NewOAMap[int](model.CRTConf{Capacity: 0})

		// Check
		assert.Error(t, err, "capacity must be positive")
	})
}

func TestOAMap_Put(t *testing.T) {
	t.Run("grows the table before reaching half load", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 2, hashfunc.HashFunction1)
		assert.Equal(t, 3, oaMap.Capacity(), "capacity 2 rounds to 3")

		// Execute
		oaMap.Put("a", 1)
		assert.Equal(t, 3, oaMap.Capacity(), "first record fits")
		oaMap.Put("b", 2)

		// Check
		assert.Equal(t, 7, oaMap.Capacity(), "table doubled to next prime")
		assert.Equal(t, 2, oaMap.Size(), "both records stored")
		v, ok := oaMap.Get("a")
		assert.True(t, ok, "first record rehashed")
		assert.Equal(t, 1, v, "first record value preserved")
	})

	t.Run("updates an existing key in place", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)
		oaMap.Put("key", 1)

		// Execute
		oaMap.Put("key", 2)

		// Check
		v, ok := oaMap.Get("key")
		assert.True(t, ok, "key found")
		assert.Equal(t, 2, v, "value replaced")
		assert.Equal(t, 1, oaMap.Size(), "size unchanged")
	})

	t.Run("keeps load factor below half with prime capacity", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 3, hashfunc.HashFunction2)

		for i := 0; i < 500; i++ {
			// Execute
			before := oaMap.Capacity()
			oaMap.Put(fmt.Sprintf("key%d", i), i)

			// Check
			assert.Less(t, oaMap.TableLoad(), 0.5, "load factor below limit")
			assert.GreaterOrEqual(t, oaMap.Capacity(), before, "capacity never shrinks")
			assert.True(t, utils.IsPrime(oaMap.Capacity()), "capacity is prime")
		}
		assert.Equal(t, 500, oaMap.Size(), "all records stored")
	})

	t.Run("resolves collisions by quadratic probing", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, constantHash)

		// Execute
		for i, k := range []string{"a", "b", "c", "d"} {
			oaMap.Put(k, i)
		}

		// Check
		for i, bucketNo := range []int{0, 1, 4, 9} {
			record := oaMap.getBucketRecord(bucketNo)
			assert.Equalf(t, model.RecordOccupied, record.State, "bucket %d occupied", bucketNo)
			assert.Equalf(t, i, record.Value, "bucket %d has record number %d", bucketNo, i)
		}
		assert.Equal(t, 7, oaMap.EmptyBuckets(), "remaining buckets empty")
	})
}

func TestOAMap_Remove(t *testing.T) {
	t.Run("leaves a tombstone", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, constantHash)
		oaMap.Put("a", 1)
		oaMap.Put("b", 2)

		// Execute
		oaMap.Remove("a")

		// Check
		assert.Equal(t, 1, oaMap.Size(), "size decremented")
		assert.Equal(t, model.RecordDeleted, oaMap.getBucketRecord(0).State, "bucket marked deleted")
		assert.Equal(t, 9, oaMap.EmptyBuckets(), "tombstone not counted as empty")
		assert.False(t, oaMap.ContainsKey("a"), "key removed")
		v, ok := oaMap.Get("b")
		assert.True(t, ok, "record behind tombstone still found")
		assert.Equal(t, 2, v, "record behind tombstone has value")
	})

	t.Run("does not resurrect a removed key", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, constantHash)
		oaMap.Put("a", 1)
		oaMap.Put("b", 2)
		oaMap.Remove("a")

		// Execute
		oaMap.Put("c", 3)

		// Check
		assert.Equal(t, "c", oaMap.getBucketRecord(0).Key, "tombstone reused")
		_, ok := oaMap.Get("a")
		assert.False(t, ok, "removed key not found")
		assert.Equal(t, 2, oaMap.Size(), "size counts live records")
	})

	t.Run("does not duplicate a key found behind a tombstone", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, constantHash)
		oaMap.Put("a", 1)
		oaMap.Put("b", 2)
		oaMap.Remove("a")

		// Execute
		oaMap.Put("b", 20)

		// Check
		assert.Equal(t, 1, oaMap.Size(), "still one live record")
		v, _ := oaMap.Get("b")
		assert.Equal(t, 20, v, "value replaced")
		assert.Equal(t, 1, oaMap.GetKeysAndValues().Length(), "one entry listed")
	})

	t.Run("ignores a missing key", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)
		oaMap.Remove("x")
		oaMap.Put("a", 1)

		// Execute
		oaMap.Remove("x")

		// Check
		assert.Equal(t, 1, oaMap.Size(), "size unchanged")
	})
}

func TestOAMap_ContainsKey(t *testing.T) {
	t.Run("reports membership", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 5, nil)

		// Execute and Check
		assert.False(t, oaMap.ContainsKey("a"), "empty map contains nothing")
		oaMap.Put("a", 1)
		assert.True(t, oaMap.ContainsKey("a"), "contains added key")
		assert.False(t, oaMap.ContainsKey("b"), "does not contain other key")
	})

	t.Run("terminates on a table without empty buckets", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 3, constantHash)
		oaMap.Put("c", 3)
		oaMap.setBucketRecord(1, model.Record[int]{State: model.RecordDeleted})
		oaMap.setBucketRecord(2, model.Record[int]{State: model.RecordDeleted})

		// Execute
		ok := oaMap.ContainsKey("x")

		// Check
		assert.False(t, ok, "missing key not found")
		assert.True(t, oaMap.ContainsKey("c"), "existing key found")
	})
}

func TestOAMap_ResizeTable(t *testing.T) {
	t.Run("ignores capacity below size", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)
		for i := 0; i < 5; i++ {
			oaMap.Put(fmt.Sprintf("key%d", i), i)
		}

		// Execute
		oaMap.ResizeTable(4)

		// Check
		assert.Equal(t, 11, oaMap.Capacity(), "capacity unchanged")
		assert.Equal(t, 5, oaMap.Size(), "size unchanged")
	})

	t.Run("rehashes live records only", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, hashfunc.HashFunction1)
		for i := 0; i < 5; i++ {
			oaMap.Put(fmt.Sprintf("key%d", i), i)
		}
		oaMap.Remove("key2")

		// Execute
		oaMap.ResizeTable(30)

		// Check
		assert.Equal(t, 31, oaMap.Capacity(), "capacity rounded to prime")
		assert.Equal(t, 4, oaMap.Size(), "live records kept")
		assert.Equal(t, 27, oaMap.EmptyBuckets(), "tombstones dropped")
		for i := 0; i < 5; i++ {
			v, ok := oaMap.Get(fmt.Sprintf("key%d", i))
			if i == 2 {
				assert.False(t, ok, "removed key not rehashed")
				continue
			}
			assert.True(t, ok, "key rehashed")
			assert.Equal(t, i, v, "value rehashed")
		}
	})

	t.Run("shrinks on explicit request", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 101, nil)
		oaMap.Put("a", 1)

		// Execute
		oaMap.ResizeTable(10)

		// Check
		assert.Equal(t, 11, oaMap.Capacity(), "capacity lowered")
		assert.True(t, oaMap.ContainsKey("a"), "record kept")
	})

	t.Run("keeps a request for two buckets", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)

		// Execute
		oaMap.ResizeTable(2)

		// Check
		assert.Equal(t, 2, oaMap.Capacity(), "capacity is two")
		oaMap.Put("a", 1)
		assert.Equal(t, 5, oaMap.Capacity(), "first put grows the table")
		assert.True(t, oaMap.ContainsKey("a"), "record stored")
	})
}

func TestOAMap_Clear(t *testing.T) {
	t.Run("removes all records and keeps capacity", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)
		for i := 0; i < 20; i++ {
			oaMap.Put(fmt.Sprintf("key%d", i), i)
		}
		capacity := oaMap.Capacity()

		// Execute
		oaMap.Clear()

		// Check
		assert.Equal(t, 0, oaMap.Size(), "map is empty")
		assert.Equal(t, capacity, oaMap.Capacity(), "capacity unchanged")
		assert.Equal(t, capacity, oaMap.EmptyBuckets(), "all buckets empty")
		_, ok := oaMap.Get("key1")
		assert.False(t, ok, "no key found")
	})
}

func TestOAMap_Iterator(t *testing.T) {
	t.Run("iterates live records in bucket order", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, constantHash)
		for i, k := range []string{"a", "b", "c", "d"} {
			oaMap.Put(k, i)
		}
		oaMap.Remove("b")

		// Execute
		var keys []string
		iter := oaMap.Iterator()
		for iter.HasNext() {
			record, err := iter.Next()
			assert.NoError(t, err, "gets next record")
			keys = append(keys, record.Key)
		}

		// Check
		assert.Equal(t, []string{"a", "c", "d"}, keys, "live records in bucket order")
		_, err := iter.Next()
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "exhausted iterator")
	})

	t.Run("supports independent iterators", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 11, nil)
		oaMap.Put("a", 1)
		oaMap.Put("b", 2)

		// Execute
		first := oaMap.Iterator()
		_, _ = first.Next()
		second := oaMap.Iterator()

		// Check
		n := 0
		for second.HasNext() {
			_, _ = second.Next()
			n++
		}
		assert.Equal(t, 2, n, "second iterator starts over")
		assert.True(t, first.HasNext(), "first iterator keeps its position")
	})

	t.Run("ends immediately on empty map", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 3, nil)

		// Execute
		iter := oaMap.Iterator()

		// Check
		assert.False(t, iter.HasNext(), "nothing to iterate")
		_, err := iter.Next()
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "exhausted iterator")
	})
}

func TestOAMap_GetKeysAndValues(t *testing.T) {
	t.Run("lists all live records", func(t *testing.T) {
		// Prepare
		oaMap := newTestMap(t, 3, nil)
		expected := make(map[string]int)
		for i := 0; i < 50; i++ {
			k := fmt.Sprintf("key%d", rand.Intn(30))
			oaMap.Put(k, i)
			expected[k] = i
		}

		// Execute
		kvs := oaMap.GetKeysAndValues()

		// Check
		assert.Equal(t, len(expected), kvs.Length(), "one entry per key")
		for i := 0; i < kvs.Length(); i++ {
			kv, err := kvs.Get(i)
			assert.NoError(t, err, "gets entry")
			assert.Equal(t, expected[kv.Key], kv.Value, "latest value listed")
		}
	})
}
