package hashmap

// GetSize - Returns the number of live records in the hash map
func (H *HashMap[V]) GetSize() int {
	return H.storage.Size()
}

// GetCapacity - Returns the number of buckets in the hash map
func (H *HashMap[V]) GetCapacity() int {
	return H.storage.Capacity()
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// The table grows (to the nearest prime above double capacity) before an insert that would reach the load limit
// of the collision resolution technique, 0.5 for crt.QuadraticProbing and 1.0 for crt.SeparateChaining.
func (H *HashMap[V]) Put(key string, value V) {
	H.storage.Put(key, value)
}

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching record, the zero value if the key was not found
//   - ok is true if the key was found
func (H *HashMap[V]) Get(key string) (value V, ok bool) {
	return H.storage.Get(key)
}

// ContainsKey - Returns true if the key is in the hash map
func (H *HashMap[V]) ContainsKey(key string) bool {
	return H.storage.ContainsKey(key)
}

// Remove - Removes the record that corresponds to key. Removing a key that is not in the hash map does nothing.
func (H *HashMap[V]) Remove(key string) {
	H.storage.Remove(key)
}

// ResizeTable - Changes the number of buckets and rehashes all records.
// Invalid requests are ignored: with crt.QuadraticProbing a capacity below the current size, with
// crt.SeparateChaining a capacity below 1.
func (H *HashMap[V]) ResizeTable(newCapacity int) {
	H.storage.ResizeTable(newCapacity)
}

// TableLoad - Returns the current load factor
func (H *HashMap[V]) TableLoad() float64 {
	return H.storage.TableLoad()
}

// EmptyBuckets - Returns the number of empty buckets. Buckets holding a tombstone are not empty.
func (H *HashMap[V]) EmptyBuckets() int {
	return H.storage.EmptyBuckets()
}

// GetKeysAndValues - Returns all keys with their values, order is unspecified
func (H *HashMap[V]) GetKeysAndValues() []KeyValue[V] {
	kvs := H.storage.GetKeysAndValues()

	result := make([]KeyValue[V], 0, kvs.Length())
	for i := 0; i < kvs.Length(); i++ {
		kv, err := kvs.Get(i)
		if err != nil {
			break
		}
		result = append(result, KeyValue[V]{Key: kv.Key, Value: kv.Value})
	}

	return result
}

// Clear - Removes all records, the capacity is unchanged
func (H *HashMap[V]) Clear() {
	H.storage.Clear()
}

// Iterator - Returns a new Iterator positioned before the first live record
func (H *HashMap[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{records: H.newIterator()}
}
