package hashmap

// Iterator - Is used to iterate over the live records of a HashMap one by one.
// Each Iterator has its own position. Modifying the map while iterating is allowed, but records added or
// moved by a resize after the Iterator was created may or may not be visited.
type Iterator[V any] struct {
	records RecordIterator[V]
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (I *Iterator[V]) HasNext() bool {
	return I.records.HasNext()
}

// Next - Returns next key and value.
// It returns:
//   - key and value of the next record
//   - err is nil, or of type crt.NoRecordFound if there are no more records when calling this function.
func (I *Iterator[V]) Next() (key string, value V, err error) {
	record, err := I.records.Next()
	if err != nil {
		return
	}

	return record.Key, record.Value, nil
}
