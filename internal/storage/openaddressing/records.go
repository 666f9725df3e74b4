package openaddressing

import (
	"errors"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/model"
)

// Records - Is used to iterate over live records one by one in bucket order.
// It keeps its own position, so several iterators may traverse the same map independently.
// An iterator keeps traversing the table that was current when it was created, even if the map is resized.
type Records[V any] struct {
	table *dynarray.Array[model.Record[V]]
	index int
}

// newRecords - Returns a pointer to a new Records struct positioned before the first bucket
func newRecords[V any](table *dynarray.Array[model.Record[V]]) *Records[V] {
	return &Records[V]{table: table}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records[V]) HasNext() bool {
	_, err := R.seek()
	return err == nil
}

// Next - Returns record.
// It returns:
//   - record is the next live record.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records[V]) Next() (record model.Record[V], err error) {
	record, err = R.seek()
	if err != nil {
		if errors.Is(err, crt.IndexOutOfRange{}) {
			err = crt.NoRecordFound{}
		}
		record = model.Record[V]{}
		return
	}

	R.index++

	return
}

// seek - Moves the position forward to the next live record and returns it. Running past the last bucket
// results in an error of type crt.IndexOutOfRange from the underlying table.
func (R *Records[V]) seek() (record model.Record[V], err error) {
	for {
		record, err = R.table.Get(R.index)
		if err != nil || record.IsLive() {
			return
		}
		R.index++
	}
}
