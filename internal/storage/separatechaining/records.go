package separatechaining

import (
	"errors"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/internal/dynarray"
	"github.com/gostonefire/hashmap/internal/linkedlist"
	"github.com/gostonefire/hashmap/internal/model"
)

// Records - Is used to iterate over records one by one, bucket by bucket and within a bucket from
// the front of its list. It keeps its own position, so several iterators may traverse the same map independently.
type Records[V any] struct {
	table    *dynarray.Array[*linkedlist.List[V]]
	bucketNo int
	node     *linkedlist.Node[V]
}

// newRecords - Returns a pointer to a new Records struct positioned before the first bucket
func newRecords[V any](table *dynarray.Array[*linkedlist.List[V]]) *Records[V] {
	return &Records[V]{table: table, bucketNo: -1}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records[V]) HasNext() bool {
	return R.seek() == nil
}

// Next - Returns record.
// It returns:
//   - record is the next record.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records[V]) Next() (record model.Record[V], err error) {
	err = R.seek()
	if err != nil {
		if errors.Is(err, crt.IndexOutOfRange{}) {
			err = crt.NoRecordFound{}
		}
		return
	}

	record = model.Record[V]{State: model.RecordOccupied, Key: R.node.Key, Value: R.node.Value}
	R.node = R.node.Next()

	return
}

// seek - Makes sure node points at the next record, moving on to following buckets when needed.
// Running past the last bucket results in an error of type crt.IndexOutOfRange from the underlying table.
func (R *Records[V]) seek() (err error) {
	var list *linkedlist.List[V]
	for R.node == nil {
		list, err = R.table.Get(R.bucketNo + 1)
		if err != nil {
			return
		}
		R.bucketNo++
		R.node = list.Front()
	}

	return
}
