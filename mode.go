package hashmap

import (
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/conf"
)

// FindMode - Returns the most frequent value(s) in values together with their frequency, counted in one pass
// using a separate chaining hash map. Values tying for the highest frequency are all returned in the
// order they reached it. values is expected to hold at least one element; for an empty slice no values
// and a frequency of 1 are returned.
// Options are passed on to the counting hash map.
func FindMode(values []string, opts ...Option) (modes []string, frequency int) {
	counts, _ := NewHashMap[int](crt.SeparateChaining, conf.DefaultCapacity, hashfunc.HashFunction1, opts...)

	frequency = 1
	modes = make([]string, 0, 1)

	for _, v := range values {
		current, ok := counts.Get(v)
		if ok {
			current++
		} else {
			current = 1
		}

		if current > frequency {
			frequency = current
			modes = append(modes[:0], v)
		} else if current == frequency {
			modes = append(modes, v)
		}

		counts.Put(v, current)
	}

	return
}
