package hash

// QuadraticProbe - Returns the bucket visited in probe iteration i for a key whose base bucket is base, that is
// (base + i*i) mod capacity. Iteration 0 is the base bucket itself.
// Squares repeat with a period of capacity, so probing beyond capacity iterations visits no new buckets.
func QuadraticProbe(base, iteration, capacity int) int {
	i := uint64(iteration)
	return int((uint64(base) + i*i) % uint64(capacity))
}
