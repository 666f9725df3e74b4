package hash

// BucketIndex - Returns the bucket (between 0 and capacity - 1) that a hash value maps to
func BucketIndex(hashValue uint64, capacity int) int {
	return int(hashValue % uint64(capacity))
}
