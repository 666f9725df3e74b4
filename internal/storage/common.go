package storage

import (
	"go.uber.org/zap"
)

// Load - Returns the load factor given number of live records and number of buckets
func Load(size, capacity int) float64 {
	return float64(size) / float64(capacity)
}

// ExceedsLoad - Returns true if adding one more record would bring the load factor to or above limit
func ExceedsLoad(size, capacity int, limit float64) bool {
	return Load(size+1, capacity) >= limit
}

// Logger - Returns the given logger, or a no-op logger if nil
func Logger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// LogResize - Logs a completed table resize at debug level
func LogResize(logger *zap.Logger, technique string, fromCapacity, toCapacity, size int) {
	logger.Debug("resized table",
		zap.String("technique", technique),
		zap.Int("fromCapacity", fromCapacity),
		zap.Int("toCapacity", toCapacity),
		zap.Int("size", size),
	)
}
