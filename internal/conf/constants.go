package conf

// QuadraticProbingLoadLimit - Load factor at which an open addressing table is doubled before inserting a new key
const QuadraticProbingLoadLimit float64 = 0.5

// SeparateChainingLoadLimit - Load factor at which a separate chaining table is doubled before inserting a new key
const SeparateChainingLoadLimit float64 = 1.0

// DefaultCapacity - Capacity used by internal consumers that have no better estimate, e.g. FindMode
const DefaultCapacity int = 11

// GrowthFactor - Capacity multiplier used when a table is resized due to its load factor
const GrowthFactor int = 2
