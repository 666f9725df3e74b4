package crt

// QuadraticProbing - Open Addressing with quadratic probing, one record per bucket and tombstones on delete
const QuadraticProbing int = 1

// SeparateChaining - Each bucket holds a singly linked list of records
const SeparateChaining int = 2

// Name - Returns a readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case QuadraticProbing:
		return "QuadraticProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
