package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// IndexOutOfRange - Custom error to inform that an index outside the bounds of a bucket table was accessed
type IndexOutOfRange struct {
	msg string
}

// Error - Used to notify that an index was out of range
func (I IndexOutOfRange) Error() string {
	if I.msg == "" {
		return "index out of range"
	}
	return I.msg
}
