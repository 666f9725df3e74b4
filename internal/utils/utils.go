package utils

// IsPrime - Returns true if n is a prime number, 2 and 3 are primes while 1 (and anything below) and all other
// even numbers are not. Odd numbers are checked by trial division with odd factors up to the square root of n.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the nearest prime equal to or higher than n, stepping over even numbers.
// Since an even n is always advanced to n+1 first, NextPrime(2) returns 3.
func NextPrime(n int) int {
	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// TableCapacity - Returns the capacity to use when a table is resized to n buckets.
// A request for exactly 2 buckets is honoured as is, primes are kept and anything else goes to NextPrime.
func TableCapacity(n int) int {
	if n == 2 || IsPrime(n) {
		return n
	}

	return NextPrime(n)
}
