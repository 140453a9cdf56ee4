package internal

// StringHash returns a hash value for the given string value.
func StringHash(s string) (hash uint64) {
	// DJBX33A
	hash = 5381
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) + hash) + uint64(s[i])
	}
	return
}

// BytesHash returns the same hash value as StringHash(string(b)).
func BytesHash(b []byte) (hash uint64) {
	hash = 5381
	for _, c := range b {
		hash = ((hash << 5) + hash) + uint64(c)
	}
	return
}

// CombineHash mixes a further hash value into an accumulated one.
// The result depends on the order of combination.
func CombineHash(hash, value uint64) uint64 {
	return hash*31 + value
}
