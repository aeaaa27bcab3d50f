package jsontoken

// Parse parses a zero-terminated byte string: s is scanned for the first
// 0x00 byte, and only the bytes before it are treated as JSON text. The
// trailing zero itself is not part of the input and need not be present
// at the very end of s.
func Parse(store *TokenStore, s []byte) int {
	n := 0
	for n < len(s) && s[n] != 0 {
		n++
	}
	return runParser(NewView(s[:n]), store)
}

// ParseBytes parses the first length bytes of b. A negative length, or
// one exceeding len(b), is treated as len(b).
func ParseBytes(store *TokenStore, b []byte, length int) int {
	if length < 0 || length > len(b) {
		length = len(b)
	}
	return runParser(NewView(b[:length]), store)
}

// ParseView parses v directly, with no further trimming.
func ParseView(store *TokenStore, v View) int {
	return runParser(v, store)
}
