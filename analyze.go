package utf8view

// CountCodepoints returns the number of UTF-8 sequences in buf. It
// strides by the width declared by each leading byte without
// validating continuation bytes, which makes it cheaper than a full
// decode but defined only for well-formed input. On malformed input
// the count is unspecified, but the scan still terminates because the
// stride is always at least one byte.
func CountCodepoints(buf []byte) int {
	count := 0
	for i := 0; i < len(buf); i += SequenceLength(buf[i]) {
		count++
	}
	return count
}

// IsASCII reports whether buf contains only bytes below 0x80. The
// empty buffer is ASCII. Stops at the first high byte.
func IsASCII(buf []byte) bool {
	for _, b := range buf {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
