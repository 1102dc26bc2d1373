package utf8view

// EncodeSequence writes the UTF-8 encoding of cps into dst, bounded
// by len(dst), and returns the bytes written. A codepoint is only
// written if its full encoded width fits in the remaining capacity;
// at the first one that does not fit, it and everything after it are
// dropped. Truncation is not an error, it just shows up as a return
// value smaller than the full encoding would need. A partial
// multi-byte sequence is never written.
func EncodeSequence(cps []rune, dst []byte) int {
	written := 0
	for _, cp := range cps {
		if CodepointLen(cp) > len(dst)-written {
			break
		}
		written += EncodeCodepoint(dst[written:], cp)
	}
	return written
}
