// Package utf8view is an allocation-free UTF-8 layer for code that
// works over caller-owned byte buffers: a codepoint codec, byte
// sequence analysis, and a non-owning string view. No operation here
// allocates except View.Materialize, and none retains a reference to
// a caller's buffer past the call.
package utf8view

// ReplacementChar is substituted for malformed or truncated sequences.
const ReplacementChar rune = 0xFFFD

// SequenceLength returns the sequence width (1-4) declared by a
// leading byte. Bytes in 0x80-0xBF are continuation bytes appearing
// where a leading byte is expected; they report width 1 so scanning
// callers recover by stepping over exactly one byte.
func SequenceLength(leading byte) int {
	if leading < 0x80 {
		return 1
	}
	if leading < 0xC0 {
		return 1 // continuation byte in leading position
	}
	if leading < 0xE0 {
		return 2
	}
	if leading < 0xF0 {
		return 3
	}
	return 4
}

// IsContinuation reports whether b is a UTF-8 continuation byte
// (top two bits 10).
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// CodepointLen returns the number of bytes EncodeCodepoint writes
// for cp. Width depends only on numeric magnitude.
func CodepointLen(cp rune) int {
	if cp < 0x80 {
		return 1
	}
	if cp < 0x800 {
		return 2
	}
	if cp < 0x10000 {
		return 3
	}
	return 4
}

// EncodeCodepoint writes the UTF-8 encoding of cp at dst[0:] and
// returns the number of bytes written (1-4). Width is chosen by
// magnitude alone; surrogate-range and out-of-range values are
// encoded, not rejected. The caller guarantees dst has room for the
// full width.
func EncodeCodepoint(dst []byte, cp rune) int {
	if cp < 0x80 {
		dst[0] = byte(cp)
		return 1
	}

	if cp < 0x800 {
		dst[0] = byte(0xC0 | cp>>6)
		dst[1] = byte(0x80 | cp&0x3F)
		return 2
	}

	if cp < 0x10000 {
		dst[0] = byte(0xE0 | cp>>12)
		dst[1] = byte(0x80 | (cp>>6)&0x3F)
		dst[2] = byte(0x80 | cp&0x3F)
		return 3
	}

	dst[0] = byte(0xF0 | cp>>18)
	dst[1] = byte(0x80 | (cp>>12)&0x3F)
	dst[2] = byte(0x80 | (cp>>6)&0x3F)
	dst[3] = byte(0x80 | cp&0x3F)
	return 4
}

// DecodeCodepoint decodes one UTF-8 sequence from the front of buf
// and returns the codepoint and the bytes consumed.
//
// An empty buf returns the (0, 0) sentinel meaning nothing to decode.
// A continuation byte in leading position, or a sequence whose
// declared width does not fit in buf, returns (ReplacementChar, 1):
// always one byte on malformed input, so a scanning loop can never
// stall. Continuation payloads are not deeply validated beyond the
// leading-byte class.
func DecodeCodepoint(buf []byte) (rune, int) {
	if len(buf) == 0 {
		return 0, 0
	}

	b0 := buf[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}

	if b0 < 0xC0 {
		return ReplacementChar, 1 // continuation byte in leading position
	}

	if b0 < 0xE0 { // 2-byte sequence
		if len(buf) < 2 {
			return ReplacementChar, 1
		}
		return rune(b0&0x1F)<<6 | rune(buf[1]&0x3F), 2
	}

	if b0 < 0xF0 { // 3-byte sequence
		if len(buf) < 3 {
			return ReplacementChar, 1
		}
		return rune(b0&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F), 3
	}

	// 4-byte sequence
	if len(buf) < 4 {
		return ReplacementChar, 1
	}
	return rune(b0&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F), 4
}
