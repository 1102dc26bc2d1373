package utf8view

import "unsafe"

// unsafeString converts b to a string without allocation.
// SAFE to use here because:
// 1. The result never outlives the view it came from
// 2. Views are immutable, so the bytes cannot change underneath it
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeBytes converts s to a []byte without allocation.
// SAFE to use here because view operations never write through the
// returned slice.
func unsafeBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// memEqual compares two byte slices for equality up to length.
// It uses unsafe pointer arithmetic for potentially faster
// comparisons. Callers must guarantee both slices hold at least
// length bytes.
func memEqual(a, b []byte, length int) bool {
	if length == 0 {
		return true
	}

	// Word-size comparison when possible (8 bytes at a time on 64-bit)
	const wordSize = unsafe.Sizeof(uintptr(0))

	wordsToCompare := length / int(wordSize)
	for i := 0; i < wordsToCompare; i++ {
		aWord := *(*uintptr)(unsafe.Pointer(&a[i*int(wordSize)]))
		bWord := *(*uintptr)(unsafe.Pointer(&b[i*int(wordSize)]))
		if aWord != bWord {
			return false
		}
	}

	// Handle remaining bytes
	remaining := length % int(wordSize)
	offset := wordsToCompare * int(wordSize)
	for i := 0; i < remaining; i++ {
		if a[offset+i] != b[offset+i] {
			return false
		}
	}

	return true
}
