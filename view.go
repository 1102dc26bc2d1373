package utf8view

// View is a non-owning window onto externally owned UTF-8 bytes: a
// pointer plus a byte length. A View never copies, mutates, or frees
// its backing bytes and must not outlive them. All of its operations
// work on raw bytes; none decode, so comparisons are byte-lexicographic
// rather than collation-aware.
type View struct {
	b []byte
}

// Wrap returns a View over b. The caller keeps ownership of b and
// must keep it alive and unmodified for as long as the view is used.
func Wrap(b []byte) View {
	return View{b: b}
}

// ViewString returns a View over the bytes of s without copying.
func ViewString(s string) View {
	return View{b: unsafeBytes(s)}
}

// Len returns the byte length of the view.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the view has zero bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// Bytes returns the viewed bytes. The slice aliases the backing
// buffer; it is not a copy.
func (v View) Bytes() []byte {
	return v.b
}

// String returns the view as a string without copying. The result is
// only valid while the backing buffer is.
func (v View) String() string {
	return unsafeString(v.b)
}

// Materialize copies the viewed bytes into a freshly allocated buffer
// sized exactly to the content. This is the only allocating operation
// in the package.
func (v View) Materialize() []byte {
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return c
}

// Equal reports whether v and o hold identical bytes.
func (v View) Equal(o View) bool {
	if len(v.b) != len(o.b) {
		return false
	}
	return memEqual(v.b, o.b, len(v.b))
}

// Compare orders v against o byte-lexicographically: negative if v
// sorts first, positive if o does, zero on equal bytes. A strict
// prefix sorts before the longer string.
func (v View) Compare(o View) int {
	n := len(v.b)
	if len(o.b) < n {
		n = len(o.b)
	}
	for i := 0; i < n; i++ {
		if v.b[i] != o.b[i] {
			if v.b[i] < o.b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(v.b) < len(o.b):
		return -1
	case len(v.b) > len(o.b):
		return 1
	}
	return 0
}

// HasPrefix reports whether v begins with the bytes of p. The empty
// view is a prefix of everything.
func (v View) HasPrefix(p View) bool {
	if len(p.b) > len(v.b) {
		return false
	}
	return memEqual(v.b, p.b, len(p.b))
}

// HasSuffix reports whether v ends with the bytes of s. The empty
// view is a suffix of everything.
func (v View) HasSuffix(s View) bool {
	if len(s.b) > len(v.b) {
		return false
	}
	return memEqual(v.b[len(v.b)-len(s.b):], s.b, len(s.b))
}

// Slice returns the sub-view of length bytes starting at start. A
// start outside [0, Len) yields the empty view; length is clamped so
// the result never extends past the end. Offsets are byte positions
// and may split a multi-byte sequence; callers needing codepoint
// boundaries compute them via DecodeCodepoint.
func (v View) Slice(start, length int) View {
	if start < 0 || start >= len(v.b) || length <= 0 {
		return View{}
	}
	if length > len(v.b)-start {
		length = len(v.b) - start
	}
	return View{b: v.b[start : start+length]}
}

// Index returns the first byte offset where needle occurs in v, or
// -1. An empty needle matches at offset 0.
func (v View) Index(needle View) int {
	n := len(needle.b)
	if n == 0 {
		return 0
	}
	if n > len(v.b) {
		return -1
	}

	first := needle.b[0]
	limit := len(v.b) - n
	for i := 0; i <= limit; i++ {
		if v.b[i] != first {
			continue
		}
		if memEqual(v.b[i:], needle.b, n) {
			return i
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of needle
// in v. The cursor advances past each match by needle's full length,
// so overlapping hits are not double-counted. An empty needle counts
// zero, not infinity.
func (v View) Count(needle View) int {
	n := len(needle.b)
	if n == 0 {
		return 0
	}

	count := 0
	rest := v
	for {
		i := rest.Index(needle)
		if i < 0 {
			return count
		}
		count++
		rest = View{b: rest.b[i+n:]}
	}
}
