package utf8view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSequence(t *testing.T) {
	tests := []struct {
		name     string
		cps      []rune
		capacity int
		expected []byte
	}{
		{
			name:     "Empty input",
			cps:      nil,
			capacity: 8,
			expected: []byte{},
		},
		{
			name:     "ASCII fits exactly",
			cps:      []rune("hi"),
			capacity: 2,
			expected: []byte("hi"),
		},
		{
			name:     "Zero capacity writes nothing",
			cps:      []rune("hi"),
			capacity: 0,
			expected: []byte{},
		},
		{
			name:     "Truncates whole codepoints",
			cps:      []rune("hello"),
			capacity: 3,
			expected: []byte("hel"),
		},
		{
			name:     "Never writes a partial multi-byte sequence",
			cps:      []rune{'a', 'ñ'}, // 'ñ' needs 2 bytes, only 1 remains
			capacity: 2,
			expected: []byte("a"),
		},
		{
			name:     "Multi-byte fits when capacity allows",
			cps:      []rune{'a', 'ñ'},
			capacity: 3,
			expected: []byte("añ"),
		},
		{
			name:     "4-byte codepoint dropped at the boundary",
			cps:      []rune{'😀'},
			capacity: 3,
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.capacity)
			n := EncodeSequence(tt.cps, dst)
			assert.Equal(t, len(tt.expected), n)
			assert.Equal(t, tt.expected, dst[:n])
		})
	}
}

// Everything after the first codepoint that does not fit is dropped,
// even if a later codepoint would fit on its own.
func TestEncodeSequenceDropsTail(t *testing.T) {
	dst := make([]byte, 3)
	n := EncodeSequence([]rune{'a', 'ñ', '漢', 'b'}, dst)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("añ"), dst[:n])
}

// Encode a mixed codepoint sequence into a roomy buffer, then decode
// the exact bytes back out.
func TestEncodeDecodeEndToEnd(t *testing.T) {
	// "Hello Niño"
	cps := []rune{0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x20, 0x4E, 0x69, 0xF1, 0x6F}

	dst := make([]byte, 20)
	n := EncodeSequence(cps, dst)
	require.Equal(t, 11, n) // 'ñ' takes two bytes

	decoded := make([]rune, 0, len(cps))
	pos := 0
	for pos < n {
		cp, consumed := DecodeCodepoint(dst[pos:n])
		require.GreaterOrEqual(t, consumed, 1)
		decoded = append(decoded, cp)
		pos += consumed
	}

	assert.Equal(t, cps, decoded)
	assert.Equal(t, len(cps), CountCodepoints(dst[:n]))
	assert.False(t, IsASCII(dst[:n]))
}

func TestEncodeSequenceZeroAllocation(t *testing.T) {
	cps := []rune("Hello Niño 漢字 😀")
	dst := make([]byte, 64)

	allocs := testing.AllocsPerRun(100, func() {
		_ = EncodeSequence(cps, dst)
	})
	assert.Zero(t, allocs, "encoding into a caller buffer should not allocate")
}

func BenchmarkEncodeSequence(b *testing.B) {
	cps := []rune("Hello Niño 漢字テスト 😀😁😂 plain ASCII tail for balance")
	dst := make([]byte, 128)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = EncodeSequence(cps, dst)
	}
}
