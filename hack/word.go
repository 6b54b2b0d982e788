package hack

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// FormatWord renders a word as 16 binary digits, most significant bit first.
func FormatWord(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

// ParseWord reads the 16-character binary form produced by FormatWord.
func ParseWord(s string) (uint16, error) {
	if len(s) != WordBits {
		return 0, fmt.Errorf("word %q: expected %d binary digits, got %d", s, WordBits, len(s))
	}
	v, err := strconv.ParseUint(s, 2, WordBits)
	if err != nil {
		return 0, fmt.Errorf("word %q: %w", s, err)
	}
	return uint16(v), nil
}

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}

// IsCompute reports whether w carries the compute instruction prefix.
func IsCompute(w uint16) bool {
	return w&ComputePrefix == ComputePrefix
}

// IsAddress reports whether w is an address instruction (top bit clear).
func IsAddress(w uint16) bool {
	return w&ComputeBit == 0
}

// ParseWords reads a text image: one word per line, blank lines ignored.
func ParseWords(text string) ([]uint16, error) {
	var words []uint16
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w, err := ParseWord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		words = append(words, w)
	}
	return words, nil
}
