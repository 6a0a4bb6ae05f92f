package cipher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		shift int
		want  string
	}{
		{"basic", "abcXYZ", 3, "defABC"},
		{"wraparound", "xyz", 3, "abc"},
		{"zero shift", "Hello", 0, "Hello"},
		{"negative shift", "abc", -1, "zab"},
		{"full turn", "Hello", 26, "Hello"},
		{"beyond 26", "abc", 29, "def"},
		{"large negative", "def", -29, "abc"},
		{"passes through non-letters", "a1 b2, c3!", 1, "b1 c2, d3!"},
		{"passes through non-latin letters", "čaša", 1, "čbšb"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in, tt.shift))
		})
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "abcXYZ", Decode("defABC", 3))
	assert.Equal(t, Encode("Hello, World!", -3), Decode("Hello, World!", 3))
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"The quick brown fox jumps over the lazy dog.",
		"MiXeD CaSe 123 !@# \t\n",
		"email a.b@example.com, date 05-06-24",
	}
	shifts := []int{0, 1, 3, -3, 13, 25, 26, 27, -52, 1000, -1001, math.MaxInt32, -math.MaxInt32}
	for _, text := range texts {
		for _, shift := range shifts {
			assert.Equal(t, text, Decode(Encode(text, shift), shift), "shift %d", shift)
		}
	}
}

func TestEncode_PreservesLength(t *testing.T) {
	in := "Zebra crossing at 10:45, near the café."
	assert.Equal(t, len([]rune(in)), len([]rune(Encode(in, DefaultShift))))
}
