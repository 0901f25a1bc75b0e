package scan

import (
	"testing"
)

// naiveIndexByte is the reference the backends must agree with.
func naiveIndexByte(haystack []byte, c byte) int {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == c {
			return i
		}
	}
	return -1
}

func naiveIndex(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		ok := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

func TestIndexByteMatchesNaiveScan(t *testing.T) {
	haystacks := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("abcabc"),
		[]byte("aaaaaab"),
		[]byte{0x00, 0xff, 0x00, 0xff},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, h := range haystacks {
		for c := 0; c < 256; c++ {
			want := naiveIndexByte(h, byte(c))
			if got := IndexByte(h, byte(c)); got != want {
				t.Errorf("IndexByte(%q, %#x) = %d, want %d", h, c, got, want)
			}
		}
	}
}

func TestIndexMatchesNaiveScan(t *testing.T) {
	cases := []struct {
		haystack, needle string
	}{
		{"", ""},
		{"", "a"},
		{"a", ""},
		{"abc", "abc"},
		{"abc", "abcd"},
		{"abcabc", "cab"},
		{"aaaaab", "aab"},
		{"mississippi", "issip"},
		{"mississippi", "ssippx"},
		{"xxxxxxxxxxxxxxxxxxxxy", "xy"},
	}
	for _, tc := range cases {
		h, n := []byte(tc.haystack), []byte(tc.needle)
		want := naiveIndex(h, n)
		if got := Index(h, n); got != want {
			t.Errorf("Index(%q, %q) = %d, want %d", tc.haystack, tc.needle, got, want)
		}
	}
}

func TestIndexFunc(t *testing.T) {
	isUpper := func(b byte) bool { return 'A' <= b && b <= 'Z' }

	t.Run("found", func(t *testing.T) {
		if got := IndexFunc([]byte("abCd"), isUpper); got != 2 {
			t.Errorf("IndexFunc = %d, want 2", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if got := IndexFunc([]byte("abcd"), isUpper); got != -1 {
			t.Errorf("IndexFunc = %d, want -1", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := IndexFunc(nil, isUpper); got != -1 {
			t.Errorf("IndexFunc = %d, want -1", got)
		}
	})
}
