package bsdiff

import (
	"bytes"
	"testing"
)

func TestBuildSuffixArray_IsPermutationOfPositions(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("banana"),
		[]byte("mississippi"),
		bytes.Repeat([]byte{0}, 64),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, old := range inputs {
		sa := BuildSuffixArray(old)
		n := int64(len(old))

		if int64(len(sa.I)) != n+1 {
			t.Fatalf("I has length %d, want %d", len(sa.I), n+1)
		}

		seen := make([]bool, n+1)
		for _, pos := range sa.I {
			if pos < 0 || pos > n {
				t.Fatalf("I contains out-of-range position %d for input of length %d", pos, n)
			}
			if seen[pos] {
				t.Fatalf("I contains duplicate position %d", pos)
			}
			seen[pos] = true
		}
	}
}

func TestBuildSuffixArray_LexicographicOrder(t *testing.T) {
	old := []byte("mississippi")
	sa := BuildSuffixArray(old)

	for k := 0; k < len(sa.I)-1; k++ {
		a := sa.old[sa.I[k]:]
		b := sa.old[sa.I[k+1]:]

		if !lessOrEqualSuffix(a, b) {
			t.Fatalf("suffix at rank %d (%q) is not <= suffix at rank %d (%q)", k, a, k+1, b)
		}
	}
}

// lessOrEqualSuffix reports whether suffix a sorts at or before suffix b,
// comparing byte-by-byte with the shorter suffix treated as the lesser one
// when it is a strict prefix of the longer (matching qsufsort's "empty
// suffix ranks first" convention).
func lessOrEqualSuffix(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) <= len(b)
}

func TestBuildSuffixArray_EmptySuffixRanksFirst(t *testing.T) {
	old := []byte("abc")
	sa := BuildSuffixArray(old)

	if sa.I[0] != int64(len(old)) {
		t.Fatalf("I[0] = %d, want %d (the empty suffix)", sa.I[0], len(old))
	}
}
