package bsdiff

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/klauspost/compress/flate"
)

func diffInputPairs() []struct {
	name     string
	old, new []byte
} {
	return []struct {
		name     string
		old, new []byte
	}{
		{name: "both-empty", old: nil, new: nil},
		{name: "empty-old", old: nil, new: []byte("hello")},
		{name: "empty-new", old: []byte("hello"), new: nil},
		{name: "identical", old: []byte("abcabcabc"), new: []byte("abcabcabc")},
		{name: "single-byte-change", old: []byte("aaaaaaaaaa"), new: []byte("aaaaaXaaaa")},
		{name: "append", old: []byte("the quick brown fox"), new: []byte("the quick brown fox jumps over")},
		{name: "prepend", old: []byte("jumps over the lazy dog"), new: []byte("the quick fox jumps over the lazy dog")},
		{name: "reorder", old: []byte("one two three four"), new: []byte("four three two one")},
		{name: "repeated-pattern", old: bytes.Repeat([]byte("abc123"), 500), new: bytes.Repeat([]byte("abc124"), 500)},
		{name: "long-run-shift", old: bytes.Repeat([]byte{0xAA}, 4000), new: append(bytes.Repeat([]byte{0xAA}, 4000), 0xBB)},
		{name: "binary-noise", old: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 255, 254}, new: []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2, 3}},
	}
}

func TestDiffPatch_RoundTripAcrossLevels(t *testing.T) {
	levels := []int{flate.NoCompression, flate.BestSpeed, flate.DefaultCompression, flate.BestCompression}

	for _, in := range diffInputPairs() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				patch, err := Diff(in.old, in.new, &DiffOptions{CompressLevel: level})
				if err != nil {
					t.Fatalf("Diff failed: %v", err)
				}

				if len(patch) < headerSize {
					t.Fatalf("patch shorter than header: %d", len(patch))
				}
				if string(patch[magicOffset:magicOffset+magicSize]) != magic {
					t.Fatalf("missing magic: % x", patch[:magicSize])
				}

				out, err := Patch(in.old, patch, nil)
				if err != nil {
					t.Fatalf("Patch failed: %v", err)
				}

				if !bytes.Equal(out, in.new) {
					t.Fatalf("round-trip mismatch: got=%q want=%q", out, in.new)
				}
			})
		}
	}
}

func TestDiff_IdenticalInputRoundTrips(t *testing.T) {
	data := []byte("abcabcabcabcabcabc")

	patch, err := Diff(data, data, nil)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	out, err := Patch(data, patch, nil)
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("identical old/new should round-trip exactly")
	}
}

func TestDiff_EmptyOldRoundTrips(t *testing.T) {
	new := []byte("hello")

	patch, err := Diff(nil, new, nil)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	out, err := Patch(nil, patch, nil)
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if !bytes.Equal(out, new) {
		t.Fatalf("empty-old round-trip mismatch: got=%q want=%q", out, new)
	}
}

func TestDiff_DefaultOptionsUseBestCompression(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	patchDefault, err := Diff(nil, data, nil)
	if err != nil {
		t.Fatalf("Diff default failed: %v", err)
	}

	patchExplicit, err := Diff(nil, data, &DiffOptions{CompressLevel: flate.BestCompression})
	if err != nil {
		t.Fatalf("Diff explicit best-compression failed: %v", err)
	}

	if !bytes.Equal(patchDefault, patchExplicit) {
		t.Fatal("default DiffOptions should match explicit flate.BestCompression")
	}
}
