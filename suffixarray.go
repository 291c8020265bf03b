// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

// SuffixArray is a qsufsort (Larsson–Sadakane doubling) suffix array over an
// old byte sequence. I[k] is the starting position in old of the suffix that
// ranks k-th in lexicographic order; I[0] == len(old) (the empty suffix ranks
// first). Spec §4.2.
type SuffixArray struct {
	old []byte
	I   []int64
}

// BuildSuffixArray constructs the suffix array of old. Complexity is
// O(n log² n) time, O(n) auxiliary space for the working vector V, which is
// discarded before this function returns (spec §3 lifecycle: "V ... discarded
// after construction").
func BuildSuffixArray(old []byte) *SuffixArray {
	n := int64(len(old))
	I := make([]int64, n+1)
	V := make([]int64, n+1)

	// Bucket-sort suffixes by their first byte.
	var buckets [256]int64
	for i := int64(0); i < n; i++ {
		buckets[old[i]]++
	}
	for i := 1; i < 256; i++ {
		buckets[i] += buckets[i-1]
	}
	for i := 255; i > 0; i-- {
		buckets[i] = buckets[i-1]
	}
	buckets[0] = 0

	for i := int64(0); i < n; i++ {
		buckets[old[i]]++
		I[buckets[old[i]]] = i
	}
	I[0] = n

	for i := int64(0); i < n; i++ {
		V[i] = buckets[old[i]]
	}
	V[n] = 0

	// Singleton first-byte buckets are already fully sorted: mark with the -1
	// run sentinel so the doubling loop below skips over them immediately.
	for i := 1; i < 256; i++ {
		if buckets[i] == buckets[i-1]+1 {
			I[buckets[i]] = -1
		}
	}
	I[0] = -1

	for h := int64(1); I[0] != -(n + 1); h += h {
		var runLen int64
		var i int64
		for i = 0; i < n+1; {
			if I[i] < 0 {
				// Negative entry: a run of already-sorted suffixes of length -I[i].
				// Accumulate it into the pending run and skip past it.
				runLen -= I[i]
				i -= I[i]
			} else {
				if runLen != 0 {
					I[i-runLen] = -runLen
					runLen = 0
				}

				groupLen := V[I[i]] + 1 - i
				split(I, V, i, groupLen, h)
				i += groupLen
			}
		}

		if runLen != 0 {
			I[i-runLen] = -runLen
		}
	}

	for i := int64(0); i < n+1; i++ {
		I[V[i]] = i
	}

	return &SuffixArray{old: old, I: I}
}

// split performs a ternary (three-way) quicksort-style partition of
// I[start:start+length) by key V[I[k]+h], following Larsson–Sadakane. Blocks
// smaller than 16 use a selection sort; the equal-key block is collapsed to a
// single new group rank (the rightmost index of the block) and recursion
// continues on the less-than and greater-than partitions.
func split(I, V []int64, start, length, h int64) {
	if length < 16 {
		for k := start; k < start+length; {
			j := int64(1)
			x := V[I[k]+h]

			for i := int64(1); k+i < start+length; i++ {
				if V[I[k+i]+h] < x {
					x = V[I[k+i]+h]
					j = 0
				}
				if V[I[k+i]+h] == x {
					I[k+i], I[k+j] = I[k+j], I[k+i]
					j++
				}
			}

			for i := int64(0); i < j; i++ {
				V[I[k+i]] = k + j - 1
			}
			if j == 1 {
				I[k] = -1
			}

			k += j
		}

		return
	}

	pivot := V[I[start+length/2]+h]
	jj, kk := int64(0), int64(0)
	for i := start; i < start+length; i++ {
		if V[I[i]+h] < pivot {
			jj++
		}
		if V[I[i]+h] == pivot {
			kk++
		}
	}
	jj += start
	kk += jj

	i, j, k := start, int64(0), int64(0)
	for i < jj {
		switch {
		case V[I[i]+h] < pivot:
			i++
		case V[I[i]+h] == pivot:
			I[i], I[jj+j] = I[jj+j], I[i]
			j++
		default:
			I[i], I[kk+k] = I[kk+k], I[i]
			k++
		}
	}

	for jj+j < kk {
		if V[I[jj+j]+h] == pivot {
			j++
		} else {
			I[jj+j], I[kk+k] = I[kk+k], I[jj+j]
			k++
		}
	}

	if jj > start {
		split(I, V, start, jj-start, h)
	}

	for i := int64(0); i < kk-jj; i++ {
		V[I[jj+i]] = kk - 1
	}
	if jj == kk-1 {
		I[jj] = -1
	}

	if start+length > kk {
		split(I, V, kk, start+length-kk, h)
	}
}
