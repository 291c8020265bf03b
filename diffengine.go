// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

// ctrlRecord is one (dlen, elen, seek) control triple: spec §3 and §4.4.
type ctrlRecord struct {
	dlen, elen, seek int64
}

// diffResult is the DiffEngine's output: the control-triple stream plus the
// two raw byte streams (diff, extra) PatchWriter compresses independently.
type diffResult struct {
	ctrl []ctrlRecord
	db   []byte
	eb   []byte
}

// runDiffEngine partitions new into approximate-match regions against old
// (indexed by sa) and emits control triples plus the diff/extra byte streams.
// This is the greedy scan-and-extend loop of spec §4.4; it is the algorithmic
// core of the differ and is ported field-for-field from the reference
// implementation's main loop since the spec describes it only in prose.
func runDiffEngine(old, new []byte, sa *SuffixArray) *diffResult {
	oldsize := int64(len(old))
	newsize := int64(len(new))

	result := &diffResult{
		db: make([]byte, 0, newsize),
		eb: make([]byte, 0, newsize),
	}

	var scan, length int64
	var lastscan, lastpos, lastoffset int64
	var pos int64

	for scan < newsize {
		oldscore := int64(0)

		scan += length
		scsc := scan

		for ; scan < newsize; scan++ {
			pos, length = sa.search(new[scan:], 0, oldsize)

			for ; scsc < scan+length; scsc++ {
				if scsc+lastoffset < oldsize && old[scsc+lastoffset] == new[scsc] {
					oldscore++
				}
			}

			if (length == oldscore && length != 0) || length > oldscore+8 {
				break
			}

			if scan+lastoffset < oldsize && old[scan+lastoffset] == new[scan] {
				oldscore--
			}
		}

		if length == oldscore && scan != newsize {
			continue
		}

		// Forward extension from (lastscan, lastpos): the largest i maximizing
		// 2*matched - i over old[lastpos..] vs new[lastscan..].
		var s, sf, lenf int64
		for i := int64(0); lastscan+i < scan && lastpos+i < oldsize; {
			if old[lastpos+i] == new[lastscan+i] {
				s++
			}
			i++
			if s*2-i > sf*2-lenf {
				sf = s
				lenf = i
			}
		}

		// Backward extension from (scan, pos): symmetric, bounded by scan-lastscan
		// and by pos (can't read before old[0]).
		var lenb int64
		if scan < newsize {
			var sb int64
			s = 0
			for i := int64(1); scan >= lastscan+i && pos >= i; i++ {
				if old[pos-i] == new[scan-i] {
					s++
				}
				if s*2-i > sb*2-lenb {
					sb = s
					lenb = i
				}
			}
		}

		// Overlap resolution: if the two extensions claim overlapping new-bytes,
		// sweep the overlap and award each byte to whichever side matches it.
		if lastscan+lenf > scan-lenb {
			overlap := (lastscan + lenf) - (scan - lenb)
			var ss, lens int64
			s = 0
			for i := int64(0); i < overlap; i++ {
				if new[lastscan+lenf-overlap+i] == old[lastpos+lenf-overlap+i] {
					s++
				}
				if new[scan-lenb+i] == old[pos-lenb+i] {
					s--
				}
				if s > ss {
					ss = s
					lens = i + 1
				}
			}

			lenf += lens - overlap
			lenb -= lens
		}

		for i := int64(0); i < lenf; i++ {
			result.db = append(result.db, diffByte(new[lastscan+i], old[lastpos+i]))
		}

		extraLen := (scan - lenb) - (lastscan + lenf)
		for i := int64(0); i < extraLen; i++ {
			result.eb = append(result.eb, new[lastscan+lenf+i])
		}

		// A record emitted at scan == newsize is the last one; the patcher never
		// applies its seek, so it is written as 0 rather than from a stale pos.
		seek := (pos - lenb) - (lastpos + lenf)
		if scan == newsize {
			seek = 0
		}

		result.ctrl = append(result.ctrl, ctrlRecord{
			dlen: lenf,
			elen: extraLen,
			seek: seek,
		})

		lastscan = scan - lenb
		lastpos = pos - lenb
		lastoffset = pos - scan
	}

	return result
}
