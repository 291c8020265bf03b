// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

// Patch file format constants: header layout, magic, and the gzip framing bytes
// each of the three compressed streams begins with.

// Header layout (36 bytes total, see doc.go and spec §6):
//
//	offset  size  contents
//	0       12    magic "JWE/BSDIFF40"
//	12      8     C = compressed length of control stream (signed varint)
//	20      8     D = compressed length of diff stream (signed varint)
//	28      8     N = uncompressed length of reconstructed new file (signed varint)
//	36      C     control stream: gzip(raw = concat of ctrl triples)
//	36+C    D     diff stream: gzip(raw diff bytes)
//	36+C+D  *     extra stream: gzip(raw extra bytes)
const (
	magic         = "JWE/BSDIFF40"
	headerSize    = 36
	magicSize     = 12
	ctrlRecSize   = 24 // 3 varints of 8 bytes each: dlen, elen, seek
	varintSize    = 8
	magicOffset   = 0
	cLenOffset    = 12
	dLenOffset    = 20
	newSizeOffset = 28
)

// gzipHeader is the fixed 10-byte header prefixed to every compressed stream:
// magic (1F 8B), CM=08 (deflate), FLG=00, MTIME=00000000, XFL=04, OS=03.
// See §4.5/§9: CRC32 trailer is elided, matching the source this spec distills.
var gzipHeader = [10]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x03}

// defaultRAMSize is the patcher's default fixed window size (bytes) for each of
// its three windows (old, diff stream, extra stream); control records are read
// 24 bytes at a time. Spec §5.
const defaultRAMSize = 512
