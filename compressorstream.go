// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// writeCompressorStream writes one independently-framed gzip(DEFLATE) block: a
// fixed 10-byte header (gzipHeader), a raw DEFLATE body, and no trailer (spec
// §9: the CRC32/ISIZE trailer is elided, matching the source this spec
// distills). Three of these, one per stream, are concatenated with no shared
// state so the patcher can open three parallel readers into one file.
//
// This is the only place the module reaches past the teacher's dependency-free
// style: the DEFLATE body is produced by github.com/klauspost/compress/flate
// rather than hand-rolled, since spec §1 explicitly pins the wire shape to
// gzip-framed DEFLATE and treats the codec as "out of scope" to reimplement.
func writeCompressorStream(w io.Writer, raw []byte, level int) (compressedLen int64, err error) {
	var buf bytes.Buffer
	buf.Write(gzipHeader[:])

	fw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return 0, fmt.Errorf("bsdiff: flate.NewWriter: %w", err)
	}

	if _, err := fw.Write(raw); err != nil {
		return 0, fmt.Errorf("bsdiff: compress stream: %w", err)
	}
	if err := fw.Close(); err != nil {
		return 0, fmt.Errorf("bsdiff: compress stream: %w", err)
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return 0, err
	}

	return int64(n), nil
}

// decompressorStream reads a CompressorStream's framing (10-byte gzip header,
// skipped/validated, then a raw DEFLATE body) from r. It returns a reader that
// yields decompressed bytes; r must be positioned at the start of the header.
type decompressorStream struct {
	fr io.ReadCloser
}

// newDecompressorStream opens a decompressor over r, which must be positioned
// at the start of a CompressorStream's 10-byte gzip header.
func newDecompressorStream(r io.Reader) (*decompressorStream, error) {
	var hdr [10]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("bsdiff: %w: reading gzip header: %v", ErrCorruptPatch, err)
	}

	if hdr[0] != gzipHeader[0] || hdr[1] != gzipHeader[1] || hdr[2] != gzipHeader[2] {
		return nil, fmt.Errorf("bsdiff: %w: bad gzip header", ErrCorruptPatch)
	}

	return &decompressorStream{fr: flate.NewReader(r)}, nil
}

// Read implements io.Reader.
func (d *decompressorStream) Read(p []byte) (int, error) {
	return d.fr.Read(p)
}

// ReadFull reads exactly len(p) decompressed bytes into p, translating any
// short read into ErrCorruptPatch (spec §4.6: "any short read from a
// decompressed stream ... is reported as corrupt patch").
func (d *decompressorStream) ReadFull(p []byte) error {
	_, err := io.ReadFull(d, p)
	if err != nil {
		return fmt.Errorf("bsdiff: %w: short read from stream: %v", ErrCorruptPatch, err)
	}
	return nil
}

// Close releases the underlying flate reader.
func (d *decompressorStream) Close() error {
	return d.fr.Close()
}
