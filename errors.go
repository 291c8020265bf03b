// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import "errors"

// Sentinel errors for Diff and Patch.
var (
	// ErrEmptyPatch is returned when Patch is called with an empty patch slice.
	// PatchReader and PatchFile report an empty patch as ErrShortPatch.
	ErrEmptyPatch = errors.New("empty patch")
	// ErrShortPatch is returned when the patch is shorter than the 36-byte header.
	ErrShortPatch = errors.New("corrupt patch: shorter than header")
	// ErrBadMagic is returned when the header magic does not match "JWE/BSDIFF40".
	ErrBadMagic = errors.New("corrupt patch: bad magic")
	// ErrNegativeLength is returned when a header length field (C, D, or newsize) is negative.
	ErrNegativeLength = errors.New("corrupt patch: negative length in header")
	// ErrCorruptPatch is returned for control-stream arithmetic overruns, short
	// decompressed reads, or any other internal inconsistency while applying a patch.
	// Use errors.Is(err, ErrCorruptPatch) to detect any of these.
	ErrCorruptPatch = errors.New("corrupt patch")
	// ErrSizeMismatch is returned, wrapped together with ErrCorruptPatch, when a
	// control record's dlen or elen would carry the output past the header's
	// newsize. A control stream that ends before newsize bytes are produced is
	// reported as a short read (ErrCorruptPatch only).
	ErrSizeMismatch = errors.New("corrupt patch: size mismatch")

	// ErrVarintOverflow is returned when a decoded varint magnitude exceeds 63 bits.
	ErrVarintOverflow = errors.New("varint magnitude exceeds 63 bits")

	// ErrOptionsRequired is returned when an operation needing explicit options gets nil
	// where a zero value would not be a safe default.
	ErrOptionsRequired = errors.New("options required")
)
