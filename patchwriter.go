// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import "bytes"

// assemblePatch writes the 36-byte header plus the three independently
// gzip-framed streams (control, diff, extra), then rewrites the header with
// the real compressed lengths once they're known. Spec §4.5.
func assemblePatch(result *diffResult, newsize int64, level int) ([]byte, error) {
	var out bytes.Buffer

	header := make([]byte, headerSize)
	copy(header[magicOffset:], magic)
	putVarint64(header[cLenOffset:cLenOffset+varintSize], 0)
	putVarint64(header[dLenOffset:dLenOffset+varintSize], 0)
	putVarint64(header[newSizeOffset:newSizeOffset+varintSize], newsize)
	out.Write(header)

	ctrlRaw := make([]byte, 0, len(result.ctrl)*ctrlRecSize)
	for _, c := range result.ctrl {
		var rec [ctrlRecSize]byte
		putVarint64(rec[0:varintSize], c.dlen)
		putVarint64(rec[varintSize:2*varintSize], c.elen)
		putVarint64(rec[2*varintSize:3*varintSize], c.seek)
		ctrlRaw = append(ctrlRaw, rec[:]...)
	}

	cLen, err := writeCompressorStream(&out, ctrlRaw, level)
	if err != nil {
		return nil, err
	}

	dLen, err := writeCompressorStream(&out, result.db, level)
	if err != nil {
		return nil, err
	}

	if _, err := writeCompressorStream(&out, result.eb, level); err != nil {
		return nil, err
	}

	patch := out.Bytes()
	putVarint64(patch[cLenOffset:cLenOffset+varintSize], cLen)
	putVarint64(patch[dLenOffset:dLenOffset+varintSize], dLen)

	return patch, nil
}
