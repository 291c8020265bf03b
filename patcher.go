// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import (
	"errors"
	"fmt"
	"io"
)

// Patcher applies a patch to old, writing new through a fixed RAM_SIZE window
// per spec §4.6/§5: it never holds all of old or new in memory at once. old
// and the patch are both accessed as io.ReaderAt so the patcher can open three
// independent, non-overlapping byte-range readers into the patch (control,
// diff, extra) without sharing a read cursor, and can window into old at
// arbitrary offsets without reading it sequentially from the start.
type Patcher struct {
	oldR    io.ReaderAt
	oldSize int64

	ctrl  *decompressorStream
	diff  *decompressorStream
	extra *decompressorStream

	ramSize int64
	buffers *patchBuffers
}

// NewPatcher parses the 36-byte header from patchR (spec §6) and opens the
// three compressed-stream readers at the offsets the header implies. It
// returns the Patcher and the target newsize.
func NewPatcher(oldR io.ReaderAt, oldSize int64, patchR io.ReaderAt, patchSize int64, opts *PatchOptions) (*Patcher, int64, error) {
	opts = opts.orDefault()

	if patchSize < headerSize {
		return nil, 0, ErrShortPatch
	}

	var hdr [headerSize]byte
	if _, err := patchR.ReadAt(hdr[:], 0); err != nil {
		return nil, 0, fmt.Errorf("bsdiff: %w: reading header: %v", ErrShortPatch, err)
	}

	if string(hdr[magicOffset:magicOffset+magicSize]) != magic {
		return nil, 0, ErrBadMagic
	}

	cLen := getVarint64(hdr[cLenOffset : cLenOffset+varintSize])
	dLen := getVarint64(hdr[dLenOffset : dLenOffset+varintSize])
	newsize := getVarint64(hdr[newSizeOffset : newSizeOffset+varintSize])

	if cLen < 0 || dLen < 0 || newsize < 0 {
		return nil, 0, ErrNegativeLength
	}

	extraLen := patchSize - headerSize - cLen - dLen
	if extraLen < 0 {
		return nil, 0, fmt.Errorf("bsdiff: %w: header lengths exceed patch size", ErrShortPatch)
	}

	ctrlStream, err := newDecompressorStream(io.NewSectionReader(patchR, headerSize, cLen))
	if err != nil {
		return nil, 0, err
	}

	diffStream, err := newDecompressorStream(io.NewSectionReader(patchR, headerSize+cLen, dLen))
	if err != nil {
		ctrlStream.Close()
		return nil, 0, err
	}

	extraStream, err := newDecompressorStream(io.NewSectionReader(patchR, headerSize+cLen+dLen, extraLen))
	if err != nil {
		ctrlStream.Close()
		diffStream.Close()
		return nil, 0, err
	}

	ramSize := int64(opts.RAMSize)

	return &Patcher{
		oldR:    oldR,
		oldSize: oldSize,
		ctrl:    ctrlStream,
		diff:    diffStream,
		extra:   extraStream,
		ramSize: ramSize,
		buffers: acquirePatchBuffers(int(ramSize)),
	}, newsize, nil
}

// Close releases the Patcher's pooled buffers and decompressor state. Safe to
// call once after Apply returns, on both the success and error paths.
func (p *Patcher) Close() error {
	releasePatchBuffers(p.buffers)
	p.buffers = nil

	return errors.Join(p.ctrl.Close(), p.diff.Close(), p.extra.Close())
}

// Apply runs the control-triple interpreter (spec §4.6) until newW has
// received newsize bytes, windowing old and the diff/extra streams through
// RAM_SIZE buffers rather than ever materializing new in memory.
func (p *Patcher) Apply(newW io.Writer, newsize int64) error {
	var oldpos, newpos int64
	var ctrlBuf [ctrlRecSize]byte

	for newpos < newsize {
		if err := p.ctrl.ReadFull(ctrlBuf[:]); err != nil {
			return err
		}

		dlen := getVarint64(ctrlBuf[0:varintSize])
		elen := getVarint64(ctrlBuf[varintSize : 2*varintSize])
		seek := getVarint64(ctrlBuf[2*varintSize : 3*varintSize])

		if dlen < 0 || elen < 0 {
			return fmt.Errorf("bsdiff: %w: negative ctrl length", ErrCorruptPatch)
		}

		if newpos+dlen > newsize {
			return fmt.Errorf("bsdiff: %w: dlen overruns newsize: %w", ErrCorruptPatch, ErrSizeMismatch)
		}

		for dlen > 0 {
			k := dlen
			if k > p.ramSize {
				k = p.ramSize
			}

			oldWindow := p.buffers.old[:k]
			if err := p.readOldWindow(oldWindow, oldpos); err != nil {
				return err
			}

			diffWindow := p.buffers.diff[:k]
			if err := p.diff.ReadFull(diffWindow); err != nil {
				return err
			}

			for i := int64(0); i < k; i++ {
				oldWindow[i] = patchByte(oldWindow[i], diffWindow[i])
			}

			if _, err := newW.Write(oldWindow); err != nil {
				return err
			}

			newpos += k
			oldpos += k
			dlen -= k
		}

		if newpos+elen > newsize {
			return fmt.Errorf("bsdiff: %w: elen overruns newsize: %w", ErrCorruptPatch, ErrSizeMismatch)
		}

		for elen > 0 {
			k := elen
			if k > p.ramSize {
				k = p.ramSize
			}

			extraWindow := p.buffers.extra[:k]
			if err := p.extra.ReadFull(extraWindow); err != nil {
				return err
			}

			if _, err := newW.Write(extraWindow); err != nil {
				return err
			}

			newpos += k
			elen -= k
		}

		oldpos += seek
	}

	return nil
}

// readOldWindow fills buf with old[oldpos:oldpos+len(buf)], treating any part
// of that range outside [0, oldSize) as zero (spec §4.6 step 3).
func (p *Patcher) readOldWindow(buf []byte, oldpos int64) error {
	for i := range buf {
		buf[i] = 0
	}

	lo, hi := oldpos, oldpos+int64(len(buf))
	if lo < 0 {
		lo = 0
	}
	if hi > p.oldSize {
		hi = p.oldSize
	}
	if hi <= lo {
		return nil
	}

	off := lo - oldpos
	if _, err := p.oldR.ReadAt(buf[off:off+(hi-lo)], lo); err != nil {
		return fmt.Errorf("bsdiff: reading old: %w", err)
	}

	return nil
}

// patchCore runs one full NewPatcher+Apply+Close cycle, the shared core behind
// Patch/PatchReader/PatchFile in api.go.
func patchCore(oldR io.ReaderAt, oldSize int64, patchR io.ReaderAt, patchSize int64, newW io.Writer, opts *PatchOptions) error {
	p, newsize, err := NewPatcher(oldR, oldSize, patchR, patchSize, opts)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Apply(newW, newsize)
}
