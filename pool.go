// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import "sync"

// patchBuffers holds the patcher's RAM_SIZE-scaled working buffers (spec §5):
// one window into old, and one decompressed-output window for each of the
// diff/extra streams (the control stream is read in fixed 24-byte records,
// which Apply keeps on the stack instead). Pooling the larger buffers lets a
// caller applying many patches back to back (e.g. a firmware updater retried
// across reboots) avoid reallocating RAM_SIZE*3 bytes every call.
type patchBuffers struct {
	old   []byte
	diff  []byte
	extra []byte
}

var patchBuffersPool = sync.Pool{
	New: func() any {
		return &patchBuffers{}
	},
}

// acquirePatchBuffers gets a patchBuffers from the pool sized for ramSize,
// reallocating its slices only if the pooled instance is the wrong size.
func acquirePatchBuffers(ramSize int) *patchBuffers {
	b := patchBuffersPool.Get().(*patchBuffers)
	if len(b.old) != ramSize {
		b.old = make([]byte, ramSize)
		b.diff = make([]byte, ramSize)
		b.extra = make([]byte, ramSize)
	}
	return b
}

// releasePatchBuffers returns b to the pool. Buffer contents are not zeroed;
// every read path below writes the full window before use.
func releasePatchBuffers(b *patchBuffers) {
	if b == nil {
		return
	}
	patchBuffersPool.Put(b)
}
