// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import "github.com/klauspost/compress/flate"

// DiffOptions configures Diff. CompressLevel is passed straight through to the
// underlying flate writer for all three streams (control, diff, extra); it does
// not affect the differ's match-finding, which spec §4.4 fixes as a single
// deterministic algorithm (unlike the teacher's LZO1X-999, bsdiff has no
// tunable "levels" for the search itself).
type DiffOptions struct {
	// CompressLevel is a flate.NoCompression..flate.BestCompression value (or
	// flate.DefaultCompression). Zero value (0) is flate.NoCompression, which is
	// rarely what's wanted, so DefaultDiffOptions sets BestCompression.
	CompressLevel int
}

// DefaultDiffOptions returns options using flate's best-compression level, the
// same choice the original C implementation makes for its bzip2 stream.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{CompressLevel: flate.BestCompression}
}

func (o *DiffOptions) orDefault() *DiffOptions {
	if o == nil {
		return DefaultDiffOptions()
	}
	return o
}

// PatchOptions configures Patch. RAMSize is the fixed window size (bytes) used
// for the old-file read window and for the diff and extra decompressed-stream
// buffers (the control stream is read one 24-byte record at a time; spec §5);
// it has no effect on correctness, only on memory
// footprint and syscall/read count.
type PatchOptions struct {
	// RAMSize is the patcher's fixed buffer size. 0 uses defaultRAMSize (512).
	RAMSize int
}

// DefaultPatchOptions returns options using the spec's default 512-byte window.
func DefaultPatchOptions() *PatchOptions {
	return &PatchOptions{RAMSize: defaultRAMSize}
}

func (o *PatchOptions) orDefault() *PatchOptions {
	if o == nil {
		return DefaultPatchOptions()
	}
	if o.RAMSize <= 0 {
		return &PatchOptions{RAMSize: defaultRAMSize}
	}
	return o
}
