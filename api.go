// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

import (
	"bytes"
	"io"
	"os"
)

// Diff computes a patch transforming old into new: build the suffix array
// over old, run the greedy scan-and-extend loop, then assemble the three
// gzip-framed streams behind the 36-byte header (spec §4.2–§4.5). Unlike the
// patcher, the differ needs old and new fully in memory (spec §3: "RAM cost is
// accepted on the builder side").
func Diff(old, new []byte, opts *DiffOptions) ([]byte, error) {
	opts = opts.orDefault()

	sa := BuildSuffixArray(old)
	result := runDiffEngine(old, new, sa)

	return assemblePatch(result, int64(len(new)), opts.CompressLevel)
}

// DiffReader reads oldR and newR to completion, then calls Diff.
func DiffReader(oldR, newR io.Reader, opts *DiffOptions) ([]byte, error) {
	old, err := io.ReadAll(oldR)
	if err != nil {
		return nil, err
	}

	newb, err := io.ReadAll(newR)
	if err != nil {
		return nil, err
	}

	return Diff(old, newb, opts)
}

// DiffFile reads oldfile and newfile and writes the resulting patch to
// patchfile.
func DiffFile(oldfile, newfile, patchfile string, opts *DiffOptions) error {
	old, err := os.ReadFile(oldfile)
	if err != nil {
		return err
	}

	newb, err := os.ReadFile(newfile)
	if err != nil {
		return err
	}

	patch, err := Diff(old, newb, opts)
	if err != nil {
		return err
	}

	return os.WriteFile(patchfile, patch, 0o644)
}

// Patch reconstructs new from old and patch, both fully in memory. It is a
// thin wrapper over the RAM_SIZE-windowed Patcher in patcher.go; callers with
// RAM constraints should use PatchReader/PatchFile instead, which never hold
// a full copy of new.
func Patch(old, patch []byte, opts *PatchOptions) ([]byte, error) {
	if len(patch) == 0 {
		return nil, ErrEmptyPatch
	}

	oldR := bytes.NewReader(old)
	patchR := bytes.NewReader(patch)

	var out bytes.Buffer
	if err := patchCore(oldR, int64(len(old)), patchR, int64(len(patch)), &out, opts); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// PatchReader applies the patch read from patchR (io.ReaderAt so three
// independent stream cursors can be opened into it, per spec §4.6) against
// oldR, writing the reconstructed new to newW as it's produced. oldSize and
// patchSize must be the exact byte lengths behind oldR and patchR.
func PatchReader(oldR io.ReaderAt, oldSize int64, patchR io.ReaderAt, patchSize int64, newW io.Writer, opts *PatchOptions) error {
	return patchCore(oldR, oldSize, patchR, patchSize, newW, opts)
}

// PatchFile applies patchfile to oldfile, writing the result to newfile.
func PatchFile(oldfile, newfile, patchfile string, opts *PatchOptions) error {
	oldF, err := os.Open(oldfile)
	if err != nil {
		return err
	}
	defer oldF.Close()

	oldInfo, err := oldF.Stat()
	if err != nil {
		return err
	}

	patchF, err := os.Open(patchfile)
	if err != nil {
		return err
	}
	defer patchF.Close()

	patchInfo, err := patchF.Stat()
	if err != nil {
		return err
	}

	newF, err := os.Create(newfile)
	if err != nil {
		return err
	}

	if err := PatchReader(oldF, oldInfo.Size(), patchF, patchInfo.Size(), newF, opts); err != nil {
		newF.Close()
		return err
	}

	return newF.Close()
}
