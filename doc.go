// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/westlund-embedded/bsdiff

/*
Package bsdiff implements a binary differential patch format: a differ that
computes a compact patch describing how to transform an old byte sequence
into a new one, and a patcher that reconstructs new from old plus the patch.

The differ builds a suffix array over old (qsufsort, Larsson–Sadakane
doubling), greedily scans new looking for approximate matches against old,
and emits a stream of control triples plus two byte streams (diff and
extra). The three streams are gzip-framed independently so the patcher can
open three parallel readers into one patch file without buffering.

The patcher is a small state machine: it never materializes old or new in
memory, streaming both through a fixed RAM_SIZE window instead. This makes
it suitable for RAM-constrained firmware-update targets.

# Diff

	patch, err := bsdiff.Diff(old, new, nil)

# Patch

	out, err := bsdiff.Patch(old, patch, nil)

Reader/file convenience wrappers (Diff/DiffReader/DiffFile and
Patch/PatchReader/PatchFile) are in api.go.
*/
package bsdiff
