// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

// Command bspatch reconstructs newfile from oldfile and a patch produced by
// bsdiff.
//
// Usage: bspatch oldfile newfile patchfile
package main

import (
	"fmt"
	"os"

	"github.com/westlund-embedded/bsdiff"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s oldfile newfile patchfile\n", os.Args[0])
		os.Exit(1)
	}

	oldfile, newfile, patchfile := os.Args[1], os.Args[2], os.Args[3]

	if err := bsdiff.PatchFile(oldfile, newfile, patchfile, nil); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
