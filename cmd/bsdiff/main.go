// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

// Command bsdiff computes a patch transforming oldfile into newfile.
//
// Usage: bsdiff oldfile newfile patchfile
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

	if err := bsdiff.DiffFile(oldfile, newfile, patchfile, nil); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
