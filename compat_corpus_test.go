package bsdiff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_BsdiffFixtureCorpus applies every patch in
// testdata/corpus/*.patch against its paired old/new fixture files, skipping
// cleanly when the corpus directory isn't present (it isn't checked in; it's
// an optional local fixture set mirroring ref/lzokay-native-rs in the teacher
// repo's compat_corpus_test.go).
func TestCompatibility_BsdiffFixtureCorpus(t *testing.T) {
	corpusDir := filepath.Join("testdata", "corpus")

	if _, err := os.Stat(corpusDir); err != nil {
		t.Skipf("bsdiff fixture corpus not found: %v", err)
	}

	entries, err := os.ReadDir(corpusDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", corpusDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".patch" {
			continue
		}

		testName := entry.Name()
		t.Run(testName, func(t *testing.T) {
			baseName := testName[:len(testName)-len(".patch")]

			patchPath := filepath.Join(corpusDir, testName)
			oldPath := filepath.Join(corpusDir, baseName+".old")
			newPath := filepath.Join(corpusDir, baseName+".new")

			patchData, err := os.ReadFile(patchPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", patchPath, err)
			}
			oldData, err := os.ReadFile(oldPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", oldPath, err)
			}
			wantNew, err := os.ReadFile(newPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", newPath, err)
			}

			out, err := Patch(oldData, patchData, nil)
			if err != nil {
				t.Fatalf("Patch(%q): %v", testName, err)
			}

			if !bytes.Equal(out, wantNew) {
				t.Fatalf("decoded mismatch for %q: got=%d want=%d", testName, len(out), len(wantNew))
			}
		})
	}
}
