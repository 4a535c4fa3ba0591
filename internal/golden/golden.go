// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs table-driven tests whose table lives in the file
// system: every input file under a directory is one test case, and each of
// its expected outputs sits next to it in a file with an extra extension.
//
// Setting the corpus's refresh environment variable to a glob rewrites the
// expected outputs of matching cases instead of comparing against them:
//
//	OXYJS_REFRESH='**' go test ./parser
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The environment variable holding the refresh glob. If empty, refreshing
	// is disabled.
	Refresh string

	// The extension (without a dot) of the files that define test cases,
	// e.g. "js".
	Extension string

	// The outputs of each test case. A missing output file is treated as
	// expecting the empty string, and refreshing an empty output deletes its
	// file.
	Outputs []Output

	// Test runs one case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected output of a test case.
type Output struct {
	// The extension appended to the case's file name: for "foo.js" and an
	// extension of "tree", the expected output is read from "foo.js.tree".
	Extension string

	// Compares the outputs. If nil, they must match byte for byte.
	Compare Compare
}

// Compare compares an output against its expectation. It returns the empty
// string if they match and a human-readable explanation otherwise.
type Compare func(got, want string) string

// Run runs every case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: cannot walk %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("golden: no .%s files found in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: cannot read input %q: %v", path, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d results for %d outputs", len(results), len(c.Outputs))
			}

			doRefresh := false
			if refresh != "" {
				doRefresh, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				outPath := path + "." + output.Extension
				if doRefresh {
					if err := write(outPath, results[i]); err != nil {
						t.Errorf("golden: cannot refresh %q: %v", outPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: cannot read output %q: %v", outPath, err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, msg)
				}
			}
		})
	}

	if refresh != "" {
		// A refresh never counts as a passing run.
		t.Errorf("golden: refreshed test data because %s=%s", c.Refresh, refresh)
	}
}

func write(path, content string) error {
	if content == "" {
		err := os.Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// Diff is the default [Compare]: an exact match, reported as a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	if diff == "" {
		// Only possible when the strings differ in a way SplitLines hides.
		return fmt.Sprintf("want %q, got %q", want, got)
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
