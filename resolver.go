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

package oxyjs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bufbuild/oxyjs/ast"
)

// ErrNotFound is returned by resolvers that have nothing for a path.
var ErrNotFound = errors.New("file not found")

// Resolver locates the contents of files to be parsed.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a [Resolver] found for a path. Exactly one field
// should be set; if both are, Program wins.
type SearchResult struct {
	// Source code to be parsed. If it implements [io.Closer], the compiler
	// closes it once it has been read.
	Source io.Reader
	// A program that was parsed earlier. If its File is set, the file's name
	// must match the requested path.
	Program *ast.Program
}

// ResolverFunc is a simple function type that implements [Resolver].
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements [Resolver].
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver tries each of its resolvers in order, returning the first
// successful result. If all fail, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements [Resolver].
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, ErrNotFound
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver loads source code from a file system.
type SourceResolver struct {
	// Directories to search, in order. If empty, paths are opened as given.
	ImportPaths []string
	// Opens a file. Defaults to [os.Open].
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements [Resolver].
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 {
		reader, err := r.open(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, importPath := range r.ImportPaths {
		reader, err := r.open(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	if r.Accessor != nil {
		return r.Accessor(path)
	}
	return os.Open(path)
}
