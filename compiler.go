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
	"context"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/parser"
	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
)

// Compiler parses many source files concurrently.
//
// Each file is parsed on its own goroutine by its own stream, lexer and
// builder. Nothing is shared between files except the Reporter, so it must
// be safe for concurrent use if it keeps state.
type Compiler struct {
	// Resolves path names into source code or already-parsed programs. This
	// field is the only required field.
	Resolver Resolver
	// The maximum number of files parsed at once. If unspecified or set to a
	// non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails a file after its first error and
	// ignores all warnings.
	//
	// Every file gets its own [reporter.Handler] around this reporter, so an
	// error returned for one file never causes another file to fail.
	Reporter reporter.Reporter
	// Options for the parser, applied to every file.
	Options parser.Options
}

// Result is the outcome of parsing one file.
type Result struct {
	// The path, exactly as passed to [Compiler.Compile].
	Path string
	// The parsed program, or nil if Err is set.
	Program *ast.Program
	// The file the program was parsed from. This is set even when parsing
	// failed, as long as the source could be read, so errors can be rendered
	// with [reporter.Render].
	File *source.File
	// The reason this file failed, if it did.
	Err error
}

// InternalError is the error for a file whose parse panicked. The panic is
// confined to that file; other files are unaffected.
type InternalError struct {
	Path  string
	Value any
	Stack []byte
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error while parsing %s: %v", e.Path, e.Value)
}

// Unwrap returns the panic value if it is an error, such as an
// [*ast.InvariantError].
func (e *InternalError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Compile parses the given files. A result is returned for every file, in
// the same order, even when some of them fail. The returned error is the
// first failure in that order, or nil if every file was parsed.
//
// If the same path is given more than once it is only parsed once, and the
// results share the same program.
//
// If ctx is cancelled, files that have not started parsing yet fail with
// the context's error. A parse that has already started always runs to
// completion.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		c:       c,
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	pending := make([]*result, len(files))
	for i, f := range files {
		pending[i] = e.compile(ctx, f)
	}

	var firstErr error
	results := make([]Result, len(files))
	for i, r := range pending {
		<-r.ready
		results[i] = Result{
			Path:    files[i],
			Program: r.prog,
			File:    r.file,
			Err:     r.err,
		}
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}
	return results, firstErr
}

type result struct {
	ready chan struct{}
	prog  *ast.Program
	file  *source.File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(prog *ast.Program) {
	r.prog = prog
	close(r.ready)
}

type executor struct {
	c *Compiler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	defer func() {
		if p := recover(); p != nil {
			r.fail(&InternalError{Path: file, Value: p, Stack: debug.Stack()})
		}
	}()

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// if results included a result, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	prog, err := e.parse(file, sr, r)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(prog)
}

func (e *executor) parse(name string, sr SearchResult, r *result) (*ast.Program, error) {
	switch {
	case sr.Program != nil:
		if sr.Program.File != nil && sr.Program.File.Name() != name {
			return nil, fmt.Errorf("search result for %q returned program for %q", name, sr.Program.File.Name())
		}
		r.file = sr.Program.File
		return sr.Program, nil
	case sr.Source != nil:
		data, err := io.ReadAll(sr.Source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		s := source.NewStream(name, data)
		r.file = s.File()
		return parser.ParseStream(s, reporter.NewHandler(e.c.Reporter), e.c.Options)
	default:
		return nil, fmt.Errorf("search result for %q returned nothing", name)
	}
}
