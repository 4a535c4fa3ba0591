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

package parser

import (
	"fmt"
	"io"

	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/lexer"
	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
)

// DefaultMaxDepth is the nesting limit used when [Options.MaxDepth] is not
// positive.
const DefaultMaxDepth = 1000

// Options configures a [Builder].
type Options struct {
	// If set, the left side of every assignment must be a name; anything else
	// is reported as an [ErrInvalidTarget]. By default assignment targets are
	// not checked at all.
	CheckAssignTargets bool

	// The maximum nesting of statements and expressions. Deeper input is
	// rejected with an [ErrTooDeep] instead of growing the stack without
	// bound. Defaults to [DefaultMaxDepth].
	MaxDepth int

	// If non-nil, a line is written here each time the parser enters a
	// production, indented by nesting depth.
	Trace io.Writer
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse reads all of r and parses it as a program.
//
// The first lexical or syntax error is passed to handler, and Parse returns
// whatever [reporter.Handler.Error] returns afterwards. Warnings, such as a
// variable declared twice in one statement, also go to handler.
//
// If handler is nil, a handler that fails on the first error is used.
func Parse(filename string, r io.Reader, handler *reporter.Handler, opts Options) (*ast.Program, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, handler.HandleError(fmt.Errorf("reading %s: %w", filename, err))
	}
	return ParseStream(source.NewStream(filename, data), handler, opts)
}

// ParseStream is like [Parse], but for input that is already in memory.
// The caller keeps access to s.File(), which is useful for rendering errors.
func ParseStream(s *source.Stream, handler *reporter.Handler, opts Options) (*ast.Program, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}

	b := NewBuilder(lexer.New(s), opts)
	b.handler = handler

	prog, err := b.ParseProgram()
	if err != nil {
		_ = handler.HandleError(err)
		return nil, handler.Error()
	}
	return prog, handler.Error()
}
