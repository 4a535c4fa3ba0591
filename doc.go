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

// Package oxyjs is the entry point for parsing many source files at once.
//
// The front end itself lives in subpackages:
//
//   - source: a forward-only cursor over a file's bytes, and positions.
//   - lexer: turns a stream into tokens.
//   - parser: turns tokens into a syntax tree.
//   - ast: the syntax tree, and its canonical tree-string rendering.
//   - reporter: position-carrying errors and their handling.
//
// This package ties them together. A [Compiler] uses a [Resolver] to locate
// the contents of each requested file, then parses the files in parallel.
// Each file is parsed by its own stream, lexer and builder, so a failure in
// one file never affects the result of another.
//
// # Resolvers
//
// A Resolver answers a query for a file name with either source code, which
// the compiler parses, or an already-built [ast.Program], which is used as-is.
// A minimal Compiler that reads files relative to the current working
// directory is:
//
//	compiler := oxyjs.Compiler{
//		Resolver: &oxyjs.SourceResolver{},
//	}
//
// By default the compiler uses one goroutine per CPU core and stops reporting
// at the first error in each file.
package oxyjs
