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

// Package parser builds a syntax tree out of a token stream.
//
// The parser is a hand-written recursive descent parser with one token of
// lookahead. Binary operators are parsed by precedence climbing. The parser
// stops at the first lexical or syntax error; it does not try to recover.
//
// The entry points are [Parse], which reads a whole file, and [Builder], for
// callers that already hold a [lexer.Lexer].
package parser
