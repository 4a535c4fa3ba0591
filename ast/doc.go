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

// Package ast defines the syntax tree produced by the parser.
//
// The tree is a closed family of node types: [Program] at the root, five
// statement types implementing [Stmt], and five expression types implementing
// [Expr]. Each node exclusively owns its children; nodes are never shared
// between trees and the tree never contains cycles.
//
// Nodes should be created with the New* functions in this package rather than
// with struct literals. The constructors check the invariants that the type
// system cannot express, such as a [NameExpr] being built from an identifier,
// and panic with an [*InvariantError] when they are violated. Such a panic is
// always a bug in the caller, never a problem with the parsed source.
//
// [TreeString] renders a tree in a canonical, deterministic textual form that
// tests and tools can compare exactly.
package ast

//go:generate go run github.com/bufbuild/oxyjs/internal/enum kind.yaml
