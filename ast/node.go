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

package ast

import (
	"fmt"

	"github.com/bufbuild/oxyjs/source"
)

// Node is a node in the syntax tree.
//
// Implemented by [*Program] and by every [Stmt] and [Expr]. User code should
// not attempt to implement this interface.
type Node interface {
	// Kind returns which variant this node is.
	Kind() Kind
	// IsStatement returns whether this node is a statement. At most one of
	// IsStatement and IsExpression is true; both are false for [*Program].
	IsStatement() bool
	// IsExpression returns whether this node is an expression.
	IsExpression() bool
	// Span returns the range of source text this node was parsed from.
	Span() source.Span

	node()
}

// Stmt is a statement.
//
// Implemented by [*BlockStmt], [*VarStmt], [*EmptyStmt], [*IfStmt] and
// [*ExprStmt].
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
//
// Implemented by [*BinaryOpExpr], [*CondExpr], [*AssignExpr], [*CommaExpr]
// and [*NameExpr].
type Expr interface {
	Node
	exprNode()
}

type baseStmt struct{}

func (baseStmt) IsStatement() bool  { return true }
func (baseStmt) IsExpression() bool { return false }
func (baseStmt) node()              {}
func (baseStmt) stmtNode()          {}

type baseExpr struct{}

func (baseExpr) IsStatement() bool  { return false }
func (baseExpr) IsExpression() bool { return true }
func (baseExpr) node()              {}
func (baseExpr) exprNode()          {}

// InvariantError is the value a constructor in this package panics with
// when it is handed an impossible combination of children or tokens.
type InvariantError struct {
	// The kind of node that was being constructed.
	Kind   Kind
	Reason string
}

// Error implements [error].
func (e *InvariantError) Error() string {
	return fmt.Sprintf("ast: invalid %v: %s", e.Kind, e.Reason)
}

func invariant(kind Kind, format string, args ...any) {
	panic(&InvariantError{Kind: kind, Reason: fmt.Sprintf(format, args...)})
}

func requireStmt(kind Kind, what string, s Stmt) {
	if s == nil {
		invariant(kind, "%s is nil", what)
	}
}

func requireExpr(kind Kind, what string, e Expr) {
	if e == nil {
		invariant(kind, "%s is nil", what)
	}
}
