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
	"github.com/bufbuild/oxyjs/source"
	"github.com/bufbuild/oxyjs/token"
)

// BinaryOpExpr is a binary operation such as `a + b`.
type BinaryOpExpr struct {
	baseExpr
	Op          token.Token
	Left, Right Expr
}

// NewBinaryOpExpr creates a binary operation. Panics if op is not a binary
// operator or if either operand is nil.
func NewBinaryOpExpr(op token.Token, left, right Expr) *BinaryOpExpr {
	if !op.Kind.IsBinaryOp() {
		invariant(KindBinaryOpExpr, "operator %v is not a binary operator", op.Kind)
	}
	requireExpr(KindBinaryOpExpr, "left operand", left)
	requireExpr(KindBinaryOpExpr, "right operand", right)
	return &BinaryOpExpr{Op: op, Left: left, Right: right}
}

// Kind implements [Node].
func (*BinaryOpExpr) Kind() Kind { return KindBinaryOpExpr }

// Span implements [Node].
func (e *BinaryOpExpr) Span() source.Span {
	return e.Left.Span().Join(e.Right.Span())
}

// CondExpr is a conditional expression, `cond ? then : else`.
type CondExpr struct {
	baseExpr
	Cond, Then, Else Expr
}

// NewCondExpr creates a conditional expression. Panics if any operand is nil.
func NewCondExpr(cond, then, els Expr) *CondExpr {
	requireExpr(KindCondExpr, "condition", cond)
	requireExpr(KindCondExpr, "true branch", then)
	requireExpr(KindCondExpr, "false branch", els)
	return &CondExpr{Cond: cond, Then: then, Else: els}
}

// Kind implements [Node].
func (*CondExpr) Kind() Kind { return KindCondExpr }

// Span implements [Node].
func (e *CondExpr) Span() source.Span {
	return e.Cond.Span().Join(e.Else.Span())
}

// AssignExpr is an assignment, with either `=` or a compound operator such
// as `+=`.
//
// The left side is not checked for being assignable; see the parser's
// CheckAssignTargets option.
type AssignExpr struct {
	baseExpr
	Op          token.Token
	Left, Right Expr
}

// NewAssignExpr creates an assignment. Panics if op is not an assignment
// operator or if either side is nil.
func NewAssignExpr(op token.Token, left, right Expr) *AssignExpr {
	if !op.Kind.IsAssignmentOp() {
		invariant(KindAssignExpr, "operator %v is not an assignment operator", op.Kind)
	}
	requireExpr(KindAssignExpr, "target", left)
	requireExpr(KindAssignExpr, "value", right)
	return &AssignExpr{Op: op, Left: left, Right: right}
}

// Kind implements [Node].
func (*AssignExpr) Kind() Kind { return KindAssignExpr }

// Span implements [Node].
func (e *AssignExpr) Span() source.Span {
	return e.Left.Span().Join(e.Right.Span())
}

// CommaExpr is a pair of expressions joined by the comma operator. Longer
// chains nest to the left.
type CommaExpr struct {
	baseExpr
	Left, Right Expr
}

// NewCommaExpr creates a comma expression. Panics if either side is nil.
func NewCommaExpr(left, right Expr) *CommaExpr {
	requireExpr(KindCommaExpr, "left operand", left)
	requireExpr(KindCommaExpr, "right operand", right)
	return &CommaExpr{Left: left, Right: right}
}

// Kind implements [Node].
func (*CommaExpr) Kind() Kind { return KindCommaExpr }

// Span implements [Node].
func (e *CommaExpr) Span() source.Span {
	return e.Left.Span().Join(e.Right.Span())
}

// NameExpr is a reference to a variable.
type NameExpr struct {
	baseExpr
	Name token.Token
}

// NewNameExpr creates a name reference. Panics if name is not an identifier.
func NewNameExpr(name token.Token) *NameExpr {
	if !name.Kind.IsIdentifier() {
		invariant(KindNameExpr, "token %v is not an identifier", name.Kind)
	}
	return &NameExpr{Name: name}
}

// Kind implements [Node].
func (*NameExpr) Kind() Kind { return KindNameExpr }

// Span implements [Node].
func (e *NameExpr) Span() source.Span { return e.Name.Span }

var (
	_ Expr = (*BinaryOpExpr)(nil)
	_ Expr = (*CondExpr)(nil)
	_ Expr = (*AssignExpr)(nil)
	_ Expr = (*CommaExpr)(nil)
	_ Expr = (*NameExpr)(nil)
)
