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

// Program is the root of a syntax tree: the ordered list of top-level
// statements of a file.
type Program struct {
	Elements []Stmt
	// The file the program was parsed from. May be nil for a program that
	// was built by hand.
	File *source.File
}

// NewProgram creates an empty program for the given file.
func NewProgram(file *source.File) *Program {
	return &Program{File: file}
}

// AddSourceElement appends a top-level statement.
func (p *Program) AddSourceElement(s Stmt) {
	requireStmt(KindProgram, "source element", s)
	p.Elements = append(p.Elements, s)
}

// Kind implements [Node].
func (*Program) Kind() Kind { return KindProgram }

// IsStatement implements [Node].
func (*Program) IsStatement() bool { return false }

// IsExpression implements [Node].
func (*Program) IsExpression() bool { return false }

func (*Program) node() {}

// Span implements [Node]. An empty program has a zero span.
func (p *Program) Span() source.Span {
	var span source.Span
	for _, s := range p.Elements {
		span = span.Join(s.Span())
	}
	return span
}

// BlockStmt is a braced list of statements.
type BlockStmt struct {
	baseStmt
	LBrace, RBrace token.Token
	Stmts          []Stmt
}

// NewBlockStmt creates an empty block opened by lbrace. The closing brace is
// recorded in RBrace once it has been parsed.
func NewBlockStmt(lbrace token.Token) *BlockStmt {
	return &BlockStmt{LBrace: lbrace}
}

// AddStmt appends a statement to the block.
func (b *BlockStmt) AddStmt(s Stmt) {
	requireStmt(KindBlockStmt, "statement", s)
	b.Stmts = append(b.Stmts, s)
}

// Kind implements [Node].
func (*BlockStmt) Kind() Kind { return KindBlockStmt }

// Span implements [Node].
func (b *BlockStmt) Span() source.Span {
	return b.LBrace.Span.Join(b.RBrace.Span)
}

// VarStmt is a variable declaration without initializers, such as
// `var x, y;`.
type VarStmt struct {
	baseStmt
	Keyword token.Token
	// The declared names, in source order. Duplicates are permitted.
	Names []token.Token
}

// NewVarStmt creates a declaration with no names yet.
func NewVarStmt(keyword token.Token) *VarStmt {
	return &VarStmt{Keyword: keyword}
}

// AddVariable appends a declared name. Panics if name is not an identifier.
func (v *VarStmt) AddVariable(name token.Token) {
	if !name.Kind.IsIdentifier() {
		invariant(KindVarStmt, "variable name is %v, not an identifier", name.Kind)
	}
	v.Names = append(v.Names, name)
}

// Kind implements [Node].
func (*VarStmt) Kind() Kind { return KindVarStmt }

// Span implements [Node].
func (v *VarStmt) Span() source.Span {
	span := v.Keyword.Span
	if n := len(v.Names); n > 0 {
		span = span.Join(v.Names[n-1].Span)
	}
	return span
}

// EmptyStmt is a lone `;`.
type EmptyStmt struct {
	baseStmt
	Semi token.Token
}

// NewEmptyStmt creates an empty statement.
func NewEmptyStmt(semi token.Token) *EmptyStmt {
	return &EmptyStmt{Semi: semi}
}

// Kind implements [Node].
func (*EmptyStmt) Kind() Kind { return KindEmptyStmt }

// Span implements [Node].
func (e *EmptyStmt) Span() source.Span { return e.Semi.Span }

// IfStmt is an `if` statement. There is no else branch.
type IfStmt struct {
	baseStmt
	Keyword token.Token
	Cond    Expr
	Body    Stmt
}

// NewIfStmt creates an if statement. Panics if cond or body is nil.
func NewIfStmt(keyword token.Token, cond Expr, body Stmt) *IfStmt {
	requireExpr(KindIfStmt, "condition", cond)
	requireStmt(KindIfStmt, "body", body)
	return &IfStmt{Keyword: keyword, Cond: cond, Body: body}
}

// Kind implements [Node].
func (*IfStmt) Kind() Kind { return KindIfStmt }

// Span implements [Node].
func (s *IfStmt) Span() source.Span {
	return s.Keyword.Span.Join(s.Body.Span())
}

// ExprStmt is an expression evaluated for its effects.
type ExprStmt struct {
	baseStmt
	Expr Expr
}

// NewExprStmt creates an expression statement. Panics if expr is nil.
func NewExprStmt(expr Expr) *ExprStmt {
	requireExpr(KindExprStmt, "expression", expr)
	return &ExprStmt{Expr: expr}
}

// Kind implements [Node].
func (*ExprStmt) Kind() Kind { return KindExprStmt }

// Span implements [Node].
func (s *ExprStmt) Span() source.Span { return s.Expr.Span() }

var (
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*VarStmt)(nil)
	_ Stmt = (*EmptyStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Node = (*Program)(nil)
)
