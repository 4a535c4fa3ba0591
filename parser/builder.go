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
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/internal/taxa"
	"github.com/bufbuild/oxyjs/lexer"
	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/token"
)

// Builder assembles a syntax tree from the tokens of a single lexer.
//
// A Builder is used for exactly one parse and is not safe for concurrent use.
type Builder struct {
	lx      *lexer.Lexer
	opts    Options
	handler *reporter.Handler // Only for warnings; may be nil.

	cur   token.Token // One token of lookahead.
	depth int
}

// NewBuilder creates a builder that pulls tokens from lx.
func NewBuilder(lx *lexer.Lexer, opts Options) *Builder {
	return &Builder{lx: lx, opts: opts}
}

// ParseProgram consumes the entire token stream and returns the program it
// spells.
//
// The returned error is a [reporter.ErrorWithPos] wrapping either a
// [*lexer.Error] or one of the Err* types of this package.
func (b *Builder) ParseProgram() (*ast.Program, error) {
	if err := b.advance(); err != nil {
		return nil, err
	}

	prog := ast.NewProgram(b.lx.File())
	for b.cur.Kind != token.EOF {
		stmt, err := b.parseStatement(taxa.Program.In())
		if err != nil {
			return nil, err
		}
		prog.AddSourceElement(stmt)
	}
	return prog, nil
}

// advance replaces the lookahead token with the next one from the lexer.
func (b *Builder) advance() error {
	tok, err := b.lx.Next()
	if err != nil {
		return err
	}
	b.cur = tok
	return nil
}

// take returns the lookahead token and advances past it.
func (b *Builder) take() (token.Token, error) {
	tok := b.cur
	return tok, b.advance()
}

// expect consumes a token of the given kind, or fails with an
// [ErrUnexpected] describing the lookahead token.
func (b *Builder) expect(kind token.Kind, where taxa.Place, want taxa.Noun) (token.Token, error) {
	if b.cur.Kind != kind {
		return token.Token{}, b.unexpected(where, want.AsSet())
	}
	return b.take()
}

func (b *Builder) unexpected(where taxa.Place, want taxa.Set) error {
	return reporter.Error(b.cur.Pos(), &ErrUnexpected{Got: b.cur, Where: where, Want: want})
}

// enter records entry into a nested production. Every successful call must be
// paired with a call to exit.
func (b *Builder) enter(what taxa.Noun) error {
	if b.depth >= b.opts.maxDepth() {
		return reporter.Error(b.cur.Pos(), &ErrTooDeep{Limit: b.opts.maxDepth()})
	}
	if b.opts.Trace != nil {
		pos := b.cur.Pos()
		fmt.Fprintf(b.opts.Trace, "%s%v at %d:%d\n", strings.Repeat("  ", b.depth), what, pos.Line, pos.Col)
	}
	b.depth++
	return nil
}

func (b *Builder) exit() {
	b.depth--
}

// parseStatement dispatches on the lookahead token.
func (b *Builder) parseStatement(where taxa.Place) (ast.Stmt, error) {
	switch b.cur.Kind {
	case token.LBrace:
		return b.parseBlock()
	case token.KeywordVar:
		return b.parseVar()
	case token.Semi:
		semi, err := b.take()
		if err != nil {
			return nil, err
		}
		return ast.NewEmptyStmt(semi), nil
	case token.KeywordIf:
		return b.parseIf()
	case token.Ident:
		return b.parseExprStmt()
	default:
		return nil, b.unexpected(where, taxa.Statement.AsSet())
	}
}

func (b *Builder) parseBlock() (ast.Stmt, error) {
	if err := b.enter(taxa.Block); err != nil {
		return nil, err
	}
	defer b.exit()

	lbrace, err := b.take()
	if err != nil {
		return nil, err
	}
	block := ast.NewBlockStmt(lbrace)
	for b.cur.Kind != token.RBrace {
		if b.cur.Kind == token.EOF {
			return nil, b.unexpected(taxa.Block.In(), taxa.NewSet(taxa.Statement, taxa.RBrace))
		}
		stmt, err := b.parseStatement(taxa.Block.In())
		if err != nil {
			return nil, err
		}
		block.AddStmt(stmt)
	}

	block.RBrace, err = b.take()
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (b *Builder) parseVar() (ast.Stmt, error) {
	if err := b.enter(taxa.VarStmt); err != nil {
		return nil, err
	}
	defer b.exit()

	kw, err := b.take()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewVarStmt(kw)
	seen := make(map[string]struct{})
	for {
		name, err := b.expect(token.Ident, taxa.VarStmt.In(), taxa.Ident)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name.Text]; dup && b.handler != nil {
			b.handler.HandleWarning(name.Pos(), fmt.Errorf("variable `%s` is declared more than once in this statement", name.Text))
		}
		seen[name.Text] = struct{}{}
		stmt.AddVariable(name)

		if b.cur.Kind != token.Comma {
			break
		}
		if err := b.advance(); err != nil {
			return nil, err
		}
	}

	if b.cur.Kind != token.Semi {
		return nil, b.unexpected(taxa.VarStmt.In(), taxa.NewSet(taxa.Comma, taxa.Semi))
	}
	if err := b.advance(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (b *Builder) parseIf() (ast.Stmt, error) {
	if err := b.enter(taxa.IfStmt); err != nil {
		return nil, err
	}
	defer b.exit()

	kw, err := b.take()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.LParen, taxa.IfStmt.In(), taxa.LParen); err != nil {
		return nil, err
	}
	cond, err := b.parseExpr(taxa.IfCondition.In())
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.RParen, taxa.IfCondition.In(), taxa.RParen); err != nil {
		return nil, err
	}
	body, err := b.parseStatement(taxa.IfStmt.In())
	if err != nil {
		return nil, err
	}
	return ast.NewIfStmt(kw, cond, body), nil
}

func (b *Builder) parseExprStmt() (ast.Stmt, error) {
	if err := b.enter(taxa.ExprStmt); err != nil {
		return nil, err
	}
	defer b.exit()

	expr, err := b.parseExpr(taxa.ExprStmt.In())
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.Semi, taxa.ExprStmt.In(), taxa.Semi); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(expr), nil
}

// parseExpr parses a full expression, including the comma operator.
func (b *Builder) parseExpr(where taxa.Place) (ast.Expr, error) {
	left, err := b.parseAssign(where)
	if err != nil {
		return nil, err
	}
	for b.cur.Kind == token.Comma {
		if err := b.advance(); err != nil {
			return nil, err
		}
		right, err := b.parseAssign(taxa.CommaExpr.In())
		if err != nil {
			return nil, err
		}
		left = ast.NewCommaExpr(left, right)
	}
	return left, nil
}

// parseAssign parses an assignment expression. Assignment is right
// associative, so the right side is parsed recursively.
func (b *Builder) parseAssign(where taxa.Place) (ast.Expr, error) {
	if err := b.enter(taxa.AssignExpr); err != nil {
		return nil, err
	}
	defer b.exit()

	left, err := b.parseCond(where)
	if err != nil {
		return nil, err
	}
	if !b.cur.Kind.IsAssignmentOp() {
		return left, nil
	}

	if _, isName := left.(*ast.NameExpr); b.opts.CheckAssignTargets && !isName {
		return nil, reporter.Error(left.Span().StartPos(), &ErrInvalidTarget{Target: left})
	}
	op, err := b.take()
	if err != nil {
		return nil, err
	}
	right, err := b.parseAssign(taxa.AssignExpr.In())
	if err != nil {
		return nil, err
	}
	return ast.NewAssignExpr(op, left, right), nil
}

// parseCond parses a conditional expression. Both branches admit a full
// assignment expression.
func (b *Builder) parseCond(where taxa.Place) (ast.Expr, error) {
	cond, err := b.parseBinary(where, 1)
	if err != nil {
		return nil, err
	}
	if b.cur.Kind != token.Question {
		return cond, nil
	}

	if err := b.advance(); err != nil {
		return nil, err
	}
	then, err := b.parseAssign(taxa.CondExpr.In())
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.Colon, taxa.CondExpr.In(), taxa.Colon); err != nil {
		return nil, err
	}
	els, err := b.parseAssign(taxa.CondExpr.In())
	if err != nil {
		return nil, err
	}
	return ast.NewCondExpr(cond, then, els), nil
}

// parseBinary parses a chain of binary operators that bind at least as
// tightly as prec. Operators of equal precedence fold to the left.
func (b *Builder) parseBinary(where taxa.Place, prec int) (ast.Expr, error) {
	left, err := b.parsePrimary(where)
	if err != nil {
		return nil, err
	}
	for {
		next := b.cur.Kind.BinaryPrecedence()
		if next == 0 || next < prec {
			return left, nil
		}

		op, err := b.take()
		if err != nil {
			return nil, err
		}
		right, err := b.parseBinary(taxa.BinaryExpr.In(), next+1)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpr(op, left, right)
	}
}

// parsePrimary parses the operand of an expression, which is always a name.
func (b *Builder) parsePrimary(where taxa.Place) (ast.Expr, error) {
	if b.cur.Kind != token.Ident {
		return nil, b.unexpected(where, taxa.Expr.AsSet())
	}
	name, err := b.take()
	if err != nil {
		return nil, err
	}
	return ast.NewNameExpr(name), nil
}

// IsSyntaxError returns whether err is a lexical or syntax error, as opposed
// to an I/O failure or an error from a [reporter.Reporter].
func IsSyntaxError(err error) bool {
	var (
		lexErr     *lexer.Error
		unexpected *ErrUnexpected
		target     *ErrInvalidTarget
		tooDeep    *ErrTooDeep
	)
	return errors.As(err, &lexErr) ||
		errors.As(err, &unexpected) ||
		errors.As(err, &target) ||
		errors.As(err, &tooDeep)
}
