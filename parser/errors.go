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

	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/internal/taxa"
	"github.com/bufbuild/oxyjs/token"
)

// ErrUnexpected is a syntax error for a token that cannot start or continue
// the production being parsed.
//
// It is always delivered wrapped in a [reporter.ErrorWithPos] positioned at
// the unexpected token.
type ErrUnexpected struct {
	// The offending token. Has kind [token.EOF] if the input ended early.
	Got token.Token
	// The production that was being parsed.
	Where taxa.Place
	// What would have been accepted instead. May be empty.
	Want taxa.Set
}

// Error implements [error].
func (e *ErrUnexpected) Error() string {
	msg := "unexpected " + taxa.Describe(e.Got)
	if !e.Where.IsZero() {
		msg += " " + e.Where.String()
	}
	if e.Want.Len() > 0 {
		msg += "; expected " + e.Want.Join("or")
	}
	return msg
}

// ErrInvalidTarget is reported when [Options.CheckAssignTargets] is set and
// the left side of an assignment is not a plain name.
type ErrInvalidTarget struct {
	Target ast.Expr
}

// Error implements [error].
func (e *ErrInvalidTarget) Error() string {
	return fmt.Sprintf("invalid assignment target: cannot assign to %v", kindNoun(e.Target.Kind()))
}

// ErrTooDeep is reported when productions nest deeper than
// [Options.MaxDepth].
type ErrTooDeep struct {
	Limit int
}

// Error implements [error].
func (e *ErrTooDeep) Error() string {
	return fmt.Sprintf("nesting exceeds the maximum depth of %d", e.Limit)
}

func kindNoun(k ast.Kind) taxa.Noun {
	switch k {
	case ast.KindBinaryOpExpr:
		return taxa.BinaryExpr
	case ast.KindCondExpr:
		return taxa.CondExpr
	case ast.KindAssignExpr:
		return taxa.AssignExpr
	case ast.KindCommaExpr:
		return taxa.CommaExpr
	case ast.KindNameExpr:
		return taxa.Ident
	default:
		return taxa.Expr
	}
}
