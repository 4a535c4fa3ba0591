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

package token

import (
	"fmt"

	"github.com/bufbuild/oxyjs/source"
)

// Token is a single classified lexical unit.
type Token struct {
	Kind Kind
	// The raw source text of the token. Empty for EOF.
	Text string
	Span source.Span
}

// Pos returns the position of the start of this token.
func (t Token) Pos() source.Pos {
	return t.Span.StartPos()
}

// IsZero returns whether this is the zero token, which did not come from
// any source.
func (t Token) IsZero() bool {
	return t == Token{}
}

// String implements [fmt.Stringer]. It returns the token's source text,
// which is how tokens appear in tree strings.
func (t Token) String() string {
	return t.Text
}

// GoString implements [fmt.GoStringer].
func (t Token) GoString() string {
	return fmt.Sprintf("token.Token{%#v, %q, %v}", t.Kind, t.Text, t.Span)
}

// IsIdentifier returns whether this is an identifier that can name a
// variable. Reserved words are not identifiers.
func (k Kind) IsIdentifier() bool {
	return k == Ident
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KeywordBreak && k <= KeywordFalse
}

// IsPunct returns whether this is a punctuator or operator.
func (k Kind) IsPunct() bool {
	return k >= LBrace && k <= CaretAssign
}

// IsLiteral returns whether this is a number or string literal.
func (k Kind) IsLiteral() bool {
	return k == Number || k == String
}

// IsAssignmentOp returns whether this is `=` or one of the compound
// assignment operators, such as `+=`.
func (k Kind) IsAssignmentOp() bool {
	return k >= Assign && k <= CaretAssign
}

// BinaryPrecedence returns how tightly this kind binds as an infix binary
// operator; higher values bind more tightly. Returns zero for kinds that are
// not binary operators.
//
// Assignment, the conditional operator and the comma operator are not
// binary operators in this sense; the parser handles them separately.
func (k Kind) BinaryPrecedence() int {
	switch k {
	case OrOr:
		return 1
	case AndAnd:
		return 2
	case Pipe:
		return 3
	case Caret:
		return 4
	case Amp:
		return 5
	case EqEq, NotEq, EqEqEq, NotEqEq:
		return 6
	case Less, Greater, LessEq, GreaterEq, KeywordInstanceof, KeywordIn:
		return 7
	case Shl, Shr, UShr:
		return 8
	case Plus, Minus:
		return 9
	case Star, Slash, Percent:
		return 10
	default:
		return 0
	}
}

// IsBinaryOp returns whether this kind can appear as the operator of a
// binary expression.
func (k Kind) IsBinaryOp() bool {
	return k.BinaryPrecedence() > 0
}
