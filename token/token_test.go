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

package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/oxyjs/token"
)

func allKinds() []token.Kind {
	var kinds []token.Kind
	for k := token.Kind(0); !strings.HasPrefix(k.String(), "Kind("); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func TestAllStringify(t *testing.T) {
	t.Parallel()

	kinds := allKinds()
	assert.Len(t, kinds, int(token.CaretAssign)+1)
	for _, k := range kinds {
		assert.NotEqual(t, "", k.String())
		assert.NotEqual(t, "", k.GoString())
	}
	assert.Equal(t, "Kind(255)", token.Kind(255).String())
	assert.Equal(t, "token.Kind(255)", token.Kind(255).GoString())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, k := range allKinds() {
		got, ok := token.Lookup(k.String())
		switch k {
		case token.EOF, token.Ident, token.Number, token.String:
			assert.False(t, ok, "%#v", k)
		default:
			assert.True(t, ok, "%#v", k)
			assert.Equal(t, k, got)
		}
	}

	_, ok := token.Lookup("let")
	assert.False(t, ok)
	_, ok = token.Lookup("**")
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	var assigns, keywords, puncts int
	for _, k := range allKinds() {
		if k.IsAssignmentOp() {
			assigns++
			assert.True(t, k.IsPunct())
			assert.False(t, k.IsBinaryOp(), "%#v", k)
		}
		if k.IsKeyword() {
			keywords++
			assert.False(t, k.IsIdentifier())
		}
		if k.IsPunct() {
			puncts++
		}
		assert.False(t, k.IsKeyword() && k.IsPunct(), "%#v", k)
	}
	assert.Equal(t, 12, assigns)
	assert.Equal(t, 36, keywords)
	assert.Equal(t, 48, puncts)

	assert.True(t, token.Ident.IsIdentifier())
	assert.True(t, token.Number.IsLiteral())
	assert.True(t, token.String.IsLiteral())
	assert.False(t, token.KeywordVar.IsIdentifier())
	assert.False(t, token.EqEq.IsAssignmentOp())

	assert.Equal(t, 0, token.Assign.BinaryPrecedence())
	assert.Equal(t, 0, token.Comma.BinaryPrecedence())
	assert.Equal(t, 0, token.Question.BinaryPrecedence())
	assert.Less(t, token.OrOr.BinaryPrecedence(), token.AndAnd.BinaryPrecedence())
	assert.Less(t, token.EqEq.BinaryPrecedence(), token.Less.BinaryPrecedence())
	assert.Less(t, token.Plus.BinaryPrecedence(), token.Star.BinaryPrecedence())
	assert.Equal(t, token.Less.BinaryPrecedence(), token.KeywordInstanceof.BinaryPrecedence())
	assert.Equal(t, token.Plus.BinaryPrecedence(), token.Minus.BinaryPrecedence())
}

func TestToken(t *testing.T) {
	t.Parallel()

	tok := token.Token{Kind: token.Ident, Text: "foo"}
	assert.Equal(t, "foo", tok.String())
	assert.False(t, tok.IsZero())
	assert.True(t, token.Token{}.IsZero())
	assert.False(t, tok.Pos().IsValid())
}
