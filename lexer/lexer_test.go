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

package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
	"github.com/bufbuild/oxyjs/token"
)

type tok struct {
	Kind      token.Kind
	Line, Col int
	Text      string
}

func lexAll(t *testing.T, text string) []tok {
	t.Helper()
	toks, err := Tokens(source.NewStream("test.js", []byte(text)))
	require.NoError(t, err)

	out := make([]tok, len(toks))
	for i, tk := range toks {
		pos := tk.Pos()
		out[i] = tok{tk.Kind, pos.Line, pos.Col, tk.Text}
		assert.Equal(t, tk.Text, tk.Span.Text())
	}
	return out
}

func TestLexer(t *testing.T) {
	t.Parallel()

	got := lexAll(t, `
// comment
/*
 * block comment
 */ var /* inline */ a, $b;
	if (_c) x = y ? z : w;
foo >>>= 0x1F .5 1.25e-3 'it\'s' "q\"q"
ünïcödé if_ instanceof
`)
	want := []tok{
		{token.KeywordVar, 5, 5, "var"},
		{token.Ident, 5, 22, "a"},
		{token.Comma, 5, 23, ","},
		{token.Ident, 5, 25, "$b"},
		{token.Semi, 5, 27, ";"},
		{token.KeywordIf, 6, 9, "if"},
		{token.LParen, 6, 12, "("},
		{token.Ident, 6, 13, "_c"},
		{token.RParen, 6, 15, ")"},
		{token.Ident, 6, 17, "x"},
		{token.Assign, 6, 19, "="},
		{token.Ident, 6, 21, "y"},
		{token.Question, 6, 23, "?"},
		{token.Ident, 6, 25, "z"},
		{token.Colon, 6, 27, ":"},
		{token.Ident, 6, 29, "w"},
		{token.Semi, 6, 30, ";"},
		{token.Ident, 7, 1, "foo"},
		{token.UShrAssign, 7, 5, ">>>="},
		{token.Number, 7, 10, "0x1F"},
		{token.Number, 7, 15, ".5"},
		{token.Number, 7, 18, "1.25e-3"},
		{token.String, 7, 26, `'it\'s'`},
		{token.String, 7, 34, `"q\"q"`},
		{token.Ident, 8, 1, "ünïcödé"},
		{token.Ident, 8, 9, "if_"},
		{token.KeywordInstanceof, 8, 13, "instanceof"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestMaximalMunch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []token.Kind
	}{
		{">>>=", []token.Kind{token.UShrAssign}},
		{">>>", []token.Kind{token.UShr}},
		{">>", []token.Kind{token.Shr}},
		{">", []token.Kind{token.Greater}},
		{">>=>", []token.Kind{token.ShrAssign, token.Greater}},
		{"!==", []token.Kind{token.NotEqEq}},
		{"!=!", []token.Kind{token.NotEq, token.Bang}},
		{"====", []token.Kind{token.EqEqEq, token.Assign}},
		{"a+++b", []token.Kind{token.Ident, token.PlusPlus, token.Plus, token.Ident}},
		{"a&&=b", []token.Kind{token.Ident, token.AndAnd, token.Assign, token.Ident}},
		{"x/y/=z", []token.Kind{token.Ident, token.Slash, token.Ident, token.SlashAssign, token.Ident}},
		{"a.b", []token.Kind{token.Ident, token.Dot, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			var got []token.Kind
			for _, tk := range lexAll(t, tt.input) {
				got = append(got, tk.Kind)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	got := lexAll(t, "a \v\f\uFEFF\u00A0\u3000\u2028b\r\nc")
	assert.Equal(t, []tok{
		{token.Ident, 1, 1, "a"},
		{token.Ident, 2, 1, "b"},
		{token.Ident, 3, 1, "c"},
	}, got)

	got = lexAll(t, "a\rb\u2029c")
	assert.Equal(t, []tok{
		{token.Ident, 1, 1, "a"},
		{token.Ident, 2, 1, "b"},
		{token.Ident, 3, 1, "c"},
	}, got)
}

func TestEOFForever(t *testing.T) {
	t.Parallel()

	l := New(source.NewStream("test.js", []byte("a // trailing")))
	first, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Ident, first.Kind)

	for range 3 {
		eof, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, eof.Kind)
		assert.Empty(t, eof.Text)
		assert.Equal(t, 13, eof.Span.Start)
	}

	empty := New(source.NewStream("empty.js", nil))
	eof, err := empty.Next()
	require.NoError(t, err)
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, "empty.js:1:1", eof.Pos().String())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		pos    string
		reason string
	}{
		{"a #", "test.js:1:3", "illegal character '#'"},
		{"a @b", "test.js:1:3", "illegal character '@'"},
		{"a\n  /* never closed", "test.js:2:3", "unterminated block comment"},
		{"x = 'abc", "test.js:1:5", "unterminated string literal"},
		{"x = \"abc\ndef\"", "test.js:1:5", "unterminated string literal"},
		{"x = 'abc\\", "test.js:1:5", "unterminated string literal"},
		{"3in", "test.js:1:1", "malformed number literal `3in`"},
		{"0x", "test.js:1:1", "malformed number literal `0x`"},
		{"0xfg", "test.js:1:1", "malformed number literal `0xfg`"},
		{"1e+", "test.js:1:1", "malformed number literal `1e+`"},
		{"a \xff", "test.js:1:3", "invalid UTF-8 byte 0xff"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := Tokens(source.NewStream("test.js", []byte(tt.input)))
			require.Error(t, err)

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Equal(t, tt.pos, ewp.GetPosition().String())

			var lexErr *Error
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.reason, lexErr.Reason)
		})
	}
}

func TestContinueAfterError(t *testing.T) {
	t.Parallel()

	l := New(source.NewStream("test.js", []byte("# a")))
	_, err := l.Next()
	require.Error(t, err)

	tk, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tk.Text)
}
