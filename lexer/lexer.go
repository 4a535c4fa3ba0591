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

// Package lexer turns a [source.Stream] into a sequence of [token.Token]
// values.
//
// The lexer is pull based: each call to [Lexer.Next] scans exactly one token.
// Whitespace and comments are skipped. Once the input is exhausted, every
// further call returns an EOF token.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
	"github.com/bufbuild/oxyjs/token"
)

// Error is a lexical error. It is always delivered wrapped in a
// [reporter.ErrorWithPos] that points at the offending input.
type Error struct {
	Reason string
}

// Error implements [error].
func (e *Error) Error() string {
	return e.Reason
}

// Lexer scans tokens out of a stream.
//
// A Lexer owns its stream and is not safe for concurrent use.
type Lexer struct {
	in  *source.Stream
	eof *token.Token
}

// New creates a lexer that reads from s.
func New(s *source.Stream) *Lexer {
	return &Lexer{in: s}
}

// File returns the file being scanned.
func (l *Lexer) File() *source.File {
	return l.in.File()
}

// Next scans and returns the next token.
//
// On a lexical error, the returned error is a [reporter.ErrorWithPos] wrapping
// an [*Error]. The offending input has been consumed, so scanning may
// continue after an error, although the parser never does.
func (l *Lexer) Next() (token.Token, error) {
	if l.eof != nil {
		return *l.eof, nil
	}

	for {
		l.in.Mark()
		c := l.in.Next()

		switch {
		case c == source.EOF:
			eof := token.Token{Kind: token.EOF, Span: l.in.MarkedSpan()}
			l.eof = &eof
			return eof, nil

		case isWhitespace(c):
			continue

		case c == '/' && l.in.Peek() == '/':
			l.skipLineComment()
			continue

		case c == '/' && l.in.Peek() == '*':
			l.in.Next()
			if !l.skipBlockComment() {
				return token.Token{}, l.errorf("unterminated block comment")
			}
			continue

		case isIdentStart(c):
			l.readIdentifier()
			text := l.in.Marked()
			kind, ok := token.Lookup(text)
			if !ok || !kind.IsKeyword() {
				kind = token.Ident
			}
			return l.token(kind), nil

		case isDecimalDigit(c), c == '.' && isDecimalDigit(l.in.Peek()):
			return l.readNumber(c)

		case c == '\'' || c == '"':
			return l.readString(c)

		default:
			return l.readPunct(c)
		}
	}
}

// token builds a token of the given kind out of the marked text.
func (l *Lexer) token(kind token.Kind) token.Token {
	return token.Token{
		Kind: kind,
		Text: l.in.Marked(),
		Span: l.in.MarkedSpan(),
	}
}

// errorf builds an error positioned at the start of the marked text.
func (l *Lexer) errorf(format string, args ...any) reporter.ErrorWithPos {
	pos := l.in.MarkedSpan().StartPos()
	return reporter.Error(pos, &Error{Reason: fmt.Sprintf(format, args...)})
}

func (l *Lexer) skipLineComment() {
	for c := l.in.Peek(); c != source.EOF && !isLineTerminator(c); c = l.in.Peek() {
		l.in.Next()
	}
}

func (l *Lexer) skipBlockComment() bool {
	for {
		switch l.in.Next() {
		case source.EOF:
			return false
		case '*':
			if l.in.Peek() == '/' {
				l.in.Next()
				return true
			}
		}
	}
}

func (l *Lexer) readIdentifier() {
	for isIdentPart(l.in.Peek()) {
		l.in.Next()
	}
}

// readNumber scans a decimal or hexadecimal number literal whose first rune
// c has already been consumed.
func (l *Lexer) readNumber(c rune) (token.Token, error) {
	var digits int
	switch {
	case c == '0' && (l.in.Peek() == 'x' || l.in.Peek() == 'X'):
		l.in.Next()
		for isHexDigit(l.in.Peek()) {
			l.in.Next()
			digits++
		}
		if digits == 0 {
			return l.malformedNumber()
		}

	default:
		if c != '.' {
			digits++
			digits += l.readDigits()
			if l.in.Peek() == '.' {
				l.in.Next()
			}
		}
		digits += l.readDigits()

		if p := l.in.Peek(); p == 'e' || p == 'E' {
			l.in.Next()
			if p := l.in.Peek(); p == '+' || p == '-' {
				l.in.Next()
			}
			if l.readDigits() == 0 {
				return l.malformedNumber()
			}
		}
	}

	if isIdentPart(l.in.Peek()) {
		return l.malformedNumber()
	}
	return l.token(token.Number), nil
}

func (l *Lexer) readDigits() int {
	var n int
	for isDecimalDigit(l.in.Peek()) {
		l.in.Next()
		n++
	}
	return n
}

// malformedNumber consumes the rest of a bad number literal and reports it.
func (l *Lexer) malformedNumber() (token.Token, error) {
	l.readIdentifier()
	return token.Token{}, l.errorf("malformed number literal `%s`", l.in.Marked())
}

// readString scans a string literal whose opening quote has already been
// consumed.
func (l *Lexer) readString(quote rune) (token.Token, error) {
	for {
		c := l.in.Next()
		switch {
		case c == quote:
			return l.token(token.String), nil
		case c == source.EOF, isLineTerminator(c):
			return token.Token{}, l.errorf("unterminated string literal")
		case c == '\\':
			// An escaped line terminator is a line continuation.
			esc := l.in.Next()
			if esc == source.EOF {
				return token.Token{}, l.errorf("unterminated string literal")
			}
			if esc == '\r' && l.in.Peek() == '\n' {
				l.in.Next()
			}
		}
	}
}

// readPunct scans a punctuator whose first rune c has already been consumed,
// taking the longest spelling that is a valid punctuator.
func (l *Lexer) readPunct(c rune) (token.Token, error) {
	kind, ok := token.Lookup(string(c))
	if !ok || !kind.IsPunct() {
		return token.Token{}, l.illegal(c)
	}

	var buf strings.Builder
	buf.WriteRune(c)
	for {
		next := l.in.Peek()
		if next == source.EOF {
			break
		}
		k, ok := token.Lookup(buf.String() + string(next))
		if !ok {
			break
		}
		buf.WriteRune(next)
		l.in.Next()
		kind = k
	}
	return l.token(kind), nil
}

func (l *Lexer) illegal(c rune) reporter.ErrorWithPos {
	if text := l.in.Marked(); c == utf8.RuneError && len(text) == 1 {
		return l.errorf("invalid UTF-8 byte 0x%02x", text[0])
	}
	return l.errorf("illegal character %q", c)
}

// Tokens scans s to the end, returning every token before EOF.
func Tokens(s *source.Stream) ([]token.Token, error) {
	l := New(s)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}
	return isLineTerminator(c) || unicode.Is(unicode.Zs, c)
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == '\u2028' || c == '\u2029'
}

func isIdentStart(c rune) bool {
	return c == '$' || c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) ||
		unicode.IsDigit(c) ||
		unicode.In(c, unicode.Mn, unicode.Mc, unicode.Pc) ||
		c == '\u200C' || c == '\u200D'
}

func isDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
