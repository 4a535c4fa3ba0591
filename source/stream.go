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

package source

import (
	"bytes"
	"unicode/utf8"
)

// EOF is returned by [Stream.Peek] and [Stream.Next] once the stream is
// exhausted.
const EOF rune = -1

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Stream is a forward-only cursor over the runes of a [File].
//
// Malformed UTF-8 is decoded one byte at a time as [utf8.RuneError]; it is up
// to the caller to decide whether that is an error.
type Stream struct {
	file *File
	pos  int
	mark int
}

// NewStream creates a stream over data. If data begins with a UTF-8 byte
// order mark, it is dropped, and offsets are relative to the remaining bytes.
func NewStream(name string, data []byte) *Stream {
	data = bytes.TrimPrefix(data, utf8BOM)
	return &Stream{file: NewFile(name, data)}
}

// File returns the file this stream scans.
func (s *Stream) File() *File {
	return s.file
}

// Done returns whether the stream has been exhausted.
func (s *Stream) Done() bool {
	return s.pos >= len(s.file.text)
}

// Peek returns the current rune without consuming it.
func (s *Stream) Peek() rune {
	r, _ := s.decode()
	return r
}

// Next consumes the current rune and returns it.
func (s *Stream) Next() rune {
	r, n := s.decode()
	if n == 0 {
		return EOF
	}
	s.pos += n
	switch r {
	case '\r':
		// A CR starts a line unless it is the first half of a CRLF.
		if s.Peek() != '\n' {
			s.file.AddLine(s.pos)
		}
	case '\n', '\u2028', '\u2029':
		s.file.AddLine(s.pos)
	}
	return r
}

// Offset returns the byte offset of the current rune.
func (s *Stream) Offset() int {
	return s.pos
}

// Pos returns the position of the current rune.
func (s *Stream) Pos() Pos {
	return s.file.Pos(s.pos)
}

// Mark records the current offset as the start of the text returned by
// [Stream.Marked].
func (s *Stream) Mark() {
	s.mark = s.pos
}

// Marked returns the text between the last call to [Stream.Mark] and the
// current offset.
func (s *Stream) Marked() string {
	return s.file.text[s.mark:s.pos]
}

// MarkedSpan is like [Stream.Marked], but returns a span.
func (s *Stream) MarkedSpan() Span {
	return s.file.Span(s.mark, s.pos)
}

func (s *Stream) decode() (rune, int) {
	if s.Done() {
		return EOF, 0
	}
	if c := s.file.text[s.pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s.file.text[s.pos:])
}
