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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/btree"
)

// TabstopWidth is the number of columns a tab advances to, for the purposes
// of computing column numbers.
const TabstopWidth = 8

// File is the contents of a source file, along with an index of where each
// of its lines starts.
//
// Lines are registered incrementally by the [Stream] scanning the file, so
// positions are only meaningful for offsets the stream has already reached.
type File struct {
	name string
	text string

	// Keys are the byte offsets at which lines begin; values are the 1-based
	// line numbers. The first line always starts at offset zero.
	lines btree.Map[int, int]
	last  int
}

// NewFile creates a new file with the given name and contents.
func NewFile(name string, data []byte) *File {
	f := &File{name: name, text: string(data)}
	f.lines.Set(0, 1)
	return f
}

// Name returns the file's name. May be empty.
func (f *File) Name() string {
	return f.name
}

// Text returns the file's entire contents.
func (f *File) Text() string {
	return f.text
}

// Len returns the size of the file in bytes.
func (f *File) Len() int {
	return len(f.text)
}

// AddLine records that a new line begins at offset. Offsets must be added in
// strictly increasing order.
func (f *File) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.text) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.text)))
	}
	if offset <= f.last {
		panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, f.last))
	}

	f.lines.Set(offset, f.lines.Len()+1)
	f.last = offset
}

// lineStart returns the offset of the start of the line containing offset,
// and that line's number.
func (f *File) lineStart(offset int) (start, line int) {
	iter := f.lines.Iter()
	if !iter.Seek(offset) {
		iter.Last()
	} else if iter.Key() > offset {
		iter.Prev()
	}
	return iter.Key(), iter.Value()
}

// Pos converts a byte offset into a position.
func (f *File) Pos(offset int) Pos {
	offset = min(max(offset, 0), len(f.text))
	start, line := f.lineStart(offset)

	col := 0
	for _, r := range f.text[start:offset] {
		if r == '\t' {
			col += TabstopWidth - (col % TabstopWidth)
		} else {
			col++
		}
	}

	return Pos{
		Filename: f.name,
		Offset:   offset,
		Line:     line,
		Col:      col + 1,
	}
}

// lineTerminators are the runes that end a line. CRLF counts as one.
const lineTerminators = "\n\r\u2028\u2029"

// LineStart returns the byte offset at which the line containing offset
// begins.
//
// Unlike [File.Pos], this does not depend on which lines have been
// registered, so it works for any offset in the file.
func (f *File) LineStart(offset int) int {
	offset = min(max(offset, 0), len(f.text))
	text := f.text[:offset]
	for {
		i := strings.LastIndexAny(text, lineTerminators)
		if i < 0 {
			return 0
		}
		if f.text[i] == '\r' && strings.HasPrefix(f.text[i+1:], "\n") {
			// offset is on the LF of a CRLF.
			text = text[:i]
			continue
		}
		_, n := utf8.DecodeRuneInString(f.text[i:])
		return i + n
	}
}

// LineText returns the text of the line containing offset, without its
// line terminator.
func (f *File) LineText(offset int) string {
	line := f.text[f.LineStart(offset):]
	if end := strings.IndexAny(line, lineTerminators); end >= 0 {
		line = line[:end]
	}
	return line
}

// Span returns the span for the given byte range of this file.
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: start, End: end}
}

// Pos is a user-displayable location within a source file.
type Pos struct {
	Filename string
	// The byte offset of this position.
	Offset int
	// Line and column, both 1-based. A zero Line means the position is
	// unknown.
	Line, Col int
}

// IsValid returns whether this position refers to an actual location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
func (p Pos) String() string {
	switch {
	case !p.IsValid() && p.Filename == "":
		return "<unknown>"
	case !p.IsValid():
		return p.Filename
	case p.Filename == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
	}
}

// Span is a byte range within a [File].
type Span struct {
	*File
	Start, End int
}

// IsZero returns whether this is the zero span, which refers to no file.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the source text covered by this span.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.File.text[s.Start:s.End]
}

// StartPos returns the position of the first byte of this span.
func (s Span) StartPos() Pos {
	if s.IsZero() {
		return Pos{}
	}
	return s.File.Pos(s.Start)
}

// EndPos returns the position just past the last byte of this span.
func (s Span) EndPos() Pos {
	if s.IsZero() {
		return Pos{}
	}
	return s.File.Pos(s.End)
}

// Len returns the length of this span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Join returns the smallest span covering both s and other. Zero spans are
// ignored.
func (s Span) Join(other Span) Span {
	switch {
	case s.IsZero():
		return other
	case other.IsZero():
		return s
	}
	return Span{File: s.File, Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	end := s.EndPos()
	return fmt.Sprintf("%v-%d:%d", s.StartPos(), end.Line, end.Col)
}
