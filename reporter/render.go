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

package reporter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/oxyjs/source"
)

// Render formats err for display in a terminal.
//
// If err carries a position inside file, the offending source line is printed
// below the message, followed by a caret under the reported column. The caret
// is placed by display width, so wide characters and tabs line up with what a
// terminal shows.
func Render(err error, file *source.File) string {
	if err == nil {
		return ""
	}

	var ewp ErrorWithPos
	if !errors.As(err, &ewp) || file == nil {
		return err.Error()
	}
	pos := ewp.GetPosition()
	if !pos.IsValid() || pos.Filename != file.Name() || pos.Offset > file.Len() {
		return err.Error()
	}

	start := file.LineStart(pos.Offset)
	line := expandTabs(file.LineText(pos.Offset))
	prefix := expandTabs(file.Text()[start:pos.Offset])

	var out strings.Builder
	fmt.Fprintf(&out, "%v\n", err)
	fmt.Fprintf(&out, "  | %s\n", line)
	fmt.Fprintf(&out, "  | %s^", strings.Repeat(" ", uniseg.StringWidth(prefix)))
	return out.String()
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var out strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := source.TabstopWidth - col%source.TabstopWidth
			out.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		out.WriteRune(r)
		col++
	}
	return out.String()
}
