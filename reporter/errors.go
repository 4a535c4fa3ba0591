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

	"github.com/bufbuild/oxyjs/source"
)

// ErrInvalidSource is a sentinel error that is returned by [Handler.Error]
// when errors were reported but the configured [ErrorReporter] swallowed
// all of them by returning nil.
var ErrInvalidSource = errors.New("parse failed: invalid source")

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the position and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Pos
	Unwrap() error
}

// Error wraps err with a source position.
func Error(pos source.Pos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf is like [Error], but formats its message.
func Errorf(pos source.Pos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithSourcePos is the default implementation of ErrorWithPos.
//
// Code that inspects errors for location info should look for the
// ErrorWithPos interface instead of this type.
type errorWithSourcePos struct {
	underlying error
	pos        source.Pos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

// GetPosition implements [ErrorWithPos].
func (e errorWithSourcePos) GetPosition() source.Pos {
	return e.pos
}

// Unwrap implements [ErrorWithPos]. The returned error does not include
// location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
