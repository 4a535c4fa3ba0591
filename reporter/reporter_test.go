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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/oxyjs/source"
)

func scanAll(name, text string) *source.File {
	s := source.NewStream(name, []byte(text))
	for !s.Done() {
		s.Next()
	}
	return s.File()
}

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	file := scanAll("test.js", "a;\nb c;\n")
	underlying := errors.New("boom")
	err := Error(file.Pos(5), underlying)

	assert.Equal(t, "test.js:2:3: boom", err.Error())
	assert.Equal(t, 2, err.GetPosition().Line)
	assert.Same(t, underlying, err.Unwrap())
	require.ErrorIs(t, err, underlying)

	err = Errorf(file.Pos(0), "bad %s", "thing")
	assert.Equal(t, "test.js:1:1: bad thing", err.Error())
}

func TestHandlerFailFast(t *testing.T) {
	t.Parallel()

	file := scanAll("test.js", "x y z")
	h := NewHandler(nil)
	require.NoError(t, h.Error())

	first := h.HandleErrorf(file.Pos(2), "first")
	require.Error(t, first)
	second := h.HandleErrorf(file.Pos(4), "second")
	assert.Equal(t, first, second, "first error must be sticky")
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerSwallowingReporter(t *testing.T) {
	t.Parallel()

	file := scanAll("test.js", "x y z")
	var (
		mu   sync.Mutex
		errs []ErrorWithPos
		warn []ErrorWithPos
	)
	rep := NewReporter(
		func(err ErrorWithPos) error {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
			return nil
		},
		func(err ErrorWithPos) {
			mu.Lock()
			defer mu.Unlock()
			warn = append(warn, err)
		},
	)
	h := NewHandler(rep)

	require.NoError(t, h.HandleErrorf(file.Pos(0), "one"))
	h.HandleWarning(file.Pos(2), errors.New("careful"))

	assert.Len(t, errs, 1)
	require.Len(t, warn, 1)
	assert.Equal(t, "test.js:1:3: careful", warn[0].Error())
	require.ErrorIs(t, h.Error(), ErrInvalidSource)
	require.NoError(t, h.ReporterError())
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	plain := errors.New("read failed")
	assert.Same(t, plain, h.HandleError(plain))
	assert.Same(t, plain, h.Error())
}

func TestRender(t *testing.T) {
	t.Parallel()

	file := scanAll("test.js", "a;\nif (x) );\n")
	err := Errorf(file.Pos(10), "unexpected `)`")
	assert.Equal(t,
		"test.js:2:8: unexpected `)`\n"+
			"  | if (x) );\n"+
			"  |        ^",
		Render(err, file),
	)

	wide := scanAll("wide.js", "\t漢字 ?")
	err = Errorf(wide.Pos(8), "unexpected `?`")
	assert.Equal(t,
		"wide.js:1:12: unexpected `?`\n"+
			"  |         漢字 ?\n"+
			"  |              ^",
		Render(err, wide),
	)
}

func TestRenderFallback(t *testing.T) {
	t.Parallel()

	file := scanAll("test.js", "a b")
	assert.Empty(t, Render(nil, file))
	assert.Equal(t, "plain", Render(errors.New("plain"), file))

	err := Errorf(file.Pos(2), "oops")
	assert.Equal(t, "test.js:1:3: oops", Render(err, nil))

	other := scanAll("other.js", "a b")
	assert.Equal(t, "test.js:1:3: oops", Render(err, other))
}
