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

// Package reporter contains the error-reporting plumbing shared by the lexer,
// the parser and the compiler driver.
//
// Lexical and syntax errors are ordinary values implementing [ErrorWithPos].
// They are routed through a [Handler], which remembers the first error so
// that the rest of the pipeline can stop early.
package reporter

import (
	"sync"

	"github.com/bufbuild/oxyjs/source"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, processing aborts with that error. If the reporter
// returns nil, the caller may continue with other files, but the file that
// produced the error is still considered failed.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// are for things that do not fail a parse but are probably mistakes, such as
// declaring the same variable twice in one statement.
type WarningReporter func(ErrorWithPos)

// Reporter receives errors and warnings.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter builds a [Reporter] from a pair of functions. Either may be
// nil: a nil errs reporter returns every error as-is, and a nil warnings
// reporter drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler funnels errors into a [Reporter] and remembers the first one that
// the reporter did not swallow.
//
// A Handler may be shared by several concurrent parses.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new handler. If rep is nil, a default reporter that
// fails on the first error and drops warnings is used.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf is like [Handler.HandleError] with a formatted error.
func (h *Handler) HandleErrorf(pos source.Pos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError reports err and returns the error the caller should abort
// with, if any. Once a handler has returned a non-nil error, it keeps
// returning it.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports a warning at pos.
func (h *Handler) HandleWarning(pos source.Pos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(errorWithSourcePos{pos: pos, underlying: err})
}

// Error returns the error the processing should fail with, if any.
//
// If errors were reported but all of them were swallowed by the reporter,
// this returns [ErrInvalidSource].
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, if any. Unlike
// [Handler.Error], this does not return [ErrInvalidSource].
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
