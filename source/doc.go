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

// Package source provides the input side of the front end: a forward-only
// cursor over the bytes of a source file, and the position bookkeeping
// needed to turn byte offsets into user-facing line and column numbers.
//
// A [Stream] is owned by exactly one lexer for the duration of a parse. It is
// not safe for concurrent use; independent parses must use independent
// streams.
package source
