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

package taxa

import "github.com/bufbuild/oxyjs/token"

// Classify returns the broad category of tok, for describing it in an
// error message.
func Classify(tok token.Token) Noun {
	switch k := tok.Kind; {
	case k == token.EOF:
		return EOF
	case k == token.Ident:
		return Ident
	case k == token.Number:
		return Number
	case k == token.String:
		return String
	case k.IsKeyword():
		return Keyword
	case k.IsPunct():
		return Punct
	default:
		return Unknown
	}
}

// Describe renders tok the way it is named in an error message, such as
// "identifier `foo`", "keyword `else`", "`)`" or "end of input".
func Describe(tok token.Token) string {
	switch noun := Classify(tok); noun {
	case EOF:
		return noun.String()
	case Punct:
		return "`" + tok.Text + "`"
	default:
		return noun.String() + " `" + tok.Text + "`"
	}
}
