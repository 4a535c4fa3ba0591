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

// Package taxa (plural of taxon, an element of a taxonomy) names the
// productions of the grammar for use in parse errors.
//
// A parse error reads as "unexpected <token> <place>; expected <set>", where
// the place is a [Place] and the expectations are a [Set] of [Noun] values.
package taxa

import "fmt"

//go:generate go run github.com/bufbuild/oxyjs/internal/enum noun.yaml

// In is a shorthand for the "in" preposition.
func (s Noun) In() Place {
	return Place{s, "in"}
}

// After is a shorthand for the "after" preposition.
func (s Noun) After() Place {
	return Place{s, "after"}
}

// Without is a shorthand for the "without" preposition.
func (s Noun) Without() Place {
	return Place{s, "without"}
}

// AsSet returns a singleton set containing this Noun.
func (s Noun) AsSet() Set {
	return NewSet(s)
}

// Place is a location within the grammar that can be referred to within a
// diagnostic.
//
// It corresponds to a prepositional phrase in English, so it is actually
// somewhat more general than a place.
type Place struct {
	subject     Noun
	preposition string
}

// Subject returns this place's subject.
func (p Place) Subject() Noun {
	return p.subject
}

// IsZero returns whether this is the zero place, which renders as nothing.
func (p Place) IsZero() bool {
	return p.preposition == ""
}

// String implements [fmt.Stringer].
func (p Place) String() string {
	if p.IsZero() {
		return ""
	}
	return p.preposition + " " + p.subject.String()
}

// GoString implements [fmt.GoStringer].
//
// This exists to get pretty output out of the assert package.
func (p Place) GoString() string {
	return fmt.Sprintf("{%#v, %#v}", p.subject, p.preposition)
}

// All returns every Noun, in order.
func All() []Noun {
	all := make([]Noun, total)
	for i := range all {
		all[i] = Noun(i)
	}
	return all
}
