// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package negotiation

// wildcard is one part of a header element: either a specific token or the
// literal "*". It centralizes the accept-anything rule so no comparison in
// the matchers needs to know about the "*" constant. Supported-side parts
// are always specific; the parsers reject wildcards there.
type wildcard struct {
	value string
	any   bool
}

// wildcardOf classifies a raw token by literal comparison to "*".
func wildcardOf(s string) wildcard {
	if s == "*" {
		return wildcard{any: true}
	}

	return wildcard{value: s}
}

// specific returns a wildcard that only ever matches s, even when s is "*".
// Used where the grammar has no wildcard form, such as language primary tags.
func specific(s string) wildcard {
	return wildcard{value: s}
}

// matches reports whether w accepts the supported token s.
func (w wildcard) matches(s string) bool {
	return w.any || w.value == s
}

// String returns the token form, with "*" for the wildcard.
func (w wildcard) String() string {
	if w.any {
		return "*"
	}

	return w.value
}
