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

// scheme is the per-kind capability surface: how to parse a trusted supported
// representation, how to parse one untrusted header entry, and when a
// supported element satisfies a header element. The Negotiator skeleton is
// shared; only these rules differ between media types, encodings, and
// languages.
type scheme interface {
	parseSupported(raw string) (elem, error)
	parseHeaderEntry(raw string) (headerEntry, error)
	match(supported, header elem) bool

	// headerName is the request header this kind negotiates against.
	headerName() string
}

// supportedEntry pairs a parsed representation key with the caller's value.
type supportedEntry[T any] struct {
	key   elem
	value T
}

// Negotiator selects the best supported representation for a client
// preference header. It is built once from an ordered list of supported
// representations, is immutable afterward, and is safe for concurrent use.
type Negotiator[T any] struct {
	scheme    scheme
	supported []supportedEntry[T]
}

// MediaTypes builds a Negotiator for the Accept header from media type
// strings such as "application/json" or "text/html;level=1". Wildcards and q
// parameters are not valid in supported representations.
func MediaTypes(supported ...string) (*Negotiator[string], error) {
	return MediaTypesFunc(supported, self)
}

// MediaTypesFunc is like [MediaTypes] but associates an arbitrary value with
// each representation; element extracts the media type string from a value.
func MediaTypesFunc[T any](supported []T, element func(T) string) (*Negotiator[T], error) {
	return newNegotiator(mediaTypeScheme{}, supported, element)
}

// Encodings builds a Negotiator for the Accept-Encoding header from
// content-coding tokens such as "gzip" or "br". Parameters and the bare "*"
// are not valid in supported representations.
func Encodings(supported ...string) (*Negotiator[string], error) {
	return EncodingsFunc(supported, self)
}

// EncodingsFunc is like [Encodings] but associates an arbitrary value with
// each representation; element extracts the coding token from a value.
func EncodingsFunc[T any](supported []T, element func(T) string) (*Negotiator[T], error) {
	return newNegotiator(encodingScheme{}, supported, element)
}

// Languages builds a Negotiator for the Accept-Language header from full
// primary-region tags such as "en-US". The region is required: supported
// representations have no shorthand form.
func Languages(supported ...string) (*Negotiator[string], error) {
	return LanguagesFunc(supported, self)
}

// LanguagesFunc is like [Languages] but associates an arbitrary value with
// each representation; element extracts the language tag from a value.
func LanguagesFunc[T any](supported []T, element func(T) string) (*Negotiator[T], error) {
	return newNegotiator(languageScheme{}, supported, element)
}

func self(s string) string { return s }

// newNegotiator parses every supported representation in order. Construction
// is atomic: the first invalid representation fails the whole call.
func newNegotiator[T any](s scheme, values []T, element func(T) string) (*Negotiator[T], error) {
	entries := make([]supportedEntry[T], 0, len(values))
	for _, v := range values {
		raw := element(v)
		key, err := s.parseSupported(raw)
		if err != nil {
			return nil, &ParseError{Element: raw, Err: err}
		}
		entries = append(entries, supportedEntry[T]{key: key, value: v})
	}

	return &Negotiator[T]{scheme: s, supported: entries}, nil
}

// Negotiate parses and sorts the header, then returns the value of the first
// supported representation satisfying the most preferred header entry.
// Supported representations are scanned in registration order, which breaks
// ties among representations matching the same entry. ok is false when no
// entry matches anything; err is non-nil when any header entry is malformed,
// in which case the whole negotiation fails.
func (n *Negotiator[T]) Negotiate(header string) (best T, ok bool, err error) {
	entries, err := parseHeader(n.scheme, header)
	if err != nil {
		var zero T
		return zero, false, err
	}

	for _, entry := range entries {
		for _, s := range n.supported {
			if n.scheme.match(s.key, entry.key) {
				return s.value, true, nil
			}
		}
	}

	var zero T
	return zero, false, nil
}

// Len returns the number of supported representations.
func (n *Negotiator[T]) Len() int {
	return len(n.supported)
}

// IsEmpty reports whether the negotiator holds no representations. An empty
// negotiator never matches; any default-representation policy belongs to the
// caller.
func (n *Negotiator[T]) IsEmpty() bool {
	return len(n.supported) == 0
}

// First returns the first registered representation, the conventional
// default when a client expresses no preference. ok is false when the
// negotiator is empty.
func (n *Negotiator[T]) First() (value T, ok bool) {
	if len(n.supported) == 0 {
		var zero T
		return zero, false
	}

	return n.supported[0].value, true
}
