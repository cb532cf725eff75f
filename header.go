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

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// elem is a parsed negotiation element, shared by all three kinds. Media
// types use main/sub/params, languages use main (primary) and sub (region),
// encodings use main only. Header-side parts may be wildcards; supported-side
// parts never are.
type elem struct {
	main   wildcard
	sub    wildcard
	params map[string]string // media type only; q removed on the header side
}

// specificity ranks how concrete an element is: 0 for a full wildcard,
// 1 for a wildcard sub part, 2 for fully specific. Encodings have no sub
// part, so every encoding element ranks 2 and the rank never discriminates.
func (e elem) specificity() int {
	switch {
	case e.main.any && e.sub.any:
		return 0
	case e.sub.any:
		return 1
	default:
		return 2
	}
}

// headerEntry is one comma-separated unit of a negotiation header with its
// extracted quality weight. Entries are ephemeral: produced, sorted, and
// discarded within a single Negotiate call.
type headerEntry struct {
	key     elem
	quality float64
}

// parseHeader splits a raw header on commas, parses every entry via the
// kind's scheme, and returns the entries ordered from most to least
// preferred. A parse error on any entry fails the whole header.
func parseHeader(s scheme, header string) ([]headerEntry, error) {
	parts := strings.Split(header, ",")
	entries := make([]headerEntry, 0, len(parts))

	for _, part := range parts {
		raw := strings.TrimSpace(part)
		entry, err := s.parseHeaderEntry(raw)
		if err != nil {
			return nil, &ParseError{Element: raw, Err: err}
		}
		entries = append(entries, entry)
	}

	// Stability is a correctness requirement, not an optimization: entries
	// tied on quality, specificity, and parameter count must keep the
	// client's left-to-right order.
	slices.SortStableFunc(entries, compareEntries)

	return entries, nil
}

// compareEntries orders header entries from most to least preferred:
// higher quality first, then higher specificity, then more parameters.
func compareEntries(a, b headerEntry) int {
	if c := compareQuality(b.quality, a.quality); c != 0 {
		return c
	}
	if c := cmp.Compare(b.key.specificity(), a.key.specificity()); c != 0 {
		return c
	}

	return cmp.Compare(len(b.key.params), len(a.key.params))
}

// compareQuality is a total ordering over quality values. Qualities are
// untrusted client floats, so the comparison must stay deterministic on
// non-finite input: NaN sorts below every number, including -Inf.
func compareQuality(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}

	// At least one side is NaN.
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	default:
		return 1
	}
}

// extractQuality removes the q parameter from params and returns its value,
// defaulting to 1.0 when absent. Used by the media type parser, which keeps
// arbitrary other parameters as matching criteria.
func extractQuality(params map[string]string) (float64, error) {
	raw, ok := params["q"]
	if !ok {
		return 1, nil
	}
	delete(params, "q")

	q, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, raw)
	}

	return q, nil
}

// parseTokenEntry parses a header entry of the kinds whose value is a bare
// token (encodings and languages). Only the q parameter is permitted; any
// other parameter is rejected, and a parameter without "=" is malformed.
func parseTokenEntry(raw string) (value string, quality float64, err error) {
	segments := strings.Split(raw, ";")

	value = strings.TrimSpace(segments[0])
	if value == "" {
		return "", 0, ErrInvalidHeader
	}

	quality = 1
	for _, segment := range segments[1:] {
		key, val, ok := strings.Cut(strings.TrimSpace(segment), "=")
		if !ok {
			return "", 0, ErrInvalidHeader
		}
		if key != "q" {
			return "", 0, ErrParamsNotAllowed
		}
		quality, err = strconv.ParseFloat(val, 64)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %q", ErrInvalidQuality, val)
		}
	}

	return value, quality, nil
}
