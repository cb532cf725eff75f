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

import "strings"

// languageScheme negotiates the Accept-Language header: primary-region tags
// split on "-", such as "en-US". A header tag without a region ("en") stands
// for every region of that language.
type languageScheme struct{}

func (languageScheme) headerName() string { return "Accept-Language" }

// parseSupported requires the full primary-region form. The header-only
// shorthand without a region is ambiguous as a representation the server
// would actually produce, so "en" is rejected here even though clients may
// send it.
func (languageScheme) parseSupported(raw string) (elem, error) {
	if strings.Contains(raw, ";") {
		return elem{}, ErrParamsNotAllowed
	}

	primary, region, ok := strings.Cut(raw, "-")
	if !ok {
		return elem{}, ErrMissingSeparator
	}
	if primary == "*" || region == "*" {
		return elem{}, ErrInvalidWildcard
	}

	return elem{main: specific(primary), sub: specific(region)}, nil
}

func (languageScheme) parseHeaderEntry(raw string) (headerEntry, error) {
	value, quality, err := parseTokenEntry(raw)
	if err != nil {
		return headerEntry{}, err
	}

	primary, region, ok := strings.Cut(value, "-")
	if !ok {
		// Bare primary tag: matches any region.
		return headerEntry{
			key:     elem{main: specific(value), sub: wildcard{any: true}},
			quality: quality,
		}, nil
	}

	return headerEntry{
		key:     elem{main: specific(primary), sub: wildcardOf(region)},
		quality: quality,
	}, nil
}

// match requires an exact primary tag; the region may be satisfied by a
// header-side wildcard. There is no wildcard form for the primary tag, so a
// bare "*" in the header is compared literally and matches nothing.
func (languageScheme) match(supported, header elem) bool {
	return supported.main.value == header.main.value &&
		header.sub.matches(supported.sub.value)
}
