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
	"maps"
	"strings"
)

// mediaTypeScheme negotiates the Accept header: main/sub pairs with optional
// parameters, such as "text/html;charset=utf-8".
type mediaTypeScheme struct{}

func (mediaTypeScheme) headerName() string { return "Accept" }

func (mediaTypeScheme) parseSupported(raw string) (elem, error) {
	return parseMediaType(raw, false)
}

func (mediaTypeScheme) parseHeaderEntry(raw string) (headerEntry, error) {
	key, err := parseMediaType(raw, true)
	if err != nil {
		return headerEntry{}, err
	}

	quality, err := extractQuality(key.params)
	if err != nil {
		return headerEntry{}, err
	}

	return headerEntry{key: key, quality: quality}, nil
}

// match requires both parts to be accepted by the header entry and the
// parameter maps to be exactly equal: same keys, same values, same count.
// A supported "text/plain" does not satisfy a header "text/plain;format=flowed",
// and a supported "text/plain;format=flowed" does not satisfy a plain
// "text/plain" header entry.
func (mediaTypeScheme) match(supported, header elem) bool {
	return header.main.matches(supported.main.value) &&
		header.sub.matches(supported.sub.value) &&
		maps.Equal(supported.params, header.params)
}

// parseMediaType parses a media type value into its main part, sub part, and
// parameter map. Header mode admits wildcards, where a wildcard main part
// requires a wildcard sub part ("*/json" is malformed), and leaves the q
// parameter in the map for the caller to extract. Supported mode forbids
// wildcards and the q parameter outright.
func parseMediaType(raw string, fromHeader bool) (elem, error) {
	segments := strings.Split(raw, ";")

	value := strings.TrimSpace(segments[0])
	main, sub, ok := strings.Cut(value, "/")
	if !ok {
		return elem{}, ErrMissingSeparator
	}
	if strings.Contains(sub, "/") {
		return elem{}, ErrTooManyParts
	}

	if fromHeader {
		if main == "*" && sub != "*" {
			return elem{}, ErrInvalidWildcard
		}
	} else if main == "*" || sub == "*" {
		return elem{}, ErrInvalidWildcard
	}

	var params map[string]string
	if len(segments) > 1 {
		params = make(map[string]string, len(segments)-1)
		for _, segment := range segments[1:] {
			key, val, ok := strings.Cut(strings.TrimSpace(segment), "=")
			if !ok {
				return elem{}, ErrInvalidHeader
			}
			params[key] = val
		}
	}

	if !fromHeader {
		if _, ok := params["q"]; ok {
			return elem{}, ErrQualityNotAllowed
		}
	}

	return elem{main: wildcardOf(main), sub: wildcardOf(sub), params: params}, nil
}
