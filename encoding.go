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

// encodingScheme negotiates the Accept-Encoding header: bare content-coding
// tokens such as "gzip" or "br", with "*" as the only wildcard form.
type encodingScheme struct{}

func (encodingScheme) headerName() string { return "Accept-Encoding" }

func (encodingScheme) parseSupported(raw string) (elem, error) {
	if strings.Contains(raw, ";") {
		return elem{}, ErrParamsNotAllowed
	}
	if raw == "*" {
		return elem{}, ErrInvalidWildcard
	}

	return elem{main: specific(raw)}, nil
}

func (encodingScheme) parseHeaderEntry(raw string) (headerEntry, error) {
	value, quality, err := parseTokenEntry(raw)
	if err != nil {
		return headerEntry{}, err
	}

	return headerEntry{key: elem{main: wildcardOf(value)}, quality: quality}, nil
}

func (encodingScheme) match(supported, header elem) bool {
	return header.main.matches(supported.main.value)
}
