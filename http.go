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

import "net/http"

// Header returns the request header this negotiator consults: "Accept",
// "Accept-Encoding", or "Accept-Language" depending on the constructor.
// Useful for setting a Vary response header.
func (n *Negotiator[T]) Header() string {
	return n.scheme.headerName()
}

// NegotiateRequest negotiates against the relevant header of r. A missing or
// empty header expresses no preference, yielding the first supported
// representation. A malformed header returns a [*ParseError], which callers
// typically map to a 400-class response.
func (n *Negotiator[T]) NegotiateRequest(r *http.Request) (best T, ok bool, err error) {
	header := r.Header.Get(n.scheme.headerName())
	if header == "" {
		best, ok = n.First()
		return best, ok, nil
	}

	return n.Negotiate(header)
}
