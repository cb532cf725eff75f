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

// Package negotiation implements proactive HTTP content negotiation.
//
// Given the representations a server can produce and a client preference
// header (Accept, Accept-Encoding, or Accept-Language), a [Negotiator]
// selects the single best-matching representation following the HTTP rules
// for quality values, wildcards, and specificity.
//
// # Quick Start
//
// Build a negotiator once at startup from the representations you support,
// then negotiate each request header against it:
//
//	n, err := negotiation.MediaTypes("application/json", "text/html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	best, ok, err := n.Negotiate("text/html;q=0.8, application/json")
//	// best == "application/json", ok == true
//
// Three negotiation kinds are provided, one per header:
//
//	negotiation.MediaTypes("text/html", "application/json")  // Accept
//	negotiation.Encodings("gzip", "br")                      // Accept-Encoding
//	negotiation.Languages("en-US", "fr-FR")                  // Accept-Language
//
// # Associating Values
//
// The *Func constructors associate arbitrary values with each representation,
// following the Sort/SortFunc convention from the standard library. The
// negotiator hands back your value instead of the raw string:
//
//	type Render int
//
//	const (
//	    RenderJSON Render = iota
//	    RenderHTML
//	)
//
//	n, err := negotiation.MediaTypesFunc(
//	    []Render{RenderJSON, RenderHTML},
//	    func(r Render) string {
//	        if r == RenderJSON {
//	            return "application/json"
//	        }
//	        return "text/html"
//	    },
//	)
//
//	render, ok, err := n.Negotiate(r.Header.Get("Accept"))
//
// # Negotiation Rules
//
// Header entries are ordered by quality value (q parameter, default 1.0),
// then by specificity (full wildcard < partial wildcard < fully specific),
// then by parameter count for media types. Ties preserve the client's
// left-to-right writing order. The most preferred entry that structurally
// matches a supported representation wins; among supported representations
// matching the same entry, registration order decides.
//
// Matching is kind-specific:
//
//   - Media types match main and sub parts, honoring */* and type/*
//     wildcards, and require the non-q parameter maps to be exactly equal.
//   - Encodings match the token exactly, or anything against a bare *.
//   - Languages match the primary subtag exactly; a header tag without a
//     region (such as "en") matches every region of that language.
//
// Supported representations are trusted configuration and are parsed
// strictly: wildcards and q parameters are construction errors. Header
// values are untrusted client input; a malformed entry anywhere in the
// header fails the whole negotiation with a [*ParseError] rather than being
// skipped, so client errors are never silently ignored.
//
// # HTTP Integration
//
// Each negotiator knows its request header. [Negotiator.NegotiateRequest]
// reads it from an *http.Request, treating a missing header as "no
// preference" and yielding the first supported representation:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    best, ok, err := n.NegotiateRequest(r)
//	    if err != nil {
//	        http.Error(w, "malformed Accept header", http.StatusBadRequest)
//	        return
//	    }
//	    ...
//	}
//
// Router middleware lives in rivaas.dev/negotiation/middleware/conneg.
//
// # Concurrency
//
// A Negotiator is immutable after construction and safe for concurrent use
// by any number of goroutines without synchronization. Negotiation is purely
// computational: no I/O, no logging, no retries.
package negotiation
