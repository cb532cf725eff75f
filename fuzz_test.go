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

import "testing"

// FuzzNegotiateMediaTypes tests Accept negotiation with fuzz input.
func FuzzNegotiateMediaTypes(f *testing.F) {
	// Seed corpus with known inputs
	f.Add("application/json")
	f.Add("text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	f.Add("text/*;q=0.3, text/html;q=0.7, text/html;level=1")
	f.Add("*/*")
	f.Add("*/json")
	f.Add("text")
	f.Add("text/plain/extra")
	f.Add("text/plain;q=abc")
	f.Add("text/plain;q=NaN")
	f.Add("text/plain;q=-Inf")
	f.Add("text/plain;q=1e308")
	f.Add(";;;")
	f.Add(",,,")
	f.Add("")
	f.Add("text/plain; charset")
	f.Add("text/plain;=x")
	f.Add("a/b;c=d;e=f;g=h")

	n, err := MediaTypes("application/json", "text/html;level=1")
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, header string) {
		// Should never panic, even with invalid input; when a value is
		// returned it must be one of the supported representations.
		best, ok, err := n.Negotiate(header)
		if err != nil && ok {
			t.Errorf("Negotiate(%q) returned both a match and an error", header)
		}
		if ok && best != "application/json" && best != "text/html;level=1" {
			t.Errorf("Negotiate(%q) = %q, not a supported value", header, best)
		}
	})
}

// FuzzNegotiateEncodings tests Accept-Encoding negotiation with fuzz input.
func FuzzNegotiateEncodings(f *testing.F) {
	f.Add("gzip")
	f.Add("compress, gzip")
	f.Add("gzip;q=0.5, br;q=0.8, *;q=0.1")
	f.Add("*")
	f.Add("gzip;q")
	f.Add("gzip;level=2")
	f.Add(" ; ")
	f.Add("")

	n, err := Encodings("gzip", "br")
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, header string) {
		best, ok, err := n.Negotiate(header)
		if err != nil && ok {
			t.Errorf("Negotiate(%q) returned both a match and an error", header)
		}
		if ok && best != "gzip" && best != "br" {
			t.Errorf("Negotiate(%q) = %q, not a supported value", header, best)
		}
	})
}

// FuzzNegotiateLanguages tests Accept-Language negotiation with fuzz input.
func FuzzNegotiateLanguages(f *testing.F) {
	f.Add("en-US, fr-FR;q=0.9")
	f.Add("en, fr")
	f.Add("*")
	f.Add("en-*")
	f.Add("en-US;variant=2")
	f.Add("en-US;q=")
	f.Add("-")
	f.Add("")

	n, err := Languages("en-US", "fr-FR")
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, header string) {
		best, ok, err := n.Negotiate(header)
		if err != nil && ok {
			t.Errorf("Negotiate(%q) returned both a match and an error", header)
		}
		if ok && best != "en-US" && best != "fr-FR" {
			t.Errorf("Negotiate(%q) = %q, not a supported value", header, best)
		}
	})
}

// FuzzConstruction tests supported-side parsing with fuzz input.
func FuzzConstruction(f *testing.F) {
	f.Add("text/plain")
	f.Add("text/*")
	f.Add("text/plain;q=1")
	f.Add("gzip")
	f.Add("en-US")
	f.Add("*")
	f.Add("")
	f.Add("a/b;c=d")

	f.Fuzz(func(t *testing.T, raw string) {
		// Construction must fail cleanly or produce a working negotiator,
		// never panic.
		if n, err := MediaTypes(raw); err == nil {
			//nolint:errcheck // panic-safety only
			_, _, _ = n.Negotiate(raw)
		}
		if n, err := Encodings(raw); err == nil {
			//nolint:errcheck // panic-safety only
			_, _, _ = n.Negotiate(raw)
		}
		if n, err := Languages(raw); err == nil {
			//nolint:errcheck // panic-safety only
			_, _, _ = n.Negotiate(raw)
		}
	})
}
