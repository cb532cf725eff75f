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
	"errors"
	"fmt"
)

// Static errors for parsing supported representations and header entries.
// Every error returned by this package wraps one of these sentinels; use
// [errors.Is] to classify failures.
var (
	// ErrMissingSeparator indicates an absent "/" in a media type or an
	// absent "-" in a supported language tag.
	ErrMissingSeparator = errors.New("missing separator")

	// ErrTooManyParts indicates a media type value with more than one "/".
	ErrTooManyParts = errors.New("too many parts")

	// ErrInvalidWildcard indicates a wildcard where none is allowed: any
	// wildcard in a supported representation, or a header media type with a
	// wildcard main part and a specific sub part ("*/json").
	ErrInvalidWildcard = errors.New("invalid wildcard")

	// ErrInvalidHeader indicates generic malformed syntax: an empty entry,
	// a missing value before ";", or a parameter without "=".
	ErrInvalidHeader = errors.New("malformed header entry")

	// ErrParamsNotAllowed indicates a parameter other than q on an encoding
	// or language entry, or any parameter on a supported encoding/language.
	ErrParamsNotAllowed = errors.New("parameters not allowed")

	// ErrQualityNotAllowed indicates a q parameter on a supported
	// representation. Quality weighting belongs to the client.
	ErrQualityNotAllowed = errors.New("quality parameter not allowed")

	// ErrInvalidQuality indicates a q parameter whose value does not parse
	// as a floating-point number.
	ErrInvalidQuality = errors.New("invalid quality value")
)

// ParseError reports a supported representation or header entry that failed
// to parse. Element carries the offending text; the wrapped error is one of
// the package sentinels.
//
// Use [errors.Is] to classify:
//
//	_, _, err := n.Negotiate(header)
//	if errors.Is(err, negotiation.ErrInvalidQuality) {
//	    // client sent q=<garbage>
//	}
type ParseError struct {
	Element string // The element text that failed parsing
	Err     error  // Underlying sentinel error
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("negotiation: parsing %q: %v", e.Element, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// HTTPStatus implements rivaas.dev/errors.ErrorType. A parse failure is a
// client-input error regardless of which side supplied the element: supported
// representations fail at construction, long before a request exists.
func (e *ParseError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ParseError) Code() string {
	return "negotiation_error"
}
