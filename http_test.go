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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiator_Header(t *testing.T) {
	t.Parallel()

	mt, err := MediaTypes("application/json")
	require.NoError(t, err)
	enc, err := Encodings("gzip")
	require.NoError(t, err)
	lang, err := Languages("en-US")
	require.NoError(t, err)

	assert.Equal(t, "Accept", mt.Header())
	assert.Equal(t, "Accept-Encoding", enc.Header())
	assert.Equal(t, "Accept-Language", lang.Header())
}

func TestNegotiateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		want        string
		wantMatch   bool
		wantErr     bool
		description string
	}{
		{
			name:        "missing header yields first supported",
			header:      "",
			want:        "text/plain",
			wantMatch:   true,
			description: "no header means no preference",
		},
		{
			name:        "header is negotiated",
			header:      "application/json;q=0.9, text/plain;q=0.1",
			want:        "application/json",
			wantMatch:   true,
			description: "a present header goes through full negotiation",
		},
		{
			name:        "no acceptable representation",
			header:      "image/png",
			wantMatch:   false,
			description: "an unmatched header is not an error",
		},
		{
			name:        "malformed header",
			header:      "nonsense",
			wantErr:     true,
			description: "parse failures surface to the caller",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := MediaTypes("text/plain", "application/json")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept", tt.header)
			}

			got, ok, err := n.NegotiateRequest(req)
			if tt.wantErr {
				require.Error(t, err, tt.description)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, ok, tt.description)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

func TestNegotiateRequest_EmptyNegotiator(t *testing.T) {
	t.Parallel()

	n, err := Encodings()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok, err := n.NegotiateRequest(req)
	require.NoError(t, err)
	assert.False(t, ok, "an empty negotiator has no default to fall back to")
}
