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

package conneg

import (
	"context"
	"net/http"

	"rivaas.dev/router"

	"rivaas.dev/negotiation"
)

// contextKey is the type for negotiated values stored in the request context.
type contextKey string

const (
	contentTypeKey contextKey = "conneg.content-type"
	encodingKey    contextKey = "conneg.encoding"
	languageKey    contextKey = "conneg.language"
)

// Accept returns a middleware that negotiates the Accept header against n.
// The winning representation is available to handlers via [ContentType].
//
// Example:
//
//	n, _ := negotiation.MediaTypes("application/json", "text/html")
//	r.Use(conneg.Accept(n))
func Accept[T any](n *negotiation.Negotiator[T], opts ...Option) router.HandlerFunc {
	return negotiate(n, contentTypeKey, opts)
}

// AcceptEncoding returns a middleware that negotiates the Accept-Encoding
// header against n. The winning coding is available via [Encoding].
//
// Example:
//
//	n, _ := negotiation.Encodings("br", "gzip")
//	r.Use(conneg.AcceptEncoding(n))
func AcceptEncoding[T any](n *negotiation.Negotiator[T], opts ...Option) router.HandlerFunc {
	return negotiate(n, encodingKey, opts)
}

// AcceptLanguage returns a middleware that negotiates the Accept-Language
// header against n. The winning language is available via [Language].
//
// Example:
//
//	n, _ := negotiation.Languages("en-US", "fr-FR")
//	r.Use(conneg.AcceptLanguage(n))
func AcceptLanguage[T any](n *negotiation.Negotiator[T], opts ...Option) router.HandlerFunc {
	return negotiate(n, languageKey, opts)
}

// negotiate is the shared middleware body. The negotiator is read-only, so a
// single instance serves every request without synchronization.
func negotiate[T any](n *negotiation.Negotiator[T], key contextKey, opts []Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		if cfg.vary {
			c.Response.Header().Add("Vary", n.Header())
		}

		value, ok, err := n.NegotiateRequest(c.Request)
		if err != nil {
			if cfg.logger != nil {
				cfg.logger.Warn("rejected malformed negotiation header",
					"header", n.Header(),
					"value", c.Request.Header.Get(n.Header()),
					"error", err,
				)
			}
			c.WriteErrorResponse(http.StatusBadRequest, "malformed "+n.Header()+" header")
			c.Abort()

			return
		}

		if !ok {
			if cfg.notAcceptable {
				c.WriteErrorResponse(http.StatusNotAcceptable, "no acceptable representation")
				c.Abort()

				return
			}

			// No match and no strict mode: the handler serves its default.
			c.Next()

			return
		}

		ctx := context.WithValue(c.Request.Context(), key, value)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ContentType retrieves the media type representation negotiated by [Accept].
// ok is false when the middleware did not run or nothing matched.
//
// Example:
//
//	func handler(c *router.Context) {
//	    ct, ok := conneg.ContentType[string](c)
//	    ...
//	}
func ContentType[T any](c *router.Context) (T, bool) {
	return fromContext[T](c, contentTypeKey)
}

// Encoding retrieves the content coding negotiated by [AcceptEncoding].
func Encoding[T any](c *router.Context) (T, bool) {
	return fromContext[T](c, encodingKey)
}

// Language retrieves the language negotiated by [AcceptLanguage].
func Language[T any](c *router.Context) (T, bool) {
	return fromContext[T](c, languageKey)
}

func fromContext[T any](c *router.Context, key contextKey) (T, bool) {
	value, ok := c.Request.Context().Value(key).(T)
	return value, ok
}
