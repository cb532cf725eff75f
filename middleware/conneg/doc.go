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

// Package conneg provides content negotiation middleware for rivaas routers.
//
// The middleware negotiates the request's Accept, Accept-Encoding, or
// Accept-Language header against a [negotiation.Negotiator] built at startup,
// stores the winning representation in the request context, and sets the
// matching Vary response header. A malformed preference header is answered
// with 400 Bad Request before any handler runs.
//
// Basic usage:
//
//	n, err := negotiation.MediaTypes("application/json", "text/html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := router.MustNew()
//	r.Use(conneg.Accept(n))
//
//	r.GET("/report", func(c *router.Context) {
//	    if ct, ok := conneg.ContentType[string](c); ok && ct == "text/html" {
//	        c.HTML(http.StatusOK, renderReport())
//	        return
//	    }
//	    c.JSON(http.StatusOK, report())
//	})
//
// Reject clients that accept none of the supported representations:
//
//	r.Use(conneg.Accept(n, conneg.WithNotAcceptable()))
//
// Negotiate languages with application values instead of strings:
//
//	n, err := negotiation.LanguagesFunc(catalogs, func(c Catalog) string { return c.Tag })
//	r.Use(conneg.AcceptLanguage(n))
//
//	r.GET("/", func(c *router.Context) {
//	    catalog, _ := conneg.Language[Catalog](c)
//	    ...
//	})
package conneg
