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

import "log/slog"

// Option defines functional options for negotiation middleware configuration.
type Option func(*config)

// config holds the configuration for the negotiation middleware.
type config struct {
	// logger is the structured logger for rejected headers; nil means silent
	logger *slog.Logger

	// notAcceptable turns "no representation matched" into a 406 response
	notAcceptable bool

	// vary controls whether the Vary response header is set
	vary bool
}

// defaultConfig returns the default configuration for negotiation middleware.
func defaultConfig() *config {
	return &config{
		vary: true,
	}
}

// WithNotAcceptable makes the middleware answer 406 Not Acceptable when no
// supported representation matches the client's preferences. The default is
// to continue to the handler with no stored value, letting the handler serve
// its default representation.
//
// Example:
//
//	r.Use(conneg.Accept(n, conneg.WithNotAcceptable()))
func WithNotAcceptable() Option {
	return func(cfg *config) {
		cfg.notAcceptable = true
	}
}

// WithVaryDisabled stops the middleware from setting the Vary response
// header. Only do this when a cache in front of the service is configured
// separately.
//
// Example:
//
//	r.Use(conneg.Accept(n, conneg.WithVaryDisabled()))
func WithVaryDisabled() Option {
	return func(cfg *config) {
		cfg.vary = false
	}
}

// WithLogger sets the slog.Logger used to record rejected preference
// headers. If not provided, rejections are silent.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	r.Use(conneg.Accept(n, conneg.WithLogger(logger)))
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
