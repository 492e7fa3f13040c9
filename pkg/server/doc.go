// Copyright (c) 2026, The Build Redirect Authors. All rights reserved.
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

// Package server provides the HTTP server shared by the redirect service:
// a chi router, a standard middleware chain, Prometheus metrics, health
// probes and graceful shutdown.
//
// # Architecture
//
// Routes registered through WithHandler use chi patterns and run behind the
// middleware chain, outermost first:
//
//   - metrics: RED metrics labeled by route pattern
//   - API version negotiation (X-API-Version)
//   - request IDs (X-Request-Id, UUID)
//   - panic recovery
//   - rate limiting (golang.org/x/time/rate token bucket)
//   - debug request logging
//
// System routes bypass the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    200 while listening, 503 otherwise
//	GET /metrics  Prometheus exposition
//
// # Usage
//
//	s := server.New(
//	    server.WithName("redirectd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/HDP/{platform}/{series}/{type}/{version}": h.HandleRedirect,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run stops on SIGINT or SIGTERM, shutting down within the configured
// timeout. Additional long-running tasks passed to Run share its lifetime.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which map
// error codes from pkg/errors to HTTP statuses:
//
//	INVALID_REQUEST       400
//	NOT_FOUND             404
//	METHOD_NOT_ALLOWED    405
//	RATE_LIMIT_EXCEEDED   429
//	SERVICE_UNAVAILABLE   502
//	PARSE_ERROR           502
//	TIMEOUT               504
//	INTERNAL              500
//
// # Configuration
//
// NewConfig reads PORT, RATE_LIMIT and SHUTDOWN_TIMEOUT_SECONDS from the
// environment on top of the defaults in pkg/defaults.
package server
