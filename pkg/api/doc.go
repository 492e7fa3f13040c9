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

// Package api wires the redirect service together and runs it.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading configuration (pkg/config)
//   - Building the manifest cache and resolver and registering their routes
//   - Running the optional scheduled cache refresher next to the server
//
// pkg/server handles the HTTP lifecycle, middleware, probes and metrics.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /HDP/{platform}/{series}/{type}/{version}         - redirect to the repository file
//   - GET /HDP/{platform}/{series}/{type}/{version}/{file}  - redirect to the named file
//   - GET /v1/versions/{platform}                           - list known builds, newest first
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -I http://localhost:8080/HDP/centos6/2.x/BUILDS/2.3.*
//	HTTP/1.1 307 Temporary Redirect
//	Location: http://s3.amazonaws.com/dev.hortonworks.com/HDP/centos6/2.x/BUILDS/2.3.0.0-5678/hdpbn.repo
//
// # Configuration
//
// See pkg/config for the YAML file and environment variables, and pkg/server
// for PORT, RATE_LIMIT and SHUTDOWN_TIMEOUT_SECONDS.
package api
