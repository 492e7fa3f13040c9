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

// Package defaults provides centralized configuration constants for the build redirect service.
//
// This package defines timeout values, cache settings, and other configuration
// defaults used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Cache defaults: manifest TTL and source location
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For the upstream manifest fetch
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/releng/build-redirect/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.RedirectHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Redirect handlers must outlive one upstream fetch, since a stale
//     cache is refreshed on the request path
//   - Server write timeout must cover the handler timeout
//   - Server shutdown: 30s for graceful shutdown
package defaults
