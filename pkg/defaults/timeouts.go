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

package defaults

import "time"

// Manifest cache defaults.
const (
	// CacheTTL is the maximum age of the build manifest cache before a
	// request triggers a refresh.
	CacheTTL = 15 * time.Minute

	// ManifestSource is the default location of the build info document.
	ManifestSource = "http://s3.amazonaws.com/dev.hortonworks.com/HDP/hdp_urlinfo.json"

	// ManifestMaxBytes bounds the size of a fetched manifest document.
	ManifestMaxBytes = 16 << 20
)

// Handler timeouts for HTTP request processing.
const (
	// RedirectHandlerTimeout bounds a redirect request, including a
	// manifest refresh triggered by it.
	RedirectHandlerTimeout = 45 * time.Second

	// VersionsHandlerTimeout bounds a version listing request.
	VersionsHandlerTimeout = 45 * time.Second

	// VersionsCacheMaxAge is the Cache-Control max-age for version listings.
	VersionsCacheMaxAge = 60 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIResolveTimeout is the default timeout for one-shot resolutions.
	CLIResolveTimeout = 1 * time.Minute
)
