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

// Package manifest fetches the upstream build manifest and keeps a
// TTL-guarded, per-platform index of build versions.
//
// The manifest is a JSON document mapping a series id to a "latest" block
// of platform to URI prefix:
//
//	{
//	  "HDP-2.2": {"latest": {"centos6": "http://host/HDP/centos6/2.x/BUILDS/2.2.0.0-1234/"}},
//	  "HDP-2.3": {"latest": {"centos6": "http://host/HDP/centos6/2.x/BUILDS/2.3.0.0-5678/"}}
//	}
//
// The version of each build is the last path segment of its URI. Builds are
// indexed per platform in a Versions collection ordered by version.Compare.
//
// # Cache
//
// Cache owns the index. Readers load the current Snapshot without locking;
// a reader that finds the snapshot missing or older than the TTL triggers a
// rebuild. Concurrent rebuild requests are coalesced so that at most one
// fetch is in flight, and a failed rebuild never replaces the published
// snapshot:
//
//	cache := manifest.NewCache(manifest.NewHTTPFetcher(url), manifest.WithTTL(15*time.Minute))
//	versions, err := cache.Get(ctx, "centos6")
//	if err != nil {
//	    return err
//	}
//	versions.Descend(func(e manifest.Entry) bool {
//	    fmt.Println(e.Version, e.URI)
//	    return true
//	})
//
// # Fetchers
//
// HTTPFetcher reads the manifest over HTTP; FileFetcher reads a local copy.
// NewFetcher selects one from a source string.
package manifest
