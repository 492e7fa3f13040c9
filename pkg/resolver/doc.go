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

// Package resolver turns a build request into the download location of the
// newest matching build.
//
// A request names a platform, a series, a build type, a version pattern and
// an optional file. The resolver walks the platform's builds from the
// greatest version down and returns the first whose version matches the
// pattern, joined with the file name:
//
//	r := resolver.New(cache, resolver.WithRepoFiles(map[string]string{"centos6": "custom.repo"}))
//	res, err := r.Resolve(ctx, resolver.Request{Platform: "centos6", Version: "2.*"})
//	if errors.Is(err, resolver.ErrNotFound) {
//	    // no build matches
//	}
//	fmt.Println(res.URI) // http://host/.../2.3.0.0-5678/hdpbn.repo
//
// Series and type are carried for logging only and do not affect matching.
// When the file is omitted, RepoFile picks the platform's repository file.
//
// # HTTP
//
// Handler exposes the resolver as redirects:
//
//	GET /HDP/{platform}/{series}/{type}/{version}[/{file}]
//	  307 Temporary Redirect, Location: <uri><file>
//	  404 when no build matches
//	  502 when the manifest cannot be refreshed
//
//	GET /v1/versions/{platform}
//	  200 with the platform's builds, newest first
package resolver
