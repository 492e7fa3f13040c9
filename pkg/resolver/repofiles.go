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

package resolver

// DefaultRepoFile is used for platforms without an override or built-in
// repository file.
const DefaultRepoFile = "hdp.repo"

// builtinRepoFiles are the repository files published for each platform.
var builtinRepoFiles = map[string]string{
	"centos5":  "hdpbn.repo",
	"centos6":  "hdpbn.repo",
	"suse11":   "hdp.repo",
	"ubuntu12": "hdp.list",
}

// RepoFile returns the repository file for platform: the configured
// override, then the built-in name, then the default file.
func (r *Resolver) RepoFile(platform string) string {
	if name, ok := r.repoFiles[platform]; ok && name != "" {
		return name
	}
	if name, ok := builtinRepoFiles[platform]; ok {
		return name
	}
	return r.defaultFile
}
