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

import (
	"github.com/releng/build-redirect/pkg/manifest"
)

// VersionEntry is one build in a VersionList.
type VersionEntry struct {
	Version string `json:"version" yaml:"version"`
	URI     string `json:"uri" yaml:"uri"`
}

// VersionList is a platform's builds, newest first.
type VersionList struct {
	Platform string         `json:"platform" yaml:"platform"`
	RepoFile string         `json:"repoFile" yaml:"repoFile"`
	Versions []VersionEntry `json:"versions" yaml:"versions"`
}

// NewVersionList flattens versions into a VersionList.
func NewVersionList(platform, repoFile string, versions *manifest.Versions) *VersionList {
	l := &VersionList{
		Platform: platform,
		RepoFile: repoFile,
		Versions: make([]VersionEntry, 0, versions.Len()),
	}
	versions.Descend(func(e manifest.Entry) bool {
		l.Versions = append(l.Versions, VersionEntry{Version: e.Version.String(), URI: e.URI})
		return true
	})
	return l
}

// Header implements serializer.Tabular.
func (l *VersionList) Header() []string {
	return []string{"VERSION", "URI"}
}

// Rows implements serializer.Tabular.
func (l *VersionList) Rows() [][]string {
	rows := make([][]string, 0, len(l.Versions))
	for _, v := range l.Versions {
		rows = append(rows, []string{v.Version, v.URI})
	}
	return rows
}
