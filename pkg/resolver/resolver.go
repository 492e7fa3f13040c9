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
	"context"
	stderrors "errors"
	"log/slog"
	"maps"

	brerrors "github.com/releng/build-redirect/pkg/errors"
	"github.com/releng/build-redirect/pkg/manifest"
	"github.com/releng/build-redirect/pkg/version"
)

// ErrNotFound is returned when no build matches the requested version.
var ErrNotFound = stderrors.New("no build matches the requested version")

// VersionSource provides the builds of a platform.
type VersionSource interface {
	Get(ctx context.Context, platform string) (*manifest.Versions, error)
}

// Request identifies the artifact to resolve.
type Request struct {
	Platform string `json:"platform" yaml:"platform"`
	Series   string `json:"series,omitempty" yaml:"series,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Version  string `json:"version" yaml:"version"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Result is a resolved download location.
type Result struct {
	URI     string `json:"uri" yaml:"uri"`
	Version string `json:"version" yaml:"version"`
	File    string `json:"file" yaml:"file"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRepoFiles sets per-platform repository file overrides.
func WithRepoFiles(files map[string]string) Option {
	return func(r *Resolver) {
		maps.Copy(r.repoFiles, files)
	}
}

// WithDefaultFile sets the file used for platforms without an override or
// built-in repository file.
func WithDefaultFile(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.defaultFile = name
		}
	}
}

// Resolver selects the newest build matching a version pattern.
type Resolver struct {
	source      VersionSource
	repoFiles   map[string]string
	defaultFile string
}

// New returns a Resolver reading builds from source.
func New(source VersionSource, opts ...Option) *Resolver {
	r := &Resolver{
		source:      source,
		repoFiles:   make(map[string]string),
		defaultFile: DefaultRepoFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Versions returns the builds of platform.
func (r *Resolver) Versions(ctx context.Context, platform string) (*manifest.Versions, error) {
	if platform == "" {
		return nil, brerrors.New(brerrors.ErrCodeInvalidRequest, "platform is required")
	}
	return r.source.Get(ctx, platform)
}

// Resolve returns the location of the greatest build of req.Platform whose
// version matches req.Version. It fails with ErrNotFound when none does, and
// with the refresh error when the builds cannot be loaded.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	pattern := version.Parse(req.Version)

	versions, err := r.Versions(ctx, req.Platform)
	if err != nil {
		resolutionsTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}

	file := req.File
	if file == "" {
		file = r.RepoFile(req.Platform)
	}

	var (
		match manifest.Entry
		found bool
	)
	versions.Descend(func(e manifest.Entry) bool {
		if version.Match(e.Version, pattern) {
			match, found = e, true
			return false
		}
		return true
	})

	if !found {
		resolutionsTotal.WithLabelValues(outcomeNotFound).Inc()
		slog.Debug("no matching build",
			"platform", req.Platform,
			"series", req.Series,
			"type", req.Type,
			"version", req.Version,
			"candidates", versions.Len())
		return nil, brerrors.WrapWithContext(brerrors.ErrCodeNotFound, "No matching build", ErrNotFound,
			map[string]any{
				"platform": req.Platform,
				"version":  req.Version,
			})
	}

	resolutionsTotal.WithLabelValues(outcomeFound).Inc()
	res := &Result{
		URI:     match.URI + file,
		Version: match.Version.String(),
		File:    file,
	}
	slog.Debug("resolved build",
		"platform", req.Platform,
		"series", req.Series,
		"type", req.Type,
		"pattern", req.Version,
		"version", res.Version,
		"uri", res.URI)
	return res, nil
}
