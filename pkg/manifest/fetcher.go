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

package manifest

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	brerrors "github.com/releng/build-redirect/pkg/errors"
	"github.com/releng/build-redirect/pkg/serializer"
)

// Fetcher retrieves the current manifest from its source.
type Fetcher interface {
	Fetch(ctx context.Context) (*Manifest, error)
}

// HTTPFetcher reads the manifest from an HTTP(S) URL.
type HTTPFetcher struct {
	url    string
	reader *serializer.HttpReader
}

// NewHTTPFetcher returns a fetcher for url. Reader options are applied after
// the JSON Accept header is set.
func NewHTTPFetcher(url string, opts ...serializer.HttpReaderOption) *HTTPFetcher {
	opts = append([]serializer.HttpReaderOption{serializer.WithAccept("application/json")}, opts...)
	return &HTTPFetcher{
		url:    url,
		reader: serializer.NewHttpReader(opts...),
	}
}

// Fetch downloads and decodes the manifest.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*Manifest, error) {
	data, err := f.reader.ReadWithContext(ctx, f.url)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, brerrors.WrapWithContext(brerrors.ErrCodeTimeout, "manifest fetch timed out", err,
				map[string]any{"source": f.url})
		}
		return nil, brerrors.WrapWithContext(brerrors.ErrCodeUnavailable, "failed to fetch manifest", err,
			map[string]any{"source": f.url})
	}
	return decodeFrom(f.url, data)
}

func (f *HTTPFetcher) String() string {
	return f.url
}

// FileFetcher reads the manifest from a local file.
type FileFetcher struct {
	path string
}

// NewFileFetcher returns a fetcher for the file at path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

// Fetch reads and decodes the manifest.
func (f *FileFetcher) Fetch(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, brerrors.Wrap(brerrors.ErrCodeTimeout, "manifest read canceled", err)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, brerrors.WrapWithContext(brerrors.ErrCodeUnavailable, "failed to read manifest", err,
			map[string]any{"source": f.path})
	}
	return decodeFrom(f.path, data)
}

func (f *FileFetcher) String() string {
	return f.path
}

func decodeFrom(source string, data []byte) (*Manifest, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, brerrors.WrapWithContext(brerrors.ErrCodeUnavailable, "invalid manifest", err,
			map[string]any{"source": source})
	}
	return m, nil
}

// NewFetcher returns an HTTPFetcher for http and https URLs and a FileFetcher
// for file URLs and plain paths.
func NewFetcher(source string, opts ...serializer.HttpReaderOption) (Fetcher, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, brerrors.New(brerrors.ErrCodeInvalidRequest, "manifest source is required")
	}
	if !strings.Contains(source, "://") {
		return NewFileFetcher(source), nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, brerrors.Wrap(brerrors.ErrCodeInvalidRequest, fmt.Sprintf("invalid manifest source %q", source), err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPFetcher(source, opts...), nil
	case "file":
		if u.Path == "" {
			return nil, brerrors.New(brerrors.ErrCodeInvalidRequest, fmt.Sprintf("file source %q has no path", source))
		}
		return NewFileFetcher(u.Path), nil
	default:
		return nil, brerrors.New(brerrors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported manifest source scheme %q", u.Scheme))
	}
}
