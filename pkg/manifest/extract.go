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
	stderrors "errors"
	"regexp"

	brerrors "github.com/releng/build-redirect/pkg/errors"
)

// ErrInvalidURI is returned when a build URI does not end in "/<version>/".
var ErrInvalidURI = stderrors.New("uri does not end in /<version>/")

// versionTokenPattern captures the segment between the last two slashes of
// a URI that ends in a slash.
var versionTokenPattern = regexp.MustCompile(`^.*/(.*?)/$`)

// ExtractVersion returns the version token of a build URI, the path segment
// immediately preceding its trailing slash. URIs of any other shape fail with
// ErrCodeParse wrapping ErrInvalidURI.
func ExtractVersion(uri string) (string, error) {
	m := versionTokenPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", brerrors.WrapWithContext(brerrors.ErrCodeParse,
			"failed to extract version from build uri", ErrInvalidURI,
			map[string]any{"uri": uri})
	}
	return m[1], nil
}
