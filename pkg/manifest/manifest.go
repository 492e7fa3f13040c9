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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const latestKey = "latest"

// Build is one platform entry of a series' latest block.
type Build struct {
	Platform string `json:"platform" yaml:"platform"`
	URI      string `json:"uri" yaml:"uri"`
}

// Series is one top-level entry of the manifest.
type Series struct {
	ID     string  `json:"id" yaml:"id"`
	Latest []Build `json:"latest" yaml:"latest"`
}

// Manifest is the decoded upstream document. Series and builds keep the
// order in which their keys first appear in the source; a repeated key
// keeps that position and takes the last value.
type Manifest struct {
	Series []Series `json:"series" yaml:"series"`
}

// Len returns the total number of builds across all series.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, s := range m.Series {
		n += len(s.Latest)
	}
	return n
}

// Decode parses a JSON manifest document. It walks the token stream so
// object key order is preserved.
func Decode(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest is empty")
	}
	if err != nil {
		return nil, decodeError(err)
	}
	if !isDelim(tok, '{') {
		return nil, fmt.Errorf("manifest root must be an object, got %s", kindOf(tok))
	}

	m := &Manifest{}
	index := make(map[string]int)
	for dec.More() {
		id, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		s, err := decodeSeries(dec, id)
		if err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			m.Series[i] = s
			continue
		}
		index[id] = len(m.Series)
		m.Series = append(m.Series, s)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after manifest at offset %d", dec.InputOffset())
	}
	return m, nil
}

// decodeSeries reads one series object. Only the last "latest" block is
// kept; other members are skipped.
func decodeSeries(dec *json.Decoder, id string) (Series, error) {
	s := Series{ID: id}

	tok, err := dec.Token()
	if err != nil {
		return s, decodeError(err)
	}
	if !isDelim(tok, '{') {
		return s, fmt.Errorf("series %q must be an object, got %s", id, kindOf(tok))
	}

	found := false
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return s, err
		}
		if key != latestKey {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return s, decodeError(err)
			}
			continue
		}
		if s.Latest, err = decodeLatest(dec, id); err != nil {
			return s, err
		}
		found = true
	}
	if err := expectDelim(dec, '}'); err != nil {
		return s, err
	}
	if !found {
		return s, fmt.Errorf("series %q has no %s block", id, latestKey)
	}
	return s, nil
}

// decodeLatest reads a platform to URI object. A repeated platform keeps
// its first position and its last URI.
func decodeLatest(dec *json.Decoder, id string) ([]Build, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, decodeError(err)
	}
	if !isDelim(tok, '{') {
		return nil, fmt.Errorf("series %q: %s must be an object, got %s", id, latestKey, kindOf(tok))
	}

	var builds []Build
	index := make(map[string]int)
	for dec.More() {
		platform, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, decodeError(err)
		}
		uri, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("series %q platform %q: uri must be a string, got %s", id, platform, kindOf(tok))
		}
		if i, ok := index[platform]; ok {
			builds[i].URI = uri
			continue
		}
		index[platform] = len(builds)
		builds = append(builds, Build{Platform: platform, URI: uri})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if builds == nil {
		builds = []Build{}
	}
	return builds, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", decodeError(err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key at offset %d, got %s", dec.InputOffset(), kindOf(tok))
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return decodeError(err)
	}
	if !isDelim(tok, want) {
		return fmt.Errorf("expected %q at offset %d, got %s", want, dec.InputOffset(), kindOf(tok))
	}
	return nil
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("failed to decode manifest: %w", err)
}

func isDelim(tok json.Token, want json.Delim) bool {
	d, ok := tok.(json.Delim)
	return ok && d == want
}

func kindOf(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return "object"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
