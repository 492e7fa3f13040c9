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
	"github.com/google/btree"

	"github.com/releng/build-redirect/pkg/version"
)

const btreeDegree = 8

// Entry pairs a build version with its URI prefix.
type Entry struct {
	Version version.Version `json:"version" yaml:"version"`
	URI     string          `json:"uri" yaml:"uri"`
}

func lessEntry(a, b Entry) bool {
	return version.Less(a.Version, b.Version)
}

// Versions is one platform's builds ordered by version.Compare. Entries whose
// versions compare equal share a slot; the last one inserted wins.
// A published Versions is never modified. The zero value is an empty
// collection.
type Versions struct {
	tree *btree.BTreeG[Entry]
}

// NewVersions builds a collection from entries in order.
func NewVersions(entries ...Entry) *Versions {
	v := &Versions{tree: btree.NewG(btreeDegree, lessEntry)}
	for _, e := range entries {
		v.put(e)
	}
	return v
}

// put inserts e and reports whether it replaced an equal-order entry.
func (v *Versions) put(e Entry) bool {
	_, replaced := v.tree.ReplaceOrInsert(e)
	return replaced
}

// Len returns the number of entries.
func (v *Versions) Len() int {
	if v == nil || v.tree == nil {
		return 0
	}
	return v.tree.Len()
}

// Descend calls fn for each entry from the greatest version down until fn
// returns false.
func (v *Versions) Descend(fn func(Entry) bool) {
	if v.Len() == 0 {
		return
	}
	v.tree.Descend(fn)
}

// Ascend calls fn for each entry from the least version up until fn returns
// false.
func (v *Versions) Ascend(fn func(Entry) bool) {
	if v.Len() == 0 {
		return
	}
	v.tree.Ascend(fn)
}

// Max returns the entry with the greatest version.
func (v *Versions) Max() (Entry, bool) {
	if v.Len() == 0 {
		return Entry{}, false
	}
	return v.tree.Max()
}

// Entries returns the entries from the greatest version down.
func (v *Versions) Entries() []Entry {
	out := make([]Entry, 0, v.Len())
	v.Descend(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}
