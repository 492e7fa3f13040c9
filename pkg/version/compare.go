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

package version

import (
	"cmp"
	"slices"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. Only numeric values take part; qualifiers and delimiters are
// ignored.
//
// At each shared index a missing number sorts below a concrete one unless the
// part is a wildcard, which sorts above it. When every shared index ties, the
// version with more parts is greater.
func Compare(a, b Version) int {
	n := min(len(a.parts), len(b.parts))
	for i := 0; i < n; i++ {
		ap, bp := a.parts[i], b.parts[i]
		switch {
		case !ap.HasValue && !bp.HasValue:
			continue
		case !ap.HasValue:
			if ap.Wildcard {
				return 1
			}
			return -1
		case !bp.HasValue:
			if bp.Wildcard {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(ap.Value, bp.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.parts), len(b.parts))
}

// Less reports whether a sorts strictly before b.
func Less(a, b Version) bool {
	return Compare(a, b) < 0
}

// Compare is the method form of Compare.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Sort sorts versions in ascending order. Versions that compare equal keep
// their relative order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Compare)
}
