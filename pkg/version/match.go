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

// Match reports whether the concrete literal satisfies pattern.
//
// Every pattern part must have a counterpart in literal with the same
// delimiter and qualifier. Numbers must be textually equal ("01" does not
// match "1") unless the pattern part is a wildcard. literal may have more
// parts than pattern.
func Match(literal, pattern Version) bool {
	if len(pattern.parts) > len(literal.parts) {
		return false
	}
	for i, pp := range pattern.parts {
		if !matchPart(literal.parts[i], pp) {
			return false
		}
	}
	return true
}

// Matches is the method form of Match with v as the literal.
func (v Version) Matches(pattern Version) bool {
	return Match(v, pattern)
}

func matchPart(literal, pattern Part) bool {
	if literal.Delimiter != pattern.Delimiter || literal.Qualifier != pattern.Qualifier {
		return false
	}
	return pattern.Wildcard || literal.Number == pattern.Number
}
