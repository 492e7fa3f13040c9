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
	"fmt"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		literal  string
		pattern  string
		expected bool
	}{
		// build use case
		{"2.2.1.0-2340", "2.*", true},
		{"2.2.1.0-2340", "2.3.*", false},
		{"2.2.1.0-2340", "2.2.1.0-2340", true},
		{"2.2.1.0-2340", "2.2.1.0-*", true},
		{"2.2.1.0-2340", "2.2.1.0.*", false},

		// exact
		{"1", "1", true},

		// prefix
		{"1.2", "1", true},
		{"1", "1.2", false},

		// wildcard is asymmetric
		{"1", "*", true},
		{"*", "1", false},
		{"1.2", "*", true},
		{"*", "1.2", false},
		{"1.2", "*.*", true},
		{"*.*", "1.2", false},

		// qualifiers
		{"1rc2", "1rc*", true},
		{"1rc*", "1rc2", false},
		{"1rc2", "1", true},
		{"1", "1rc2", false},
		{"1rc2", "1beta*", false},

		// numbers compare as text
		{"01", "1", false},
		{"1", "01", false},

		// delimiters must match
		{"1-2", "1.2", false},
		{"1-2", "1.*", false},
		{"1-2", "1-*", true},

		// qualifiers compare byte for byte, including invalid utf-8
		{"1.a\xff2", "1.a\xfe2", false},
		{"1.a\xff2", "1.a\ufffd2", false},
		{"1.a\xff2", "1.a\xff*", true},
		{"1.a\xff2", "1.a\xff2", true},

		// empty input
		{"", "", true},
		{"", "*", false},
		{"1", "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_matches_%s", tt.literal, tt.pattern), func(t *testing.T) {
			if got := Match(Parse(tt.literal), Parse(tt.pattern)); got != tt.expected {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.literal, tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestMatchAbsent(t *testing.T) {
	if !Match(Absent(), Absent()) {
		t.Error("absent should match absent")
	}
	if Match(Absent(), Parse("*")) {
		t.Error("absent should not match a wildcard")
	}
	if !Parse("1").Matches(Absent()) {
		t.Error("an absent pattern constrains nothing")
	}
}

func TestMatchSelf(t *testing.T) {
	for _, s := range []string{"", "1", "1.2.3", "2.2.1.0-2340", "1rc2", "a.b", "1..2", "v1_0~2"} {
		v := Parse(s)
		if !Match(v, v) {
			t.Errorf("Match(%q, %q) = false, want true", s, s)
		}
	}
}
