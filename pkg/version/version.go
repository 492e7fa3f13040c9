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
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// Wildcard marks a part whose number is unconstrained during matching.
	Wildcard = '*'

	// Delimiters lists the characters that separate version parts.
	Delimiters = "._-#~^"
)

// Part is one delimiter, qualifier and number segment of a Version.
type Part struct {
	// Delimiter is the separator that preceded this part, empty for the first.
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Qualifier is the leading run of non-digit, non-wildcard characters.
	Qualifier string `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`

	// Number is the digit run as written, or text beginning with the wildcard.
	Number string `json:"number,omitempty" yaml:"number,omitempty"`

	// Value is the numeric value of Number; only meaningful when HasValue is set.
	Value uint64 `json:"value,omitempty" yaml:"value,omitempty"`

	// HasValue is false when Number is empty, a wildcard, or not a pure digit run.
	HasValue bool `json:"hasValue" yaml:"hasValue"`

	// Wildcard is true when Number begins with the wildcard marker.
	Wildcard bool `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
}

// newPart builds a Part and derives its numeric value and wildcard flag.
// Digit runs that do not fit in a uint64 saturate at math.MaxUint64.
func newPart(delimiter, qualifier, number string) Part {
	p := Part{
		Delimiter: delimiter,
		Qualifier: qualifier,
		Number:    number,
		Wildcard:  strings.HasPrefix(number, string(Wildcard)),
	}
	if number == "" || p.Wildcard {
		return p
	}

	n, err := strconv.ParseUint(number, 10, 64)
	switch {
	case err == nil:
		p.Value, p.HasValue = n, true
	case errors.Is(err, strconv.ErrRange):
		p.Value, p.HasValue = math.MaxUint64, true
	}
	return p
}

// String reassembles the part as delimiter + qualifier + number.
func (p Part) String() string {
	return p.Delimiter + p.Qualifier + p.Number
}

// Version is a parsed build version. The zero value is the absent version.
type Version struct {
	original string
	present  bool
	parts    []Part
}

// Parse parses s into a Version. It never fails; every string, including
// the empty string, yields a Version.
func Parse(s string) Version {
	return Version{
		original: s,
		present:  true,
		parts:    parseParts(s),
	}
}

// Absent returns the version representing a missing input.
// It has no parts and equals only other absent versions.
func Absent() Version {
	return Version{}
}

// parser tracks the part currently being scanned as byte offsets into the
// input, so every field is an exact substring of it.
type parser struct {
	s      string
	start  int // first byte of the current part, including its delimiter
	delim  int // length of the leading delimiter, 0 or 1
	number int // first byte of the number run, or -1 before one is seen
	parts  []Part
}

func (p *parser) flush(end int) {
	qualifierEnd, number := end, ""
	if p.number >= 0 {
		qualifierEnd, number = p.number, p.s[p.number:end]
	}
	p.parts = append(p.parts, newPart(
		p.s[p.start:p.start+p.delim],
		p.s[p.start+p.delim:qualifierEnd],
		number,
	))
	p.start, p.delim, p.number = end, 0, -1
}

// parseParts scans bytes rather than runes: delimiters, digits and the
// wildcard are ASCII, and any other byte, valid UTF-8 or not, is kept
// verbatim in the qualifier.
func parseParts(s string) []Part {
	p := parser{s: s, number: -1}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case strings.IndexByte(Delimiters, c) >= 0:
			// a delimiter always closes the current part, even an empty one
			p.flush(i)
			p.delim = 1
		case c == Wildcard || isDigit(c):
			if p.number < 0 {
				p.number = i
			}
		case p.number < 0:
			// still in the qualifier
		default:
			// qualifier after digits: implicit part boundary, no delimiter
			p.flush(i)
		}
	}
	if len(s) > p.start {
		p.flush(len(s))
	}
	return p.parts
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String returns the original input, or the empty string for the absent version.
func (v Version) String() string {
	return v.original
}

// IsAbsent reports whether v represents a missing input.
func (v Version) IsAbsent() bool {
	return !v.present
}

// Len returns the number of parts.
func (v Version) Len() int {
	return len(v.parts)
}

// Parts returns a copy of the parsed parts in input order.
func (v Version) Parts() []Part {
	out := make([]Part, len(v.parts))
	copy(out, v.parts)
	return out
}

// HasWildcard reports whether any part is a wildcard.
func (v Version) HasWildcard() bool {
	for _, p := range v.parts {
		if p.Wildcard {
			return true
		}
	}
	return false
}

// Equal reports whether v and other were parsed from the same input.
// The absent version equals only another absent version.
func (v Version) Equal(other Version) bool {
	return v.present == other.present && v.original == other.original
}

// MarshalText encodes the version as its original text.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.original), nil
}

// UnmarshalText parses text into v.
func (v *Version) UnmarshalText(text []byte) error {
	*v = Parse(string(text))
	return nil
}
