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

// Package version implements the build version grammar used to match
// client requests against the builds listed in the upstream manifest.
//
// # Grammar
//
// A version string is split into an ordered list of parts. Each part carries
// the delimiter that preceded it (one of . _ - # ~ ^, empty for the first
// part), a qualifier (a leading run of non-digit characters) and a number
// (the digit run as written, or text starting with the wildcard marker "*").
// A qualifier that follows digits starts a new part without a delimiter:
//
//	"2.2.1.0-2340" -> [2] [.2] [.1] [.0] [-2340]
//	"1rc2"         -> [1] [rc2]
//	"2.*"          -> [2] [.*]
//
// Parsing never fails. The empty string and the absent version both have no
// parts.
//
// # Ordering
//
// Compare defines a total order over numeric values only; qualifiers and
// delimiters are ignored. A part without a number sorts below a concrete
// number, a wildcard part sorts above it, and when all shared parts tie the
// longer version is greater:
//
//	version.Compare(version.Parse("1"), version.Parse("1.2"))   // -1
//	version.Compare(version.Parse("1.1"), version.Parse("1.*")) // -1
//
// # Matching
//
// Match tests a concrete literal against a pattern. The pattern acts as a
// prefix constraint and its wildcard parts accept any number:
//
//	version.Match(version.Parse("2.2.1.0-2340"), version.Parse("2.*"))   // true
//	version.Match(version.Parse("2.2.1.0-2340"), version.Parse("2.3.*")) // false
//	version.Match(version.Parse("1"), version.Parse("1.2"))              // false
//
// Matching is asymmetric: Match(Parse("1"), Parse("*")) is true while
// Match(Parse("*"), Parse("1")) is false.
package version
