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

// Package cli implements the redirect command-line tool.
//
// # Commands
//
// serve - Run the HTTP redirect service:
//
//	redirect serve [--config FILE]
//
// resolve - Resolve a version pattern to a download location:
//
//	redirect resolve --platform centos6 [--file hdp.repo] [--format json] 2.3.*
//
// versions - List the builds known for a platform, newest first:
//
//	redirect versions --platform centos6 [--format table]
//
// # Global Flags
//
//	--config, -c   Configuration file (default: $CONFIG_FILE)
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// resolve and versions also accept --source to point at a different
// manifest (URL or file path) and --output/--format for the result.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/releng/build-redirect/pkg/cli.version=1.0.0'"
package cli
