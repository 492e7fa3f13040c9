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

// Package config loads the redirect service configuration.
//
// Settings come from built-in defaults, then an optional YAML file, then
// environment variables; later sources win:
//
//	source: http://s3.amazonaws.com/dev.hortonworks.com/HDP/hdp_urlinfo.json
//	cacheTimeout: 15m
//	refreshSchedule: "@every 10m"
//	platforms:
//	  centos6: custom.repo
//
// Environment variables:
//
//	CONFIG_FILE        path of the YAML file
//	INFO_URL           manifest source (URL or local path)
//	CACHE_TIMEOUT      cache TTL as a duration, e.g. 15m or 1h1m1s
//	REFRESH_SCHEDULE   cron spec for background refreshes; empty disables
//	PLATFORM_<NAME>    repository file for platform <name>, e.g. PLATFORM_CENTOS6=custom.repo
package config
