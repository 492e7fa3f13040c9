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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/releng/build-redirect/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP redirect service",
		Description: `Serves redirects until SIGINT or SIGTERM.

Configuration is read from --config (or $CONFIG_FILE) and the environment:
  INFO_URL          manifest source
  CACHE_TIMEOUT     manifest time-to-live (e.g., 15m)
  REFRESH_SCHEDULE  optional cron schedule for background refresh
  PLATFORM_<NAME>   repository file override for a platform
  PORT, RATE_LIMIT, SHUTDOWN_TIMEOUT_SECONDS`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, cmd.String("config"))
		},
	}
}
