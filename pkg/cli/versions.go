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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/releng/build-redirect/pkg/defaults"
	"github.com/releng/build-redirect/pkg/resolver"
)

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List the builds known for a platform, newest first",
		Flags: []cli.Flag{
			platformFlag(),
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIResolveTimeout,
				Usage: "Timeout for fetching the manifest",
			},
			sourceFlag(),
			outputFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "table",
				Usage:   "Output format (json, yaml, table)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			svc, err := newService(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize resolver: %w", err)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			platform := cmd.String("platform")
			versions, err := svc.Resolver.Versions(ctx, platform)
			if err != nil {
				return err
			}

			list := resolver.NewVersionList(platform, svc.Resolver.RepoFile(platform), versions)
			return writeOutput(ctx, cmd, list)
		},
	}
}
