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

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve a version pattern to a download location",
		ArgsUsage:             "<version-pattern>",
		Description: `Resolve a version pattern against the build manifest and print the result.

Patterns are dot-separated numeric components where '*' matches any value:

  redirect resolve --platform centos6 2.3.*

  2.3.*      newest 2.3 build
  2.*        newest 2.x build
  2.3.0.0    exact build

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			platformFlag(),
			&cli.StringFlag{
				Name:  "file",
				Usage: "File to resolve (default: the platform's repository file)",
			},
			&cli.StringFlag{
				Name:  "series",
				Usage: "Release series, informational (e.g., 2.x)",
			},
			&cli.StringFlag{
				Name:  "type",
				Value: "BUILDS",
				Usage: "Artifact type, informational",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIResolveTimeout,
				Usage: "Timeout for fetching the manifest",
			},
			sourceFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version pattern, got %d arguments", cmd.Args().Len())
			}

			svc, err := newService(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize resolver: %w", err)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			res, err := svc.Resolver.Resolve(ctx, resolver.Request{
				Platform: cmd.String("platform"),
				Series:   cmd.String("series"),
				Type:     cmd.String("type"),
				Version:  cmd.Args().First(),
				File:     cmd.String("file"),
			})
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, res)
		},
	}
}
