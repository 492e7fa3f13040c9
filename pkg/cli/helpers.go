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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/releng/build-redirect/pkg/api"
	"github.com/releng/build-redirect/pkg/config"
	"github.com/releng/build-redirect/pkg/serializer"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   fmt.Sprintf("Path to the YAML configuration file (default: $%s)", config.EnvConfigFile),
	}
}

func sourceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "source",
		Aliases: []string{"s"},
		Usage:   "Manifest URL or file path, overrides the configured source",
	}
}

func platformFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "platform",
		Aliases:  []string{"p"},
		Usage:    "Platform identifier (e.g., centos6, ubuntu12)",
		Required: true,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// newService loads configuration and applies the --source override.
func newService(cmd *cli.Command) (*api.Service, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if src := cmd.String("source"); src != "" {
		cfg.Source = src
	}
	return api.NewService(cfg)
}

// writeOutput serializes data to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, data)
}
