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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/releng/build-redirect/pkg/resolver"
	"github.com/releng/build-redirect/pkg/serializer"
)

const testManifest = `{
  "HDP-2.2": {"latest": {"centos6": "http://x/2.2.0.0-1234/"}},
  "HDP-2.3": {"latest": {"centos6": "http://x/2.3.0.0-5678/", "ubuntu12": "http://u/2.3.0.0-5678/"}}
}`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hdp_urlinfo.json")
	if err := os.WriteFile(path, []byte(testManifest), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a minimal CLI command with the format flag
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "generic", err: errors.New("boom"), want: 1},
		{name: "canceled", err: context.Canceled, want: 2},
		{name: "wrapped deadline", err: fmt.Errorf("fetch: %w", context.DeadlineExceeded), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	if root.Name != name {
		t.Errorf("root name = %q, want %q", root.Name, name)
	}

	for _, want := range []string{"serve", "resolve", "versions"} {
		if root.Command(want) == nil {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestResolveCmd(t *testing.T) {
	manifestPath := writeManifest(t)

	tests := []struct {
		name    string
		args    []string
		wantURI string
		wantErr bool
	}{
		{
			name:    "newest in series",
			args:    []string{"--platform", "centos6", "2.*"},
			wantURI: "http://x/2.3.0.0-5678/hdpbn.repo",
		},
		{
			name:    "explicit file",
			args:    []string{"--platform", "centos6", "--file", "hdp.repo", "2.2.*"},
			wantURI: "http://x/2.2.0.0-1234/hdp.repo",
		},
		{
			name:    "builtin list file",
			args:    []string{"--platform", "ubuntu12", "2.3.0.0"},
			wantURI: "http://u/2.3.0.0-5678/hdp.list",
		},
		{
			name:    "no match",
			args:    []string{"--platform", "centos6", "9.*"},
			wantErr: true,
		},
		{
			name:    "missing pattern",
			args:    []string{"--platform", "centos6"},
			wantErr: true,
		},
		{
			name:    "bad format",
			args:    []string{"--platform", "centos6", "--format", "xml", "2.*"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "result.json")
			args := append([]string{name, "resolve", "--source", manifestPath, "--format", "json", "--output", out}, tt.args...)

			err := newRootCmd().Run(context.Background(), args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}
			var res resolver.Result
			if err := json.Unmarshal(data, &res); err != nil {
				t.Fatalf("failed to decode output: %v", err)
			}
			if res.URI != tt.wantURI {
				t.Errorf("URI = %q, want %q", res.URI, tt.wantURI)
			}
		})
	}
}

func TestVersionsCmd(t *testing.T) {
	manifestPath := writeManifest(t)
	out := filepath.Join(t.TempDir(), "versions.txt")

	err := newRootCmd().Run(context.Background(), []string{
		name, "versions", "--source", manifestPath, "--platform", "centos6", "--output", out,
	})
	if err != nil {
		t.Fatalf("versions error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := string(data)

	newest := strings.Index(got, "2.3.0.0")
	oldest := strings.Index(got, "2.2.0.0")
	if newest < 0 || oldest < 0 {
		t.Fatalf("output missing versions:\n%s", got)
	}
	if newest > oldest {
		t.Errorf("versions not listed newest first:\n%s", got)
	}
}

func TestVersionsCmd_MissingSource(t *testing.T) {
	err := newRootCmd().Run(context.Background(), []string{
		name, "versions", "--source", filepath.Join(t.TempDir(), "missing.json"), "--platform", "centos6",
	})
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
