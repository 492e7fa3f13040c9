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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releng/build-redirect/pkg/defaults"
	brerrors "github.com/releng/build-redirect/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaults.ManifestSource, cfg.Source)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.RefreshSchedule)
	assert.NotNil(t, cfg.RepoFiles)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
source: file:///srv/hdp_urlinfo.json
cacheTimeout: 1h1m1s
refreshSchedule: "@every 10m"
platforms:
  centos6: custom.repo
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:///srv/hdp_urlinfo.json", cfg.Source)
	assert.Equal(t, time.Hour+time.Minute+time.Second, cfg.CacheTTL)
	assert.Equal(t, "@every 10m", cfg.RefreshSchedule)
	assert.Equal(t, map[string]string{"centos6": "custom.repo"}, cfg.RepoFiles)
}

func TestLoad_FileFromEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, writeFile(t, "cacheTimeout: 30s\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := writeFile(t, `
source: http://file.example/info.json
cacheTimeout: 1m
platforms:
  centos6: file.repo
  suse11: file-suse.repo
`)
	t.Setenv(EnvSource, "http://env.example/info.json")
	t.Setenv(EnvCacheTimeout, "2m")
	t.Setenv("PLATFORM_CENTOS6", "env.repo")
	t.Setenv(EnvRefreshSchedule, "*/5 * * * *")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/info.json", cfg.Source)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "env.repo", cfg.RepoFiles["centos6"])
	assert.Equal(t, "file-suse.repo", cfg.RepoFiles["suse11"])
	assert.Equal(t, "*/5 * * * *", cfg.RefreshSchedule)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		env   map[string]string
		setup func(t *testing.T) string
	}{
		{name: "missing file", setup: func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "missing.yaml")
		}},
		{name: "malformed yaml", file: "source: [\n"},
		{name: "bad file timeout", file: "cacheTimeout: soon\n"},
		{name: "bad env timeout", env: map[string]string{EnvCacheTimeout: "900"}},
		{name: "negative env timeout", env: map[string]string{EnvCacheTimeout: "-5m"}},
		{name: "bad schedule", env: map[string]string{EnvRefreshSchedule: "every now and then"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigFile, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			switch {
			case tt.setup != nil:
				path = tt.setup(t)
			case tt.file != "":
				path = writeFile(t, tt.file)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, brerrors.ErrCodeInvalidRequest, brerrors.CodeOf(err))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv([]string{
		"PLATFORM_UBUNTU12=custom.list",
		"PLATFORM_=ignored",
		"PLATFORM_SUSE11=",
		"INFO_URL=",
		"MALFORMED",
		"HOME=/root",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ubuntu12": "custom.list"}, cfg.RepoFiles)
	assert.Equal(t, defaults.ManifestSource, cfg.Source)
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "15m", want: 15 * time.Minute},
		{in: "1h", want: time.Hour},
		{in: " 45s ", want: 45 * time.Second},
		{in: "1h1m1s", want: time.Hour + time.Minute + time.Second},
		{in: "0s", wantErr: true},
		{in: "", wantErr: true},
		{in: "15", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTTL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "descriptor schedule", mutate: func(c *Config) { c.RefreshSchedule = "@hourly" }},
		{name: "empty source", mutate: func(c *Config) { c.Source = " " }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.CacheTTL = 0 }, wantErr: true},
		{name: "bad schedule", mutate: func(c *Config) { c.RefreshSchedule = "61 * * * *" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
