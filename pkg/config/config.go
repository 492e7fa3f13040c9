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
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/releng/build-redirect/pkg/defaults"
	brerrors "github.com/releng/build-redirect/pkg/errors"
)

// Environment variables read by Load.
const (
	EnvConfigFile      = "CONFIG_FILE"
	EnvSource          = "INFO_URL"
	EnvCacheTimeout    = "CACHE_TIMEOUT"
	EnvRefreshSchedule = "REFRESH_SCHEDULE"
	EnvPlatformPrefix  = "PLATFORM_"
)

// Config holds the redirect service settings.
type Config struct {
	// Source is the manifest location, an http(s) URL or a local path.
	Source string
	// CacheTTL is the maximum manifest snapshot age.
	CacheTTL time.Duration
	// RepoFiles overrides the repository file per platform.
	RepoFiles map[string]string
	// RefreshSchedule is a cron spec for background refreshes. Empty
	// disables them.
	RefreshSchedule string
}

// fileConfig is the YAML file layout.
type fileConfig struct {
	Source          string            `yaml:"source"`
	CacheTimeout    string            `yaml:"cacheTimeout"`
	Platforms       map[string]string `yaml:"platforms"`
	RefreshSchedule string            `yaml:"refreshSchedule"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:    defaults.ManifestSource,
		CacheTTL:  defaults.CacheTTL,
		RepoFiles: make(map[string]string),
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// $CONFIG_FILE when path is empty) and the environment, and validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, brerrors.WrapWithContext(brerrors.ErrCodeInvalidRequest, "failed to read config file", err,
				map[string]any{"path": path})
		}
		if err := cfg.applyFile(data); err != nil {
			return nil, brerrors.WrapWithContext(brerrors.ErrCodeInvalidRequest, "invalid config file", err,
				map[string]any{"path": path})
		}
	}

	if err := cfg.applyEnv(os.Environ()); err != nil {
		return nil, brerrors.Wrap(brerrors.ErrCodeInvalidRequest, "invalid environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	if fc.Source != "" {
		c.Source = fc.Source
	}
	if fc.CacheTimeout != "" {
		ttl, err := ParseTTL(fc.CacheTimeout)
		if err != nil {
			return err
		}
		c.CacheTTL = ttl
	}
	if fc.RefreshSchedule != "" {
		c.RefreshSchedule = fc.RefreshSchedule
	}
	maps.Copy(c.RepoFiles, fc.Platforms)
	return nil
}

// applyEnv applies KEY=VALUE pairs as returned by os.Environ.
func (c *Config) applyEnv(environ []string) error {
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		switch {
		case key == EnvSource:
			if val != "" {
				c.Source = val
			}
		case key == EnvCacheTimeout:
			if val == "" {
				continue
			}
			ttl, err := ParseTTL(val)
			if err != nil {
				return fmt.Errorf("%s: %w", EnvCacheTimeout, err)
			}
			c.CacheTTL = ttl
		case key == EnvRefreshSchedule:
			if val != "" {
				c.RefreshSchedule = val
			}
		case strings.HasPrefix(key, EnvPlatformPrefix):
			platform := strings.ToLower(strings.TrimPrefix(key, EnvPlatformPrefix))
			if platform != "" && val != "" {
				c.RepoFiles[platform] = val
			}
		}
	}
	return nil
}

// ParseTTL parses a cache timeout such as "15m" or "1h1m1s".
func ParseTTL(s string) (time.Duration, error) {
	ttl, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid cache timeout %q: %w", s, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("cache timeout must be positive, got %q", s)
	}
	return ttl, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return brerrors.New(brerrors.ErrCodeInvalidRequest, "manifest source is required")
	}
	if c.CacheTTL <= 0 {
		return brerrors.NewWithContext(brerrors.ErrCodeInvalidRequest, "cache timeout must be positive",
			map[string]any{"cacheTTL": c.CacheTTL.String()})
	}
	if c.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
			return brerrors.WrapWithContext(brerrors.ErrCodeInvalidRequest, "invalid refresh schedule", err,
				map[string]any{"schedule": c.RefreshSchedule})
		}
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source", c.Source),
		slog.Duration("cacheTTL", c.CacheTTL),
		slog.String("refreshSchedule", c.RefreshSchedule),
		slog.Any("repoFiles", c.RepoFiles),
	)
}
