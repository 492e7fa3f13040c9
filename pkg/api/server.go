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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/robfig/cron/v3"

	"github.com/releng/build-redirect/pkg/config"
	"github.com/releng/build-redirect/pkg/defaults"
	"github.com/releng/build-redirect/pkg/logging"
	"github.com/releng/build-redirect/pkg/manifest"
	"github.com/releng/build-redirect/pkg/resolver"
	"github.com/releng/build-redirect/pkg/server"
)

const (
	name           = "redirectd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/releng/build-redirect/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Service is the wired redirect service.
type Service struct {
	Config   *config.Config
	Cache    *manifest.Cache
	Resolver *resolver.Resolver
	Handler  *resolver.Handler
}

// NewService builds the cache, resolver and handler described by cfg.
func NewService(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fetcher, err := manifest.NewFetcher(cfg.Source)
	if err != nil {
		return nil, err
	}

	cache := manifest.NewCache(fetcher, manifest.WithTTL(cfg.CacheTTL))
	r := resolver.New(cache, resolver.WithRepoFiles(cfg.RepoFiles))

	return &Service{
		Config:   cfg,
		Cache:    cache,
		Resolver: r,
		Handler:  resolver.NewHandler(r),
	}, nil
}

// Routes returns the service's route handlers.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return s.Handler.Routes()
}

// RunRefresher refreshes the cache on the configured schedule until ctx is
// done. Without a schedule it returns immediately. A failed refresh is
// logged and the previous snapshot keeps serving.
func (s *Service) RunRefresher(ctx context.Context) error {
	if s.Config.RefreshSchedule == "" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.Config.RefreshSchedule, func() {
		s.refresh(ctx)
	}); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.Config.RefreshSchedule, err)
	}

	c.Start()
	slog.Info("manifest refresher started", "schedule", s.Config.RefreshSchedule)

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("manifest refresher stopped")
	return nil
}

func (s *Service) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, defaults.HTTPClientTimeout)
	defer cancel()

	if err := s.Cache.Refresh(ctx); err != nil {
		slog.Warn("scheduled manifest refresh failed", "error", err)
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging from LOG_LEVEL, loads configuration from
// $CONFIG_FILE and the environment, and handles graceful shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return Run(context.Background(), "")
}

// Run loads configuration from path (or $CONFIG_FILE when empty), then
// serves until ctx is canceled or a termination signal arrives. The
// default slog logger is used as configured by the caller.
func Run(ctx context.Context, path string) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}
	slog.Info("configuration loaded", "config", cfg)

	svc, err := NewService(cfg)
	if err != nil {
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(svc.Routes()),
	)

	if err := s.Run(ctx, svc.RunRefresher); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
