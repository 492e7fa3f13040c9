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

package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/releng/build-redirect/pkg/defaults"
	brerrors "github.com/releng/build-redirect/pkg/errors"
	"github.com/releng/build-redirect/pkg/version"
)

const refreshKey = "refresh"

// Snapshot is one published result of a refresh. It is never modified after
// publication.
type Snapshot struct {
	Platforms   map[string]*Versions
	RefreshedAt time.Time
}

// Versions returns the collection for platform, or an empty collection if
// the snapshot has no builds for it.
func (s *Snapshot) Versions(platform string) *Versions {
	if s == nil {
		return &Versions{}
	}
	if v, ok := s.Platforms[platform]; ok {
		return v
	}
	return &Versions{}
}

// PlatformNames returns the platforms in the snapshot, sorted.
func (s *Snapshot) PlatformNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Platforms))
	for name := range s.Platforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of entries across all platforms.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, v := range s.Platforms {
		n += v.Len()
	}
	return n
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL sets the maximum snapshot age. Non-positive values are ignored.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for staleness checks and snapshot timestamps.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// Cache holds the per-platform version index built from the manifest.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	snapshot atomic.Pointer[Snapshot]

	// mu serializes rebuilds; group coalesces stale readers onto one rebuild.
	mu    sync.Mutex
	group singleflight.Group
}

// NewCache returns an empty cache that rebuilds from fetcher on first use.
func NewCache(fetcher Fetcher, opts ...CacheOption) *Cache {
	c := &Cache{
		fetcher: fetcher,
		ttl:     defaults.CacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured maximum snapshot age.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Snapshot returns the published snapshot, or nil before the first
// successful refresh.
func (c *Cache) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

func (c *Cache) stale(s *Snapshot) bool {
	return s == nil || c.now().Sub(s.RefreshedAt) > c.ttl
}

// Get returns the builds of platform, refreshing first when the snapshot is
// missing or stale. An unknown platform yields an empty collection. A failed
// refresh is returned to the caller even when an older snapshot exists.
func (c *Cache) Get(ctx context.Context, platform string) (*Versions, error) {
	snap := c.snapshot.Load()
	if !c.stale(snap) {
		cacheHits.Inc()
		return snap.Versions(platform), nil
	}

	cacheMisses.Inc()
	snap, err := c.refreshIfStale(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Versions(platform), nil
}

func (c *Cache) refreshIfStale(ctx context.Context) (*Snapshot, error) {
	// The rebuild outlives any single waiter; the HTTP client timeout bounds it.
	rebuildCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(refreshKey, func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if snap := c.snapshot.Load(); !c.stale(snap) {
			return snap, nil
		}
		return c.rebuild(rebuildCtx)
	})

	select {
	case <-ctx.Done():
		return nil, brerrors.Wrap(brerrors.ErrCodeTimeout, "waiting for manifest refresh", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

// Refresh rebuilds the snapshot regardless of its age.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.rebuild(ctx)
	return err
}

// rebuild fetches the manifest and publishes a new snapshot. Callers hold mu.
// On failure the published snapshot is left as is.
func (c *Cache) rebuild(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	defer func() {
		refreshDuration.Observe(time.Since(start).Seconds())
	}()

	m, err := c.fetcher.Fetch(ctx)
	if err != nil {
		refreshTotal.WithLabelValues(refreshResultError).Inc()
		slog.Error("manifest fetch failed", "source", fmt.Sprint(c.fetcher), "error", err)
		return nil, err
	}

	snap, err := BuildSnapshot(m, c.now())
	if err != nil {
		refreshTotal.WithLabelValues(refreshResultError).Inc()
		slog.Error("manifest rejected", "source", fmt.Sprint(c.fetcher), "error", err)
		return nil, err
	}

	c.snapshot.Store(snap)
	refreshTotal.WithLabelValues(refreshResultSuccess).Inc()
	cachedPlatforms.Set(float64(len(snap.Platforms)))
	cachedEntries.Set(float64(snap.Len()))

	slog.Info("manifest refreshed",
		"platforms", len(snap.Platforms),
		"entries", snap.Len(),
		"builds", m.Len(),
		"duration", time.Since(start))

	return snap, nil
}

// BuildSnapshot indexes every build of m by platform and version. Builds are
// applied in document order, so a later build replaces an earlier one whose
// version compares equal. Any URI without a version token fails the whole
// snapshot.
func BuildSnapshot(m *Manifest, at time.Time) (*Snapshot, error) {
	snap := &Snapshot{
		Platforms:   make(map[string]*Versions),
		RefreshedAt: at,
	}
	if m == nil {
		return snap, nil
	}

	for _, s := range m.Series {
		for _, b := range s.Latest {
			token, err := ExtractVersion(b.URI)
			if err != nil {
				return nil, fmt.Errorf("series %s platform %s: %w", s.ID, b.Platform, err)
			}

			v, ok := snap.Platforms[b.Platform]
			if !ok {
				v = NewVersions()
				snap.Platforms[b.Platform] = v
			}
			if v.put(Entry{Version: version.Parse(token), URI: b.URI}) {
				slog.Debug("build version replaced",
					"series", s.ID, "platform", b.Platform, "version", token)
			}
		}
	}
	return snap, nil
}
