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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brerrors "github.com/releng/build-redirect/pkg/errors"
)

// fakeFetcher serves a configurable manifest and counts calls.
type fakeFetcher struct {
	mu       sync.Mutex
	manifest *Manifest
	err      error
	delay    time.Duration
	calls    atomic.Int32
}

func (f *fakeFetcher) Fetch(ctx context.Context) (*Manifest, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.manifest, f.err
}

func (f *fakeFetcher) set(m *Manifest, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manifest, f.err = m, err
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func centos6Manifest() *Manifest {
	return &Manifest{Series: []Series{
		{ID: "HDP-2.2", Latest: []Build{{Platform: "centos6", URI: "http://x/2.2.0.0-1234/"}}},
		{ID: "HDP-2.3", Latest: []Build{
			{Platform: "centos6", URI: "http://x/2.3.0.0-5678/"},
			{Platform: "ubuntu12", URI: "http://y/2.3.0.0-5678/"},
		}},
	}}
}

func TestCache_GetBuildsOnFirstUse(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest()}
	clock := newClock()
	c := NewCache(f, WithClock(clock.Now), WithTTL(time.Minute))

	assert.Nil(t, c.Snapshot())

	v, err := c.Get(context.Background(), "centos6")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())

	top, ok := v.Max()
	require.True(t, ok)
	assert.Equal(t, "http://x/2.3.0.0-5678/", top.URI)

	snap := c.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, clock.Now(), snap.RefreshedAt)
	assert.Equal(t, []string{"centos6", "ubuntu12"}, snap.PlatformNames())
	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestCache_UnknownPlatformIsEmpty(t *testing.T) {
	c := NewCache(&fakeFetcher{manifest: centos6Manifest()})

	v, err := c.Get(context.Background(), "sles12")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

func TestCache_RefreshesOnlyWhenStale(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest()}
	clock := newClock()
	c := NewCache(f, WithClock(clock.Now), WithTTL(time.Minute))
	ctx := context.Background()

	_, err := c.Get(ctx, "centos6")
	require.NoError(t, err)

	// exactly TTL old is still fresh
	clock.Advance(time.Minute)
	_, err = c.Get(ctx, "centos6")
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.calls.Load())

	clock.Advance(time.Second)
	_, err = c.Get(ctx, "centos6")
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.calls.Load())
	assert.Equal(t, clock.Now(), c.Snapshot().RefreshedAt)
}

func TestCache_FailedRefreshKeepsSnapshot(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest()}
	clock := newClock()
	c := NewCache(f, WithClock(clock.Now), WithTTL(time.Minute))
	ctx := context.Background()

	_, err := c.Get(ctx, "centos6")
	require.NoError(t, err)
	before := c.Snapshot()

	clock.Advance(2 * time.Minute)
	fetchErr := brerrors.New(brerrors.ErrCodeUnavailable, "upstream down")
	f.set(nil, fetchErr)

	_, err = c.Get(ctx, "centos6")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fetchErr))
	assert.Same(t, before, c.Snapshot())
	assert.Equal(t, before.RefreshedAt, c.Snapshot().RefreshedAt)
}

func TestCache_InvalidURIAbortsRefresh(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest()}
	clock := newClock()
	c := NewCache(f, WithClock(clock.Now), WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	before := c.Snapshot()

	bad := centos6Manifest()
	bad.Series[1].Latest = append(bad.Series[1].Latest, Build{Platform: "suse11", URI: "http://z/hdp.repo"})
	f.set(bad, nil)
	clock.Advance(2 * time.Minute)

	_, err := c.Get(ctx, "centos6")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidURI))
	assert.Equal(t, brerrors.ErrCodeParse, brerrors.CodeOf(err))
	assert.Same(t, before, c.Snapshot())
}

func TestCache_ConcurrentStaleCallersFetchOnce(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest(), delay: 50 * time.Millisecond}
	c := NewCache(f, WithClock(newClock().Now), WithTTL(time.Minute))

	const callers = 32
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "centos6")
			if err == nil && v.Len() != 2 {
				err = errors.New("unexpected collection size")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestCache_ConcurrentFailureReachesAllWaiters(t *testing.T) {
	f := &fakeFetcher{err: errors.New("boom"), delay: 20 * time.Millisecond}
	c := NewCache(f)

	const callers = 8
	var wg sync.WaitGroup
	var failures atomic.Int32
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(context.Background(), "centos6"); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(callers), failures.Load())
	assert.Nil(t, c.Snapshot())
}

func TestCache_WaiterCanceled(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest(), delay: 200 * time.Millisecond}
	c := NewCache(f)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "centos6")
	require.Error(t, err)
	assert.Equal(t, brerrors.ErrCodeTimeout, brerrors.CodeOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// the rebuild still completes for later callers
	require.Eventually(t, func() bool {
		return c.Snapshot() != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCache_ForcedRefresh(t *testing.T) {
	f := &fakeFetcher{manifest: centos6Manifest()}
	c := NewCache(f, WithTTL(time.Hour))
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, int32(2), f.calls.Load())

	f.set(nil, errors.New("boom"))
	before := c.Snapshot()
	require.Error(t, c.Refresh(ctx))
	assert.Same(t, before, c.Snapshot())
}

func TestCache_Options(t *testing.T) {
	c := NewCache(&fakeFetcher{}, WithTTL(0), WithClock(nil))
	assert.Greater(t, c.TTL(), time.Duration(0))
	assert.NotNil(t, c.now)

	c = NewCache(&fakeFetcher{}, WithTTL(5*time.Second))
	assert.Equal(t, 5*time.Second, c.TTL())
}

func TestBuildSnapshot_LastWriteWins(t *testing.T) {
	m := &Manifest{Series: []Series{
		{ID: "a", Latest: []Build{{Platform: "centos6", URI: "http://a/1.0/"}}},
		{ID: "b", Latest: []Build{{Platform: "centos6", URI: "http://b/1-0/"}}},
	}}

	snap, err := BuildSnapshot(m, time.Time{})
	require.NoError(t, err)

	entries := snap.Versions("centos6").Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "http://b/1-0/", entries[0].URI)
}

func TestBuildSnapshot_Nil(t *testing.T) {
	snap, err := BuildSnapshot(nil, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, snap.Platforms)

	var none *Snapshot
	assert.Equal(t, 0, none.Versions("centos6").Len())
	assert.Nil(t, none.PlatformNames())
	assert.Equal(t, 0, none.Len())
}
