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

package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/releng/build-redirect/pkg/defaults"
	brerrors "github.com/releng/build-redirect/pkg/errors"
	"github.com/releng/build-redirect/pkg/serializer"
	"github.com/releng/build-redirect/pkg/server"
)

// Route patterns served by Handler.
const (
	RedirectRoute         = "/HDP/{platform}/{series}/{type}/{version}"
	RedirectWithFileRoute = "/HDP/{platform}/{series}/{type}/{version}/{file}"
	VersionsRoute         = "/v1/versions/{platform}"
)

var allowedMethods = []string{http.MethodGet, http.MethodHead}

// Handler serves resolutions over HTTP.
type Handler struct {
	resolver *Resolver
}

// NewHandler returns a Handler backed by r.
func NewHandler(r *Resolver) *Handler {
	return &Handler{resolver: r}
}

// Routes returns the handler's route patterns for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RedirectRoute:         h.HandleRedirect,
		RedirectWithFileRoute: h.HandleRedirect,
		VersionsRoute:         h.HandleVersions,
	}
}

func methodAllowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	server.WriteError(w, r, http.StatusMethodNotAllowed, brerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowedMethods,
		})
	return false
}

// HandleRedirect answers with a temporary redirect to the newest build
// matching the path's version pattern.
func (h *Handler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	if !methodAllowed(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RedirectHandlerTimeout)
	defer cancel()

	req := Request{
		Platform: chi.URLParam(r, "platform"),
		Series:   chi.URLParam(r, "series"),
		Type:     chi.URLParam(r, "type"),
		Version:  chi.URLParam(r, "version"),
		File:     chi.URLParam(r, "file"),
	}

	res, err := h.resolver.Resolve(ctx, req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve build", nil)
		return
	}

	slog.Debug("redirecting",
		"requestID", server.RequestID(ctx),
		"platform", req.Platform,
		"pattern", req.Version,
		"version", res.Version,
		"location", res.URI)

	w.Header().Set("Location", res.URI)
	w.WriteHeader(http.StatusTemporaryRedirect)
}

// HandleVersions lists a platform's builds, newest first.
func (h *Handler) HandleVersions(w http.ResponseWriter, r *http.Request) {
	if !methodAllowed(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.VersionsHandlerTimeout)
	defer cancel()

	platform := chi.URLParam(r, "platform")
	versions, err := h.resolver.Versions(ctx, platform)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list versions", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.VersionsCacheMaxAge.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, NewVersionList(platform, h.resolver.RepoFile(platform), versions))
}
