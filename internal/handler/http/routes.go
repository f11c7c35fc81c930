// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(h.withCORS())

	router.Group(func(router chi.Router) {
		router.Use(withGZip)

		router.Route("/api/v1/user", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Post("/register", h.register)
				r.Post("/login", h.login)
				r.Post("/refresh-token", h.refreshToken)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Post("/logout", h.logout)
				r.Post("/change-password", h.changePassword)
				r.Get("/current-user", h.currentUser)
				r.Patch("/update-account", h.updateAccount)
				r.Patch("/avatar", h.updateAvatar)
				r.Patch("/cover-image", h.updateCoverImage)
				r.Get("/c/{username}", h.channelProfile)
				r.Get("/history", h.watchHistory)
			})
		})

		router.Get("/api/v1/healthcheck", h.healthCheck)
		router.Get("/api/v1/version", h.getServerVersion)
	})

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := []string{"*"}
	if h.corsOrigin != "" {
		origins = []string{h.corsOrigin}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: h.corsOrigin != "",
		MaxAge:           300,
	})
}

// notFound also serves known paths hit with an unregistered method, so
// callers cannot probe which routes exist.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, app.MsgNotFound)
}
