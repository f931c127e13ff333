// Package server assembles the chi router: routes, middleware chain and the
// catch-all responses.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/handler"
	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/middleware"
)

// Init builds the router. trustedSubnet guards /internal/*; an empty value
// keeps the routes registered but denies every caller.
func Init(svc service.URLServiceIface, auth service.AuthIface, trustedSubnet string, logger *zap.Logger) *chi.Mux {
	getHandler := handler.NewGet(svc, logger)
	postHandler := handler.NewPost(svc, logger)
	deleteHandler := handler.NewDelete(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIP)

	r.Get("/health", getHandler.Health)
	r.Get("/ready", getHandler.Ready)
	r.Get("/ping", getHandler.PingDB)

	r.Route("/internal", func(r chi.Router) {
		r.Use(middleware.WithSubnet(trustedSubnet, logger))
		r.Get("/stats", getHandler.Stats)
	})

	r.Route("/v1/urls", func(r chi.Router) {
		r.Post("/", postHandler.HandleCreate)
		r.Delete("/", deleteHandler.DeleteBatch)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGuestToken(auth))
		r.Get("/", getHandler.Index)
		r.Get("/{shortKey}", getHandler.Redirect)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
