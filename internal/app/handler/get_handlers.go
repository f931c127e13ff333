package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

type GetHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewGet(s service.URLServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// Redirect handles GET /{shortKey}. Mobile clients with a configured deep
// link get the HTML attempt page; everyone else gets a plain 307 to the
// resolved fallback. Every failure mode answers the same 404.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	shortKey := chi.URLParam(req, "shortKey")
	userAgent := req.Header.Get("User-Agent")

	rec, err := h.service.ResolveRedirect(ctx, shortKey, userAgent)
	if err != nil {
		writeNotFound(res)
		return
	}

	plan := service.PlanRedirect(rec, userAgent)

	if plan.DeepLink == "" {
		res.Header().Set("Location", plan.Target())
		res.WriteHeader(http.StatusTemporaryRedirect)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = redirectPage.Execute(res, redirectPageData{
		DeepLink:      plan.DeepLink,
		Fallback:      plan.Fallback,
		OGTitle:       rec.OGTitle,
		OGDescription: rec.OGDescription,
		OGImageURL:    rec.OGImageURL,
	})
	if err != nil {
		h.logger.Error("cannot render redirect page", zap.Error(err))
	}
}

// Index answers GET /. The guest-token middleware has already set the cookie
// by the time this runs.
func (h *GetHandler) Index(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	res.Write([]byte("deeplink shortener"))
}

// Health reports process liveness only.
func (h *GetHandler) Health(res http.ResponseWriter, req *http.Request) {
	res.WriteHeader(http.StatusOK)
}

// Ready reports whether the store and the cache are reachable.
func (h *GetHandler) Ready(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	if err := h.service.CachePing(ctx); err != nil {
		http.Error(res, "cache unavailable", http.StatusServiceUnavailable)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// PingDB checks database connectivity.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Stats serves the live record count. The route sits behind the
// trusted-subnet middleware.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	count, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.Error("cannot count records", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, models.StatsResponse{URLs: count})
}
