package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

type PostHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewPost(s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// HandleCreate handles POST /v1/urls. A brand-new link answers 201; a request
// that deduplicates onto an existing live link answers 200 with the same
// short key the first caller got.
func (h *PostHandler) HandleCreate(res http.ResponseWriter, req *http.Request) {
	var request models.CreateURLRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeJSON(res, mr.status, models.CreateURLResponse{Message: mr.msg})
			return
		}
		h.logger.Error("cannot decode create request", zap.Error(err))
		writeJSON(res, http.StatusInternalServerError, models.CreateURLResponse{Message: http.StatusText(http.StatusInternalServerError)})
		return
	}

	key, created, err := h.service.CreateShortURL(req.Context(), request)
	if err != nil {
		if errors.Is(err, service.ErrMissingFallback) {
			writeJSON(res, http.StatusBadRequest, models.CreateURLResponse{Message: "defaultFallbackUrl is required"})
			return
		}

		h.logger.Error("cannot create short url", zap.Error(err))
		writeJSON(res, http.StatusInternalServerError, models.CreateURLResponse{Message: http.StatusText(http.StatusInternalServerError)})
		return
	}

	if !created {
		writeJSON(res, http.StatusOK, models.CreateURLResponse{Message: "already exists", ShortKey: key})
		return
	}

	writeJSON(res, http.StatusCreated, models.CreateURLResponse{Message: "created", ShortKey: key})
}
