package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

type DeleteHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.URLServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// DeleteBatch handles DELETE /v1/urls. Deactivation happens asynchronously,
// so the 202 only acknowledges that the keys were queued.
func (h *DeleteHandler) DeleteBatch(res http.ResponseWriter, req *http.Request) {
	var request models.DeleteURLRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error("cannot decode delete request", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	go h.service.DeleteShortURLs(request.ShortKeys)

	res.WriteHeader(http.StatusAccepted)
}
