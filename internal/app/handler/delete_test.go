package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/mocks"
)

func TestDeleteBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	h := NewDelete(mockService, zap.NewNop())

	t.Run("accepted", func(t *testing.T) {
		done := make(chan struct{})
		mockService.EXPECT().
			DeleteShortURLs([]string{"Ab3D7Xy", "Cd9E2Fz"}).
			Do(func([]string) { close(done) })

		req := httptest.NewRequest(http.MethodDelete, "/v1/urls", strings.NewReader(`{"short_keys":["Ab3D7Xy","Cd9E2Fz"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h.DeleteBatch(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("delete was not queued")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/urls", strings.NewReader(`["Ab3D7Xy"`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h.DeleteBatch(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
