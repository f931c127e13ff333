package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
	"github.com/atinyakov/go-deeplink-shortener/internal/mocks"
	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/urls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockURLServiceIface(ctrl)
	h := NewPost(mockService, zap.NewNop())

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().
			CreateShortURL(gomock.Any(), models.CreateURLRequest{DefaultFallbackURL: "https://example.com"}).
			Return("Ab3D7Xy", true, nil)

		w := postJSON(h.HandleCreate, `{"defaultFallbackUrl":"https://example.com"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp models.CreateURLResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "created", resp.Message)
		assert.Equal(t, "Ab3D7Xy", resp.ShortKey)
	})

	t.Run("duplicate answers 200 with the existing key", func(t *testing.T) {
		mockService.EXPECT().
			CreateShortURL(gomock.Any(), gomock.Any()).
			Return("Ab3D7Xy", false, nil)

		w := postJSON(h.HandleCreate, `{"defaultFallbackUrl":"https://example.com"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.CreateURLResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "already exists", resp.Message)
		assert.Equal(t, "Ab3D7Xy", resp.ShortKey)
	})

	t.Run("missing default fallback", func(t *testing.T) {
		mockService.EXPECT().
			CreateShortURL(gomock.Any(), gomock.Any()).
			Return("", false, service.ErrMissingFallback)

		w := postJSON(h.HandleCreate, `{"iosDeepLink":"myapp://p/1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := postJSON(h.HandleCreate, `{"defaultFallbackUrl":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := postJSON(h.HandleCreate, `{"defaultFallbackUrl":"https://example.com","bogus":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/urls", strings.NewReader("defaultFallbackUrl=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h.HandleCreate(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		mockService.EXPECT().
			CreateShortURL(gomock.Any(), gomock.Any()).
			Return("", false, errors.New("db down"))

		w := postJSON(h.HandleCreate, `{"defaultFallbackUrl":"https://example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
