package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestI18nHandler(t *testing.T) {
	app := setupTestApp(t)

	t.Run("serves spanish by code", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/i18n/es", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "es", data["language"])
		translations := data["translations"].(map[string]any)
		assert.Equal(t, "Inicio", translations["nav.home"])
	})

	t.Run("falls back to english for unknown codes", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/i18n/fr", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "en", data["language"])
	})

	t.Run("negotiates from the Accept-Language header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/i18n", nil)
		req.Header.Set("Accept-Language", "es-419,es;q=0.9")
		w := httptest.NewRecorder()
		app.engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "es", data["language"])
	})
}
