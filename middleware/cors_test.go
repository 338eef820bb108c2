package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/spaserve/middleware"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("headers_on_every_response", func(t *testing.T) {
		t.Parallel()

		w := do(t, middleware.CORS(), http.MethodGet, "/app.js")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("options_preflight_short_circuits", func(t *testing.T) {
		t.Parallel()

		w := do(t, middleware.CORS(), http.MethodOptions, "/anything")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("custom_config", func(t *testing.T) {
		t.Parallel()

		mw := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigin:  "http://localhost:3000",
			AllowMethods: []string{http.MethodGet},
		})
		w := do(t, mw, http.MethodGet, "/")

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET", w.Header().Get("Access-Control-Allow-Methods"))
	})
}
