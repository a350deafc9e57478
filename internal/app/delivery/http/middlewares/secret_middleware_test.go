package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newSecretTestMiddlewares(secret string) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{RelaySecret: secret},
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(constvars.StatusOK)
	})
}

func TestRelaySecretAuth(t *testing.T) {
	t.Run("passes through when no secret is configured", func(t *testing.T) {
		m := newSecretTestMiddlewares("")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/slots", nil)

		m.RelaySecretAuth(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("allows a matching secret", func(t *testing.T) {
		m := newSecretTestMiddlewares("s3cret")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/slots", nil)
		req.Header.Set(constvars.HeaderXRelaySecret, "s3cret")

		m.RelaySecretAuth(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		m := newSecretTestMiddlewares("s3cret")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/slots", nil)
		req.Header.Set(constvars.HeaderXRelaySecret, "wrong")

		m.RelaySecretAuth(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a missing header when a secret is configured", func(t *testing.T) {
		m := newSecretTestMiddlewares("s3cret")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/slots", nil)

		m.RelaySecretAuth(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
	})
}
