package middlewares

import (
	"crypto/subtle"
	"net/http"

	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"
)

// RelaySecretAuth rejects requests whose x-relay-secret header does not
// match the configured shared secret. With no secret configured the check is
// disabled, which keeps local development friction-free.
func (m *Middlewares) RelaySecretAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := m.InternalConfig.App.RelaySecret
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get(constvars.HeaderXRelaySecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidRelaySecret(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
