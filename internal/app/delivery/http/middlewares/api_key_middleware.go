package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequirePhysicianAPIKey rejects requests whose X-API-Key header does not
// exactly match the configured physician key. The header is not trimmed.
func (m *Middlewares) RequirePhysicianAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			m.Log.Info("Middlewares.RequirePhysicianAPIKey missing API key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		expected := m.InternalConfig.App.PhysicianAPIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			m.Log.Warn("Middlewares.RequirePhysicianAPIKey invalid API key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PHYSICIAN_ACCESS_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
