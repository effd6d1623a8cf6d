package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
					zap.Stack("stacktrace"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
