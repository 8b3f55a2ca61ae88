package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Recovery converts handler panics into a 500 response. A panic in one
// request must never take the dispatcher or scheduler down with it.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						zap.Any("error", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("stack", string(debug.Stack())),
					)

					w.WriteHeader(http.StatusInternalServerError)
					render.JSON(w, r, map[string]interface{}{
						"error":   ErrorCodeInternal,
						"message": ErrorMessageInternal,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
