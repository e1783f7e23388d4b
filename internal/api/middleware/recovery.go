package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					reqID := chimw.GetReqID(r.Context())
					logger.Error().
						Str("request_id", reqID).
						Interface("panic", err).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")
					problem.InternalError("An unexpected error occurred").WithInstance(reqID).Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
