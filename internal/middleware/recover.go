package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ammica/fuel-backend/internal/services"
)

// RecoverJSON turns a panic in a handler into a JSON 500 response.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logrus.WithFields(logrus.Fields{
				"component":  "http",
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Errorf("panic: %v\n%s", rvr, debug.Stack())

			services.SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
		}()

		next.ServeHTTP(w, r)
	})
}
