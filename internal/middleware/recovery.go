package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitstats/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery answers 500 when a handler panics. http.ErrAbortHandler is
// passed on, net/http uses it to abort a response without logging.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(recovered)
				}

				log.WithFields(log.Fields{
					"route":  routeName(req),
					"method": req.Method,
					"path":   req.URL.Path,
				}).Errorf("panic serving request: %v\n%s", recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
