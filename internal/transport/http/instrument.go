package http

import (
	"log"
	"net/http"
	"time"

	"github.com/Cloudtechsre/SaaS-platform/internal/metrics"
)

// Instrument wraps a route with the request counter and duration histogram.
// The duration is observed and the counter incremented exactly once per
// request with the status actually sent, whichever path terminates it. A
// panic inside next is logged and answered with a generic 500 unless a
// response was already started; either way it is counted as a 500.
func Instrument(m *metrics.Metrics, logger *log.Logger, service, route string, next http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if v := recover(); v != nil {
				logger.Printf("panic in %s %s: %v", r.Method, route, v)
				if !rec.wroteHeader {
					writeError(rec, http.StatusInternalServerError, "Internal server error")
				}
				rec.status = http.StatusInternalServerError
			}
			m.ObserveDuration(service, r.Method, route, time.Since(start).Seconds())
			m.IncRequest(service, r.Method, route, rec.status)
		}()

		next.ServeHTTP(rec, r)
	})
}
