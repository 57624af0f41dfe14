package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			m.ObserveHTTP(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
