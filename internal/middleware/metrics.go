package middleware

import (
	"net/http"
	"time"

	"Dunklab/pkg/metrics"
	"github.com/gorilla/mux"
)

// Metrics records request counts and latency by route template, so
// /api/shared/{token} is one series rather than one per token.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := record(w)
		next.ServeHTTP(rec, r)
		metrics.RecordHTTPRequest(routeName(r), r.Method, rec.Status(), time.Since(start))
	})
}

func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return "unknown"
}
