package api

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// SlowRequestThreshold is the duration above which a request is logged as slow
const SlowRequestThreshold = 1 * time.Second

// MetricsMiddleware tracks request timing and metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip tracking metrics endpoints themselves to avoid polluting metrics
		if r.URL.Path == "/metrics" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()

		// Wrap response writer to capture status code
		wrappedWriter := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrappedWriter, r)

		totalDuration := time.Since(startTime)
		route := routeTemplate(r)
		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrappedWriter.statusCode)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(totalDuration.Seconds())

		if totalDuration > SlowRequestThreshold {
			zap.S().Warnw("Slow request detected",
				"requestId", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"route", route,
				"duration", totalDuration,
				"status", wrappedWriter.statusCode,
			)
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
