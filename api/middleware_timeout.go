package api

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error": "Request timeout", "message": "The request took too long to process"}`

// TimeoutMiddleware adds request timeout to prevent long-running requests.
// The request context carries the deadline, and a handler still running when
// it passes is answered with 503 and timeoutBody.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
