package http

import (
	"net/http"
	"time"

	"github.com/aac-tools/aac-mcp-server/pkg/logging"
)

// loggingResponseWriter captures the status code written by a handler.
// The first WriteHeader call wins; later calls are ignored like the
// standard library does.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggingResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

// RequestMiddleware logs each request with its resulting status and
// duration. Health probes are logged at debug level to keep the log
// readable under frequent polling.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		if r.URL.Path == healthEndpoint {
			logging.Debug("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, duration)
			return
		}
		logging.Info("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, duration)
	})
}
