package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/futuretea/acp-mcp-server/pkg/core/logging"
)

// RequestMiddleware logs every request with its status and duration.
// Health checks are logged at debug level only.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		level := zerolog.InfoLevel
		if r.URL.Path == healthEndpoint {
			level = zerolog.DebugLevel
		}
		logging.Logger().WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lrw.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("http request")
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.headerWritten {
		return
	}
	lrw.statusCode = code
	lrw.headerWritten = true
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if !lrw.headerWritten {
		lrw.headerWritten = true
	}
	return lrw.ResponseWriter.Write(b)
}

// Flush keeps SSE streaming working through the wrapper.
func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
