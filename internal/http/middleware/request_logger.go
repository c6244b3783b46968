package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/harborlight-health/clinic-platform/pkg/logging"
)

// statusRecorder captures the response status and size for the completion
// log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// RequestLogger emits one structured log line per request after it completes.
// Server errors log at error level and client errors at warn, so failed
// dashboard fetches stand out without doubling the line count for the happy
// path.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := chimiddleware.GetReqID(r.Context())
			if reqID == "" {
				reqID = uuid.NewString()
			}

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
				"remote_ip", clientIP(r),
			}
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("request failed", fields...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}
