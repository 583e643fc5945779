package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/matteocalo/photodesk/pkg/logger"
)

// TraceHeader is read from the request and echoed on the response.
const TraceHeader = "X-Trace-ID"

type traceKey struct{}

// RequestID assigns a trace id and puts a request logger carrying it into the
// context. Later middleware adds to that logger with logger.With.
func RequestID(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), traceKey{}, traceID)
			ctx = logger.NewContext(ctx, lg.With("trace_id", traceID))

			w.Header().Set(TraceHeader, traceID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TraceID returns the id assigned by RequestID, or "" outside a request.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
