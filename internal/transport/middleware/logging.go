package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/matteocalo/photodesk/pkg/logger"
)

// redactedNames are matched as substrings of lower-cased header names and JSON
// keys. The portal password travels both as a header and as a body field.
var redactedNames = []string{
	"password",
	"x-portal-password",
	"authorization",
	"token",
	"secret",
	"cookie",
	"iban",
}

// maxLoggedBody caps how much of a body is kept for the log line.
const maxLoggedBody = 4096

const redacted = "[FILTERED]"

// LoggingMiddleware logs each request and its response through the request
// logger set up by RequestID, so both lines carry the trace id.
func LoggingMiddleware(fallback *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lg, ok := logger.Lookup(r.Context())
			if !ok {
				lg = fallback
			}

			body := readBody(r)
			lg.Info("incoming request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"headers", redactHeaders(r.Header),
				"body", redactBody(body),
			)

			rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			lg.Log(r.Context(), level, "response",
				"status_code", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", rec.size,
				"body", redactBody(rec.body.Bytes()),
			)
		})
	}
}

// recordingWriter keeps the status, the size and the head of the body.
type recordingWriter struct {
	http.ResponseWriter
	status int
	size   int
	body   bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	if room := maxLoggedBody - rw.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		rw.body.Write(b[:room])
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// readBody drains the request body for logging and puts it back for the handler.
func readBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	raw, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) > maxLoggedBody {
		return raw[:maxLoggedBody]
	}
	return raw
}

func isRedacted(name string) bool {
	name = strings.ToLower(name)
	for _, s := range redactedNames {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if isRedacted(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// redactBody masks sensitive JSON fields. A body that is not JSON is dropped
// entirely when it mentions a sensitive name.
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		if isRedacted(string(body)) {
			return "[FILTERED - contains sensitive data]"
		}
		return string(body)
	}

	out, err := json.Marshal(redactJSON(data))
	if err != nil {
		return "[unloggable body]"
	}
	return string(out)
}

func redactJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isRedacted(key) {
				out[key] = redacted
				continue
			}
			out[key] = redactJSON(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = redactJSON(item)
		}
		return out
	default:
		return v
	}
}
